package client

import (
	"context"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// OnetimesClient implements recharge.OnetimesClient and
// recharge.V1OnetimesClient.
type OnetimesClient struct {
	resource
}

// NewOnetimesClient creates a new onetimes client for version.
func NewOnetimesClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *OnetimesClient {
	return &OnetimesClient{resource: newResource(transport, guard, version, "onetime", "onetimes")}
}

// Create implements recharge.OnetimesClient.Create.
func (c *OnetimesClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteSubscriptions)
}

// Get implements recharge.OnetimesClient.Get.
func (c *OnetimesClient) Get(ctx context.Context, onetimeID string) (recharge.Object, error) {
	return c.get(ctx, onetimeID, recharge.ScopeReadSubscriptions)
}

// Update implements recharge.OnetimesClient.Update.
func (c *OnetimesClient) Update(ctx context.Context, onetimeID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, onetimeID, body, recharge.ScopeWriteSubscriptions)
}

// Delete implements recharge.OnetimesClient.Delete.
func (c *OnetimesClient) Delete(ctx context.Context, onetimeID string) (recharge.Object, error) {
	return c.remove(ctx, onetimeID, nil, recharge.ScopeWriteSubscriptions)
}

// List implements recharge.OnetimesClient.List.
func (c *OnetimesClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadSubscriptions)
}

// ListAll implements recharge.OnetimesClient.ListAll.
func (c *OnetimesClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadSubscriptions)
}
