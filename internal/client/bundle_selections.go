package client

import (
	"context"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// BundleSelectionsClient implements recharge.BundleSelectionsClient.
type BundleSelectionsClient struct {
	resource
}

// NewBundleSelectionsClient creates a new bundle selections client.
func NewBundleSelectionsClient(transport *http.Client, guard *auth.ScopeGuard) *BundleSelectionsClient {
	return &BundleSelectionsClient{
		resource: newResource(transport, guard, recharge.Version202111, "bundle_selection", "bundle_selections"),
	}
}

// Create implements recharge.BundleSelectionsClient.Create.
func (c *BundleSelectionsClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteSubscriptions)
}

// Get implements recharge.BundleSelectionsClient.Get.
func (c *BundleSelectionsClient) Get(ctx context.Context, bundleSelectionID string) (recharge.Object, error) {
	return c.get(ctx, bundleSelectionID, recharge.ScopeReadSubscriptions)
}

// Update implements recharge.BundleSelectionsClient.Update.
func (c *BundleSelectionsClient) Update(ctx context.Context, bundleSelectionID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, bundleSelectionID, body, recharge.ScopeWriteSubscriptions)
}

// Delete implements recharge.BundleSelectionsClient.Delete.
func (c *BundleSelectionsClient) Delete(ctx context.Context, bundleSelectionID string) (recharge.Object, error) {
	return c.remove(ctx, bundleSelectionID, nil, recharge.ScopeWriteSubscriptions)
}

// List implements recharge.BundleSelectionsClient.List.
func (c *BundleSelectionsClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadSubscriptions)
}

// ListAll implements recharge.BundleSelectionsClient.ListAll.
func (c *BundleSelectionsClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadSubscriptions)
}
