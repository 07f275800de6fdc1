package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// StoreClient implements recharge.StoreClient.
type StoreClient struct {
	resource
}

// NewStoreClient creates a new store client.
func NewStoreClient(transport *http.Client, guard *auth.ScopeGuard) *StoreClient {
	return &StoreClient{resource: newResource(transport, guard, recharge.Version202111, "store", "store")}
}

// Get implements recharge.StoreClient.Get.
func (c *StoreClient) Get(ctx context.Context) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "getting store",
		method:   nethttp.MethodGet,
		template: "/store",
		path:     "/store",
		key:      "store",
		scopes:   []recharge.Scope{recharge.ScopeStoreInfo},
	})
}
