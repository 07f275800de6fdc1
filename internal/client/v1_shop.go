package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// V1ShopClient implements recharge.V1ShopClient.
type V1ShopClient struct {
	resource
}

// NewV1ShopClient creates a new 2021-01 shop client.
func NewV1ShopClient(transport *http.Client, guard *auth.ScopeGuard) *V1ShopClient {
	return &V1ShopClient{resource: newResource(transport, guard, recharge.Version202101, "shop", "shop")}
}

// Get implements recharge.V1ShopClient.Get.
func (c *V1ShopClient) Get(ctx context.Context) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "getting shop",
		method:   nethttp.MethodGet,
		template: "/shop",
		path:     "/shop",
		key:      "shop",
		scopes:   []recharge.Scope{recharge.ScopeStoreInfo},
	})
}

// ShippingCountries implements recharge.V1ShopClient.ShippingCountries.
func (c *V1ShopClient) ShippingCountries(ctx context.Context) ([]recharge.Object, error) {
	return c.array(ctx, call{
		action:   "listing shipping countries",
		method:   nethttp.MethodGet,
		template: "/shop/shipping_countries",
		path:     "/shop/shipping_countries",
		key:      "shipping_countries",
		scopes:   []recharge.Scope{recharge.ScopeStoreInfo},
	})
}
