package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// CheckoutsClient implements recharge.CheckoutsClient. Checkouts are
// addressed by token.
type CheckoutsClient struct {
	resource
}

// NewCheckoutsClient creates a new checkouts client for version.
func NewCheckoutsClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *CheckoutsClient {
	return &CheckoutsClient{resource: newResource(transport, guard, version, "checkout", "checkouts")}
}

// Create implements recharge.CheckoutsClient.Create.
func (c *CheckoutsClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteCheckouts)
}

// Get implements recharge.CheckoutsClient.Get.
func (c *CheckoutsClient) Get(ctx context.Context, checkoutToken string) (recharge.Object, error) {
	return c.get(ctx, checkoutToken, recharge.ScopeReadCheckouts)
}

// Update implements recharge.CheckoutsClient.Update.
func (c *CheckoutsClient) Update(ctx context.Context, checkoutToken string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, checkoutToken, body, recharge.ScopeWriteCheckouts)
}

// GetShippingRates implements recharge.CheckoutsClient.GetShippingRates.
func (c *CheckoutsClient) GetShippingRates(ctx context.Context, checkoutToken string) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "getting checkout shipping rates",
		method:   nethttp.MethodGet,
		template: c.memberTemplate("shipping_rates"),
		path:     c.memberPath(checkoutToken, "shipping_rates"),
		scopes:   []recharge.Scope{recharge.ScopeReadCheckouts},
	})
}

// Process implements recharge.CheckoutsClient.Process.
func (c *CheckoutsClient) Process(ctx context.Context, checkoutToken string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "processing checkout",
		method:   nethttp.MethodPost,
		template: c.memberTemplate("charge"),
		path:     c.memberPath(checkoutToken, "charge"),
		body:     body,
		key:      "checkout_charge",
		scopes:   []recharge.Scope{recharge.ScopeWriteCheckouts},
	})
}
