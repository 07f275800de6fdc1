package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// V1OrdersClient implements recharge.V1OrdersClient. Clone takes the
// charge the copy is attached to.
type V1OrdersClient struct {
	*OrdersClient
}

// NewV1OrdersClient creates a new 2021-01 orders client.
func NewV1OrdersClient(transport *http.Client, guard *auth.ScopeGuard) *V1OrdersClient {
	return &V1OrdersClient{OrdersClient: NewOrdersClient(transport, guard, recharge.Version202101)}
}

// Count implements recharge.V1OrdersClient.Count.
func (c *V1OrdersClient) Count(ctx context.Context, query recharge.Query) (int, error) {
	return c.countAll(ctx, query, recharge.ScopeReadOrders)
}

// ChangeDate implements recharge.V1OrdersClient.ChangeDate.
func (c *V1OrdersClient) ChangeDate(ctx context.Context, orderID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, orderID, "change_date", body, recharge.ScopeWriteOrders)
}

// ChangeVariant implements recharge.V1OrdersClient.ChangeVariant.
func (c *V1OrdersClient) ChangeVariant(ctx context.Context, orderID, oldVariantID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "changing order variant",
		method:   nethttp.MethodPut,
		template: c.memberTemplate("update_shopify_variant", ":old_variant_id"),
		path:     c.memberPath(orderID, "update_shopify_variant", oldVariantID),
		body:     body,
		key:      c.singular,
		scopes:   []recharge.Scope{recharge.ScopeWriteOrders},
	})
}

// Clone implements recharge.V1OrdersClient.Clone.
func (c *V1OrdersClient) Clone(ctx context.Context, orderID, chargeID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "cloning order",
		method:   nethttp.MethodPost,
		template: "/orders/clone_order_on_success_charge/:order_id/charge/:charge_id",
		path:     joinPath("orders", "clone_order_on_success_charge", orderID, "charge", chargeID),
		body:     body,
		key:      c.singular,
		scopes:   []recharge.Scope{recharge.ScopeWriteOrders},
	})
}
