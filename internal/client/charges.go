package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// ChargesClient implements recharge.ChargesClient.
type ChargesClient struct {
	resource

	// paymentScope guards refunds and captures: write_payment_methods on
	// 2021-11, write_payments on 2021-01.
	paymentScope recharge.Scope
}

// NewChargesClient creates a new charges client for version.
func NewChargesClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *ChargesClient {
	paymentScope := recharge.ScopeWritePaymentMethods
	if version == recharge.Version202101 {
		paymentScope = recharge.ScopeWritePayments
	}

	return &ChargesClient{
		resource:     newResource(transport, guard, version, "charge", "charges"),
		paymentScope: paymentScope,
	}
}

// Get implements recharge.ChargesClient.Get.
func (c *ChargesClient) Get(ctx context.Context, chargeID string) (recharge.Object, error) {
	return c.get(ctx, chargeID, recharge.ScopeReadOrders)
}

// List implements recharge.ChargesClient.List.
func (c *ChargesClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadOrders)
}

// ListAll implements recharge.ChargesClient.ListAll.
func (c *ChargesClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadOrders)
}

// ApplyDiscount implements recharge.ChargesClient.ApplyDiscount.
func (c *ChargesClient) ApplyDiscount(ctx context.Context, chargeID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, chargeID, "apply_discount", body, recharge.ScopeWriteOrders)
}

// RemoveDiscount implements recharge.ChargesClient.RemoveDiscount.
func (c *ChargesClient) RemoveDiscount(ctx context.Context, chargeID string) (recharge.Object, error) {
	return c.action(ctx, chargeID, "remove_discount", nil, recharge.ScopeWriteOrders)
}

// Skip implements recharge.ChargesClient.Skip.
func (c *ChargesClient) Skip(ctx context.Context, chargeID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, chargeID, "skip", body, recharge.ScopeWriteOrders)
}

// Unskip implements recharge.ChargesClient.Unskip.
func (c *ChargesClient) Unskip(ctx context.Context, chargeID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, chargeID, "unskip", body, recharge.ScopeWriteOrders)
}

// Refund implements recharge.ChargesClient.Refund.
func (c *ChargesClient) Refund(ctx context.Context, chargeID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, chargeID, "refund", body, recharge.ScopeWriteOrders, c.paymentScope)
}

// Process implements recharge.ChargesClient.Process.
func (c *ChargesClient) Process(ctx context.Context, chargeID string) (recharge.Object, error) {
	return c.action(ctx, chargeID, "process", nil, recharge.ScopeWritePayments)
}

// Capture implements recharge.ChargesClient.Capture.
func (c *ChargesClient) Capture(ctx context.Context, chargeID string) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "capturing charge",
		method:   nethttp.MethodPost,
		template: c.memberTemplate("capture_payment"),
		path:     c.memberPath(chargeID, "capture_payment"),
		key:      "charge",
		scopes: []recharge.Scope{
			recharge.ScopeWriteOrders,
			c.paymentScope,
			recharge.ScopeWriteSubscriptions,
			recharge.ScopeWriteCustomers,
		},
	})
}
