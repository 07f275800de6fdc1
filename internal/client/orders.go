package client

import (
	"context"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// OrdersClient implements recharge.OrdersClient.
type OrdersClient struct {
	resource
}

// NewOrdersClient creates a new orders client for version.
func NewOrdersClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *OrdersClient {
	return &OrdersClient{resource: newResource(transport, guard, version, "order", "orders")}
}

// Get implements recharge.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, orderID string) (recharge.Object, error) {
	return c.get(ctx, orderID, recharge.ScopeReadOrders)
}

// Update implements recharge.OrdersClient.Update.
func (c *OrdersClient) Update(ctx context.Context, orderID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, orderID, body, recharge.ScopeWriteOrders)
}

// Delete implements recharge.OrdersClient.Delete.
func (c *OrdersClient) Delete(ctx context.Context, orderID string) (recharge.Object, error) {
	return c.remove(ctx, orderID, nil, recharge.ScopeWriteOrders)
}

// List implements recharge.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadOrders)
}

// ListAll implements recharge.OrdersClient.ListAll.
func (c *OrdersClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadOrders)
}

// Clone implements recharge.OrdersClient.Clone.
func (c *OrdersClient) Clone(ctx context.Context, orderID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, orderID, "clone", body, recharge.ScopeWriteOrders)
}

// Delay implements recharge.OrdersClient.Delay.
func (c *OrdersClient) Delay(ctx context.Context, orderID string) (recharge.Object, error) {
	return c.action(ctx, orderID, "delay", nil, recharge.ScopeWriteOrders)
}
