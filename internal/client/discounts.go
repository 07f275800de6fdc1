package client

import (
	"context"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// DiscountsClient implements recharge.DiscountsClient and
// recharge.V1DiscountsClient.
type DiscountsClient struct {
	resource
}

// NewDiscountsClient creates a new discounts client for version.
func NewDiscountsClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *DiscountsClient {
	return &DiscountsClient{resource: newResource(transport, guard, version, "discount", "discounts")}
}

// Create implements recharge.DiscountsClient.Create.
func (c *DiscountsClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteDiscounts)
}

// Get implements recharge.DiscountsClient.Get.
func (c *DiscountsClient) Get(ctx context.Context, discountID string) (recharge.Object, error) {
	return c.get(ctx, discountID, recharge.ScopeReadDiscounts)
}

// Update implements recharge.DiscountsClient.Update.
func (c *DiscountsClient) Update(ctx context.Context, discountID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, discountID, body, recharge.ScopeWriteDiscounts)
}

// Delete implements recharge.DiscountsClient.Delete.
func (c *DiscountsClient) Delete(ctx context.Context, discountID string) (recharge.Object, error) {
	return c.remove(ctx, discountID, nil, recharge.ScopeWriteDiscounts)
}

// List implements recharge.DiscountsClient.List.
func (c *DiscountsClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadDiscounts)
}

// ListAll implements recharge.DiscountsClient.ListAll.
func (c *DiscountsClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadDiscounts)
}

// Count implements recharge.V1DiscountsClient.Count.
func (c *DiscountsClient) Count(ctx context.Context, query recharge.Query) (int, error) {
	return c.countAll(ctx, query, recharge.ScopeReadDiscounts)
}
