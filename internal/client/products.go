package client

import (
	"context"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// ProductsClient implements recharge.ProductsClient and
// recharge.V1ProductsClient. Count is only served by 2021-01.
type ProductsClient struct {
	resource
}

// NewProductsClient creates a new products client for version.
func NewProductsClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *ProductsClient {
	return &ProductsClient{resource: newResource(transport, guard, version, "product", "products")}
}

// Create implements recharge.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteProducts)
}

// Get implements recharge.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, productID string) (recharge.Object, error) {
	return c.get(ctx, productID, recharge.ScopeReadProducts)
}

// Update implements recharge.ProductsClient.Update.
func (c *ProductsClient) Update(ctx context.Context, productID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, productID, body, recharge.ScopeWriteProducts)
}

// Delete implements recharge.ProductsClient.Delete.
func (c *ProductsClient) Delete(ctx context.Context, productID string) (recharge.Object, error) {
	return c.remove(ctx, productID, nil, recharge.ScopeWriteProducts)
}

// List implements recharge.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadProducts)
}

// ListAll implements recharge.ProductsClient.ListAll.
func (c *ProductsClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadProducts)
}

// Count implements recharge.V1ProductsClient.Count.
func (c *ProductsClient) Count(ctx context.Context, query recharge.Query) (int, error) {
	return c.countAll(ctx, query, recharge.ScopeReadProducts)
}
