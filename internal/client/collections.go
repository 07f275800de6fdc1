package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

const collectionProductsBulk = "collection_products-bulk"

// CollectionsClient implements recharge.CollectionsClient.
type CollectionsClient struct {
	resource
}

// NewCollectionsClient creates a new collections client.
func NewCollectionsClient(transport *http.Client, guard *auth.ScopeGuard) *CollectionsClient {
	return &CollectionsClient{resource: newResource(transport, guard, recharge.Version202111, "collection", "collections")}
}

// Create implements recharge.CollectionsClient.Create.
func (c *CollectionsClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteProducts)
}

// Get implements recharge.CollectionsClient.Get.
func (c *CollectionsClient) Get(ctx context.Context, collectionID string) (recharge.Object, error) {
	return c.get(ctx, collectionID, recharge.ScopeReadProducts)
}

// Update implements recharge.CollectionsClient.Update.
func (c *CollectionsClient) Update(ctx context.Context, collectionID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, collectionID, body, recharge.ScopeWriteProducts)
}

// Delete implements recharge.CollectionsClient.Delete.
func (c *CollectionsClient) Delete(ctx context.Context, collectionID string) (recharge.Object, error) {
	return c.remove(ctx, collectionID, nil, recharge.ScopeWriteProducts)
}

// List implements recharge.CollectionsClient.List.
func (c *CollectionsClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadProducts)
}

// ListAll implements recharge.CollectionsClient.ListAll.
func (c *CollectionsClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadProducts)
}

// ListProducts implements recharge.CollectionsClient.ListProducts. Filter
// by collection with the collection_id query parameter.
func (c *CollectionsClient) ListProducts(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.array(ctx, call{
		action:   "listing collection products",
		method:   nethttp.MethodGet,
		template: "/collection_products",
		path:     "/collection_products",
		query:    query,
		key:      "collection_products",
		scopes:   []recharge.Scope{recharge.ScopeReadProducts},
	})
}

// AddProducts implements recharge.CollectionsClient.AddProducts.
func (c *CollectionsClient) AddProducts(ctx context.Context, collectionID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "adding collection products",
		method:   nethttp.MethodPost,
		template: c.memberTemplate(collectionProductsBulk),
		path:     c.memberPath(collectionID, collectionProductsBulk),
		body:     body,
		scopes:   []recharge.Scope{recharge.ScopeWriteProducts},
	})
}

// DeleteProducts implements recharge.CollectionsClient.DeleteProducts.
func (c *CollectionsClient) DeleteProducts(ctx context.Context, collectionID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "deleting collection products",
		method:   nethttp.MethodDelete,
		template: c.memberTemplate(collectionProductsBulk),
		path:     c.memberPath(collectionID, collectionProductsBulk),
		body:     body,
		scopes:   []recharge.Scope{recharge.ScopeWriteProducts},
	})
}
