package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

const plansBulkTemplate = "/products/:external_product_id/plans-bulk"

// PlansClient implements recharge.PlansClient.
type PlansClient struct {
	resource
}

// NewPlansClient creates a new plans client.
func NewPlansClient(transport *http.Client, guard *auth.ScopeGuard) *PlansClient {
	return &PlansClient{resource: newResource(transport, guard, recharge.Version202111, "plan", "plans")}
}

// Create implements recharge.PlansClient.Create.
func (c *PlansClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteProducts)
}

// Get implements recharge.PlansClient.Get.
func (c *PlansClient) Get(ctx context.Context, planID string) (recharge.Object, error) {
	return c.get(ctx, planID, recharge.ScopeReadProducts)
}

// Update implements recharge.PlansClient.Update.
func (c *PlansClient) Update(ctx context.Context, planID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, planID, body, recharge.ScopeWriteProducts)
}

// Delete implements recharge.PlansClient.Delete.
func (c *PlansClient) Delete(ctx context.Context, planID string) (recharge.Object, error) {
	return c.remove(ctx, planID, nil, recharge.ScopeWriteProducts)
}

// List implements recharge.PlansClient.List.
func (c *PlansClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadProducts)
}

// ListAll implements recharge.PlansClient.ListAll.
func (c *PlansClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadProducts)
}

func (c *PlansClient) bulkCall(action, method, externalProductID string, body recharge.Object) call {
	return call{
		action:   action,
		method:   method,
		template: plansBulkTemplate,
		path:     joinPath("products", externalProductID, "plans-bulk"),
		body:     body,
		key:      c.plural,
		scopes:   []recharge.Scope{recharge.ScopeWriteProducts},
	}
}

// BulkCreate implements recharge.PlansClient.BulkCreate.
func (c *PlansClient) BulkCreate(ctx context.Context, externalProductID string, body recharge.Object) ([]recharge.Object, error) {
	return c.array(ctx, c.bulkCall("bulk creating plans", nethttp.MethodPost, externalProductID, body))
}

// BulkUpdate implements recharge.PlansClient.BulkUpdate.
func (c *PlansClient) BulkUpdate(ctx context.Context, externalProductID string, body recharge.Object) ([]recharge.Object, error) {
	return c.array(ctx, c.bulkCall("bulk updating plans", nethttp.MethodPut, externalProductID, body))
}

// BulkDelete implements recharge.PlansClient.BulkDelete. The response body
// is returned whole.
func (c *PlansClient) BulkDelete(ctx context.Context, externalProductID string, body recharge.Object) (recharge.Object, error) {
	bulk := c.bulkCall("bulk deleting plans", nethttp.MethodDelete, externalProductID, body)
	bulk.key = ""

	return c.object(ctx, bulk)
}
