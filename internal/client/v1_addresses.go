package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

const customerAddressesTemplate = "/customers/:customer_id/addresses"

// V1AddressesClient implements recharge.V1AddressesClient. Addresses are
// created and listed under their customer.
type V1AddressesClient struct {
	resource
}

// NewV1AddressesClient creates a new 2021-01 addresses client.
func NewV1AddressesClient(transport *http.Client, guard *auth.ScopeGuard) *V1AddressesClient {
	return &V1AddressesClient{resource: newResource(transport, guard, recharge.Version202101, "address", "addresses")}
}

// Create implements recharge.V1AddressesClient.Create.
func (c *V1AddressesClient) Create(ctx context.Context, customerID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "creating address",
		method:   nethttp.MethodPost,
		template: customerAddressesTemplate,
		path:     joinPath("customers", customerID, "addresses"),
		body:     body,
		key:      c.singular,
		scopes:   []recharge.Scope{recharge.ScopeWriteCustomers},
	})
}

// Get implements recharge.V1AddressesClient.Get.
func (c *V1AddressesClient) Get(ctx context.Context, addressID string) (recharge.Object, error) {
	return c.get(ctx, addressID, recharge.ScopeReadCustomers)
}

// Update implements recharge.V1AddressesClient.Update.
func (c *V1AddressesClient) Update(ctx context.Context, addressID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, addressID, body, recharge.ScopeWriteCustomers)
}

// Delete implements recharge.V1AddressesClient.Delete.
func (c *V1AddressesClient) Delete(ctx context.Context, addressID string) (recharge.Object, error) {
	return c.remove(ctx, addressID, nil, recharge.ScopeWriteCustomers)
}

func (c *V1AddressesClient) customerListCall(customerID string, query recharge.Query) call {
	return call{
		action:   "listing addresses",
		method:   nethttp.MethodGet,
		template: customerAddressesTemplate,
		path:     joinPath("customers", customerID, "addresses"),
		query:    query,
		key:      c.plural,
		scopes:   []recharge.Scope{recharge.ScopeReadCustomers},
	}
}

// List implements recharge.V1AddressesClient.List.
func (c *V1AddressesClient) List(ctx context.Context, customerID string, query recharge.Query) ([]recharge.Object, error) {
	return c.array(ctx, c.customerListCall(customerID, query))
}

// ListAll implements recharge.V1AddressesClient.ListAll.
func (c *V1AddressesClient) ListAll(ctx context.Context, customerID string, query recharge.Query) ([]recharge.Object, error) {
	return c.all(ctx, c.customerListCall(customerID, query))
}

// Count implements recharge.V1AddressesClient.Count.
func (c *V1AddressesClient) Count(ctx context.Context, query recharge.Query) (int, error) {
	return c.countAll(ctx, query, recharge.ScopeReadCustomers)
}

// Validate implements recharge.V1AddressesClient.Validate. It needs no
// scope and returns the response body whole.
func (c *V1AddressesClient) Validate(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "validating address",
		method:   nethttp.MethodPost,
		path:     "/addresses/validate_address",
		body:     body,
		unscoped: true,
	})
}

// ApplyDiscount implements recharge.V1AddressesClient.ApplyDiscount.
func (c *V1AddressesClient) ApplyDiscount(ctx context.Context, addressID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, addressID, "apply_discount", body, recharge.ScopeWriteDiscounts)
}

// RemoveDiscount implements recharge.V1AddressesClient.RemoveDiscount.
func (c *V1AddressesClient) RemoveDiscount(ctx context.Context, addressID string) (recharge.Object, error) {
	return c.action(ctx, addressID, "remove_discount", nil, recharge.ScopeWriteDiscounts)
}
