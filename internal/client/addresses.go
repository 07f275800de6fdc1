package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// AddressesClient implements recharge.AddressesClient.
type AddressesClient struct {
	resource
}

// NewAddressesClient creates a new addresses client.
func NewAddressesClient(transport *http.Client, guard *auth.ScopeGuard) *AddressesClient {
	return &AddressesClient{resource: newResource(transport, guard, recharge.Version202111, "address", "addresses")}
}

// Create implements recharge.AddressesClient.Create.
func (c *AddressesClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteCustomers)
}

// Get implements recharge.AddressesClient.Get.
func (c *AddressesClient) Get(ctx context.Context, addressID string) (recharge.Object, error) {
	return c.get(ctx, addressID, recharge.ScopeReadCustomers)
}

// Update implements recharge.AddressesClient.Update.
func (c *AddressesClient) Update(ctx context.Context, addressID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, addressID, body, recharge.ScopeWriteCustomers)
}

// Delete implements recharge.AddressesClient.Delete.
func (c *AddressesClient) Delete(ctx context.Context, addressID string) (recharge.Object, error) {
	return c.remove(ctx, addressID, nil, recharge.ScopeWriteCustomers)
}

// List implements recharge.AddressesClient.List.
func (c *AddressesClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadCustomers)
}

// ListAll implements recharge.AddressesClient.ListAll.
func (c *AddressesClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadCustomers)
}

// Merge implements recharge.AddressesClient.Merge.
func (c *AddressesClient) Merge(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "merging addresses",
		method:   nethttp.MethodPost,
		template: "/addresses/merge",
		path:     "/addresses/merge",
		body:     body,
		key:      "address",
		scopes:   []recharge.Scope{recharge.ScopeWriteCustomers},
	})
}

// SkipCharges implements recharge.AddressesClient.SkipCharges.
func (c *AddressesClient) SkipCharges(ctx context.Context, addressID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "skipping address charges",
		method:   nethttp.MethodPost,
		template: c.memberTemplate("charges", "skip"),
		path:     c.memberPath(addressID, "charges", "skip"),
		body:     body,
		scopes:   []recharge.Scope{recharge.ScopeWriteCustomers},
	})
}
