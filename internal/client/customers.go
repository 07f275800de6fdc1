package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// CustomersClient implements recharge.CustomersClient and
// recharge.V1CustomersClient.
type CustomersClient struct {
	resource

	paymentScope recharge.Scope
}

// NewCustomersClient creates a new customers client for version.
func NewCustomersClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *CustomersClient {
	paymentScope := recharge.ScopeWritePaymentMethods
	if version == recharge.Version202101 {
		paymentScope = recharge.ScopeWritePayments
	}

	return &CustomersClient{
		resource:     newResource(transport, guard, version, "customer", "customers"),
		paymentScope: paymentScope,
	}
}

// Create implements recharge.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteCustomers, c.paymentScope)
}

// Get implements recharge.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, customerID string) (recharge.Object, error) {
	return c.get(ctx, customerID, recharge.ScopeReadCustomers)
}

// Update implements recharge.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, customerID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, customerID, body, recharge.ScopeWriteCustomers)
}

// Delete implements recharge.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, customerID string) (recharge.Object, error) {
	return c.remove(ctx, customerID, nil, recharge.ScopeWriteCustomers)
}

// List implements recharge.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadCustomers)
}

// ListAll implements recharge.CustomersClient.ListAll.
func (c *CustomersClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadCustomers)
}

// GetDeliverySchedule implements recharge.CustomersClient.GetDeliverySchedule.
func (c *CustomersClient) GetDeliverySchedule(ctx context.Context, customerID string, query recharge.Query) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "getting customer delivery schedule",
		method:   nethttp.MethodGet,
		template: c.memberTemplate("delivery_schedule"),
		path:     c.memberPath(customerID, "delivery_schedule"),
		query:    query,
		key:      "customer",
		scopes:   []recharge.Scope{recharge.ScopeReadCustomers},
	})
}

// GetCreditSummary implements recharge.CustomersClient.GetCreditSummary.
func (c *CustomersClient) GetCreditSummary(ctx context.Context, customerID string) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "getting customer credit summary",
		method:   nethttp.MethodGet,
		template: c.memberTemplate("credit_summary"),
		path:     c.memberPath(customerID, "credit_summary"),
		key:      "credit_summary",
		scopes:   []recharge.Scope{recharge.ScopeReadCreditSummary},
	})
}

// Count implements recharge.V1CustomersClient.Count.
func (c *CustomersClient) Count(ctx context.Context, query recharge.Query) (int, error) {
	return c.countAll(ctx, query, recharge.ScopeReadCustomers)
}
