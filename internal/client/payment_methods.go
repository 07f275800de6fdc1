package client

import (
	"context"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// PaymentMethodsClient implements recharge.PaymentMethodsClient.
type PaymentMethodsClient struct {
	resource
}

// NewPaymentMethodsClient creates a new payment methods client.
func NewPaymentMethodsClient(transport *http.Client, guard *auth.ScopeGuard) *PaymentMethodsClient {
	return &PaymentMethodsClient{
		resource: newResource(transport, guard, recharge.Version202111, "payment_method", "payment_methods"),
	}
}

// Create implements recharge.PaymentMethodsClient.Create.
func (c *PaymentMethodsClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWritePaymentMethods)
}

// Get implements recharge.PaymentMethodsClient.Get.
func (c *PaymentMethodsClient) Get(ctx context.Context, paymentMethodID string) (recharge.Object, error) {
	return c.get(ctx, paymentMethodID, recharge.ScopeReadPaymentMethods)
}

// Update implements recharge.PaymentMethodsClient.Update.
func (c *PaymentMethodsClient) Update(ctx context.Context, paymentMethodID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, paymentMethodID, body, recharge.ScopeWritePaymentMethods)
}

// Delete implements recharge.PaymentMethodsClient.Delete.
func (c *PaymentMethodsClient) Delete(ctx context.Context, paymentMethodID string) (recharge.Object, error) {
	return c.remove(ctx, paymentMethodID, nil, recharge.ScopeWritePaymentMethods)
}

// List implements recharge.PaymentMethodsClient.List.
func (c *PaymentMethodsClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadPaymentMethods)
}

// ListAll implements recharge.PaymentMethodsClient.ListAll.
func (c *PaymentMethodsClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadPaymentMethods)
}
