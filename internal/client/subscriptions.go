package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// SubscriptionsClient implements recharge.SubscriptionsClient.
type SubscriptionsClient struct {
	resource
}

// NewSubscriptionsClient creates a new subscriptions client for version.
func NewSubscriptionsClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *SubscriptionsClient {
	return &SubscriptionsClient{resource: newResource(transport, guard, version, "subscription", "subscriptions")}
}

// Create implements recharge.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteSubscriptions)
}

// Get implements recharge.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, subscriptionID string) (recharge.Object, error) {
	return c.get(ctx, subscriptionID, recharge.ScopeReadSubscriptions)
}

// Update implements recharge.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, subscriptionID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, subscriptionID, body, recharge.ScopeWriteSubscriptions)
}

// Delete implements recharge.SubscriptionsClient.Delete. body carries the
// cancellation reason.
func (c *SubscriptionsClient) Delete(ctx context.Context, subscriptionID string, body recharge.Object) (recharge.Object, error) {
	return c.remove(ctx, subscriptionID, body, recharge.ScopeWriteSubscriptions)
}

// List implements recharge.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadSubscriptions)
}

// ListAll implements recharge.SubscriptionsClient.ListAll.
func (c *SubscriptionsClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadSubscriptions)
}

// ChangeDate implements recharge.SubscriptionsClient.ChangeDate.
func (c *SubscriptionsClient) ChangeDate(ctx context.Context, subscriptionID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, subscriptionID, "set_next_charge_date", body, recharge.ScopeWriteSubscriptions)
}

// ChangeAddress implements recharge.SubscriptionsClient.ChangeAddress.
func (c *SubscriptionsClient) ChangeAddress(ctx context.Context, subscriptionID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, subscriptionID, "change_address", body, recharge.ScopeWriteSubscriptions)
}

// Cancel implements recharge.SubscriptionsClient.Cancel.
func (c *SubscriptionsClient) Cancel(ctx context.Context, subscriptionID string, body recharge.Object) (recharge.Object, error) {
	if body == nil {
		body = recharge.Object{}
	}

	return c.action(ctx, subscriptionID, "cancel", body, recharge.ScopeWriteSubscriptions)
}

// Activate implements recharge.SubscriptionsClient.Activate.
func (c *SubscriptionsClient) Activate(ctx context.Context, subscriptionID string) (recharge.Object, error) {
	return c.action(ctx, subscriptionID, "activate", recharge.Object{}, recharge.ScopeWriteSubscriptions)
}

// SkipGift implements recharge.SubscriptionsClient.SkipGift.
func (c *SubscriptionsClient) SkipGift(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "skipping gift subscriptions",
		method:   nethttp.MethodPost,
		template: "/subscriptions/skip_gift",
		path:     "/subscriptions/skip_gift",
		body:     body,
		scopes:   []recharge.Scope{recharge.ScopeWriteSubscriptions},
	})
}
