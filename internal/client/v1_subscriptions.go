package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// V1SubscriptionsClient implements recharge.V1SubscriptionsClient.
type V1SubscriptionsClient struct {
	*SubscriptionsClient
}

// NewV1SubscriptionsClient creates a new 2021-01 subscriptions client.
func NewV1SubscriptionsClient(transport *http.Client, guard *auth.ScopeGuard) *V1SubscriptionsClient {
	return &V1SubscriptionsClient{SubscriptionsClient: NewSubscriptionsClient(transport, guard, recharge.Version202101)}
}

// Count implements recharge.V1SubscriptionsClient.Count.
func (c *V1SubscriptionsClient) Count(ctx context.Context, query recharge.Query) (int, error) {
	return c.countAll(ctx, query, recharge.ScopeReadSubscriptions)
}

// ChangeDate implements recharge.V1SubscriptionsClient.ChangeDate.
func (c *V1SubscriptionsClient) ChangeDate(ctx context.Context, subscriptionID string, body recharge.Object) (recharge.Object, error) {
	return c.action(ctx, subscriptionID, "change_date", body, recharge.ScopeWriteSubscriptions)
}

func (c *V1SubscriptionsClient) bulk(ctx context.Context, name string, body recharge.Object) ([]recharge.Object, error) {
	return c.array(ctx, call{
		action:   name + " subscriptions",
		method:   nethttp.MethodPost,
		template: "/subscriptions/" + name,
		path:     "/subscriptions/" + name,
		body:     body,
		key:      c.plural,
		scopes:   []recharge.Scope{recharge.ScopeWriteSubscriptions},
	})
}

// BulkCreate implements recharge.V1SubscriptionsClient.BulkCreate.
func (c *V1SubscriptionsClient) BulkCreate(ctx context.Context, body recharge.Object) ([]recharge.Object, error) {
	return c.bulk(ctx, "bulk_create", body)
}

// BulkUpdate implements recharge.V1SubscriptionsClient.BulkUpdate.
func (c *V1SubscriptionsClient) BulkUpdate(ctx context.Context, body recharge.Object) ([]recharge.Object, error) {
	return c.bulk(ctx, "bulk_update", body)
}

// BulkDelete implements recharge.V1SubscriptionsClient.BulkDelete.
func (c *V1SubscriptionsClient) BulkDelete(ctx context.Context, body recharge.Object) ([]recharge.Object, error) {
	return c.bulk(ctx, "bulk_delete", body)
}
