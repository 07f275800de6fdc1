package client

import (
	"context"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// EventsClient implements recharge.EventsClient.
type EventsClient struct {
	resource
}

// NewEventsClient creates a new events client.
func NewEventsClient(transport *http.Client, guard *auth.ScopeGuard) *EventsClient {
	return &EventsClient{resource: newResource(transport, guard, recharge.Version202111, "event", "events")}
}

// List implements recharge.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadEvents)
}

// ListAll implements recharge.EventsClient.ListAll.
func (c *EventsClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadEvents)
}

// Walk implements recharge.EventsClient.Walk.
func (c *EventsClient) Walk(ctx context.Context, query recharge.Query, fn func(page []recharge.Object) error) error {
	return c.walk(ctx, c.listCall(query, []recharge.Scope{recharge.ScopeReadEvents}), fn)
}
