package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// NotificationsClient implements recharge.NotificationsClient.
type NotificationsClient struct {
	resource
}

// NewNotificationsClient creates a new notifications client for version.
func NewNotificationsClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *NotificationsClient {
	return &NotificationsClient{resource: newResource(transport, guard, version, "notification", "notifications")}
}

// SendEmail implements recharge.NotificationsClient.SendEmail.
func (c *NotificationsClient) SendEmail(ctx context.Context, customerID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "sending notification",
		method:   nethttp.MethodPost,
		template: "/customers/:customer_id/notifications",
		path:     joinPath("customers", customerID, "notifications"),
		body:     body,
		scopes:   []recharge.Scope{recharge.ScopeWriteNotifications},
	})
}
