package client

import (
	"context"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// AccountsClient implements recharge.AccountsClient.
type AccountsClient struct {
	resource
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(transport *http.Client, guard *auth.ScopeGuard) *AccountsClient {
	return &AccountsClient{resource: newResource(transport, guard, recharge.Version202111, "account", "accounts")}
}

// Get implements recharge.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, accountID string) (recharge.Object, error) {
	return c.get(ctx, accountID, recharge.ScopeReadAccounts)
}

// List implements recharge.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadAccounts)
}

// ListAll implements recharge.AccountsClient.ListAll.
func (c *AccountsClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadAccounts)
}
