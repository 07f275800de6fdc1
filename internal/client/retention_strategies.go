package client

import (
	"context"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// RetentionStrategiesClient implements recharge.RetentionStrategiesClient.
type RetentionStrategiesClient struct {
	resource
}

// NewRetentionStrategiesClient creates a new retention strategies client.
func NewRetentionStrategiesClient(transport *http.Client, guard *auth.ScopeGuard) *RetentionStrategiesClient {
	return &RetentionStrategiesClient{
		resource: newResource(transport, guard, recharge.Version202111, "retention_strategy", "retention_strategies"),
	}
}

// Create implements recharge.RetentionStrategiesClient.Create.
func (c *RetentionStrategiesClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteRetentionStrategies)
}

// Get implements recharge.RetentionStrategiesClient.Get.
func (c *RetentionStrategiesClient) Get(ctx context.Context, strategyID string) (recharge.Object, error) {
	return c.get(ctx, strategyID, recharge.ScopeReadSubscriptions)
}

// Update implements recharge.RetentionStrategiesClient.Update.
func (c *RetentionStrategiesClient) Update(ctx context.Context, strategyID string, body recharge.Object) (recharge.Object, error) {
	return c.update(ctx, strategyID, body, recharge.ScopeWriteRetentionStrategies)
}

// Delete implements recharge.RetentionStrategiesClient.Delete.
func (c *RetentionStrategiesClient) Delete(ctx context.Context, strategyID string) (recharge.Object, error) {
	return c.remove(ctx, strategyID, nil, recharge.ScopeWriteRetentionStrategies)
}

// List implements recharge.RetentionStrategiesClient.List.
func (c *RetentionStrategiesClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadSubscriptions)
}

// ListAll implements recharge.RetentionStrategiesClient.ListAll.
func (c *RetentionStrategiesClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadSubscriptions)
}
