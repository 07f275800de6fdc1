package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// AsyncBatchesClient implements recharge.AsyncBatchesClient.
type AsyncBatchesClient struct {
	resource
}

// NewAsyncBatchesClient creates a new async batches client for version.
func NewAsyncBatchesClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *AsyncBatchesClient {
	return &AsyncBatchesClient{resource: newResource(transport, guard, version, "async_batch", "async_batches")}
}

// Create implements recharge.AsyncBatchesClient.Create.
func (c *AsyncBatchesClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	return c.create(ctx, body, recharge.ScopeWriteBatches)
}

// Get implements recharge.AsyncBatchesClient.Get.
func (c *AsyncBatchesClient) Get(ctx context.Context, batchID string) (recharge.Object, error) {
	return c.get(ctx, batchID, recharge.ScopeReadBatches)
}

// List implements recharge.AsyncBatchesClient.List.
func (c *AsyncBatchesClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.list(ctx, query, recharge.ScopeReadBatches)
}

// ListAll implements recharge.AsyncBatchesClient.ListAll.
func (c *AsyncBatchesClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	return c.listAll(ctx, query, recharge.ScopeReadBatches)
}

// CreateTasks implements recharge.AsyncBatchesClient.CreateTasks. Up to
// 1000 tasks may be sent per call.
func (c *AsyncBatchesClient) CreateTasks(ctx context.Context, batchID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, call{
		action:   "creating async batch tasks",
		method:   nethttp.MethodPost,
		template: c.memberTemplate("tasks"),
		path:     c.memberPath(batchID, "tasks"),
		body:     body,
		scopes:   []recharge.Scope{recharge.ScopeWriteBatches},
	})
}

// ListTasks implements recharge.AsyncBatchesClient.ListTasks.
func (c *AsyncBatchesClient) ListTasks(ctx context.Context, batchID string, query recharge.Query) ([]recharge.Object, error) {
	return c.array(ctx, call{
		action:   "listing async batch tasks",
		method:   nethttp.MethodGet,
		template: c.memberTemplate("tasks"),
		path:     c.memberPath(batchID, "tasks"),
		query:    query,
		key:      "async_batch_tasks",
		scopes:   []recharge.Scope{recharge.ScopeReadBatches},
	})
}

// Process implements recharge.AsyncBatchesClient.Process.
func (c *AsyncBatchesClient) Process(ctx context.Context, batchID string) (recharge.Object, error) {
	return c.action(ctx, batchID, "process", nil, recharge.ScopeWriteBatches)
}
