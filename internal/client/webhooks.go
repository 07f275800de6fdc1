package client

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"strings"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// Static errors for err113 compliance.
var (
	ErrWebhookTopicRequired = errors.New("webhook topic is required")
	ErrUnknownWebhookTopic  = errors.New("unknown webhook topic")
)

// webhookTopicScopes maps the resource prefix of a topic such as
// "charge/created" to the scope needed to subscribe to it.
var webhookTopicScopes = map[string]recharge.Scope{
	"address":          recharge.ScopeReadCustomers,
	"async_batch":      recharge.ScopeReadBatches,
	"bundle_selection": recharge.ScopeReadSubscriptions,
	"customer":         recharge.ScopeReadCustomers,
	"charge":           recharge.ScopeReadOrders,
	"checkout":         recharge.ScopeReadCheckouts,
	"onetime":          recharge.ScopeReadSubscriptions,
	"order":            recharge.ScopeReadOrders,
	"product":          recharge.ScopeReadProducts,
	"subscription":     recharge.ScopeReadSubscriptions,
	"shop":             recharge.ScopeStoreInfo,
	"recharge":         recharge.ScopeStoreInfo,
}

// WebhookTopicScope returns the scope required to subscribe to topic.
func WebhookTopicScope(topic string) (recharge.Scope, error) {
	if topic == "" {
		return "", ErrWebhookTopicRequired
	}

	prefix, _, _ := strings.Cut(topic, "/")

	scope, ok := webhookTopicScopes[prefix]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWebhookTopic, topic)
	}

	return scope, nil
}

// WebhooksClient implements recharge.WebhooksClient for both API versions.
// Only Create is scope checked.
type WebhooksClient struct {
	resource
}

// NewWebhooksClient creates a new webhooks client for version.
func NewWebhooksClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *WebhooksClient {
	return &WebhooksClient{resource: newResource(transport, guard, version, "webhook", "webhooks")}
}

// Create implements recharge.WebhooksClient.Create. The scope is derived
// from body["topic"].
func (c *WebhooksClient) Create(ctx context.Context, body recharge.Object) (recharge.Object, error) {
	topic := body.Field("topic")

	scope, err := WebhookTopicScope(topic)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	prefix, _, _ := strings.Cut(topic, "/")

	return c.object(ctx, call{
		action:   "creating webhook",
		method:   nethttp.MethodPost,
		template: c.collectionTemplate() + "?topic=" + prefix,
		path:     c.collectionPath(),
		body:     body,
		key:      c.singular,
		scopes:   []recharge.Scope{scope},
	})
}

func (c *WebhooksClient) unscoped(action, method, path string, body recharge.Object) call {
	return call{
		action:   action,
		method:   method,
		path:     path,
		body:     body,
		key:      c.singular,
		unscoped: true,
	}
}

// Get implements recharge.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, webhookID string) (recharge.Object, error) {
	return c.object(ctx, c.unscoped("getting webhook", nethttp.MethodGet, c.memberPath(webhookID), nil))
}

// Update implements recharge.WebhooksClient.Update.
func (c *WebhooksClient) Update(ctx context.Context, webhookID string, body recharge.Object) (recharge.Object, error) {
	return c.object(ctx, c.unscoped("updating webhook", nethttp.MethodPut, c.memberPath(webhookID), body))
}

// Delete implements recharge.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, webhookID string) (recharge.Object, error) {
	return c.object(ctx, c.unscoped("deleting webhook", nethttp.MethodDelete, c.memberPath(webhookID), nil))
}

// List implements recharge.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	listing := c.listCall(query, nil)
	listing.unscoped = true

	return c.array(ctx, listing)
}

// ListAll implements recharge.WebhooksClient.ListAll.
func (c *WebhooksClient) ListAll(ctx context.Context, query recharge.Query) ([]recharge.Object, error) {
	listing := c.listCall(query, nil)
	listing.unscoped = true

	return c.all(ctx, listing)
}

// Test implements recharge.WebhooksClient.Test. The response body is
// returned whole.
func (c *WebhooksClient) Test(ctx context.Context, webhookID string) (recharge.Object, error) {
	test := c.unscoped("testing webhook", nethttp.MethodPost, c.memberPath(webhookID, "test"), nil)
	test.key = ""

	return c.object(ctx, test)
}
