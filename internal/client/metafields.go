package client

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// Static errors for err113 compliance.
var (
	ErrUnknownMetafieldOwner  = errors.New("unknown metafield owner resource")
	ErrMetafieldOwnerReadOnly = errors.New("metafields of this owner resource are read only")
)

type ownerScopes struct {
	read  recharge.Scope
	write recharge.Scope
}

var metafieldOwnerScopes = map[recharge.MetafieldOwner]ownerScopes{
	recharge.MetafieldOwnerAddress:      {read: recharge.ScopeReadCustomers, write: recharge.ScopeWriteCustomers},
	recharge.MetafieldOwnerStore:        {read: recharge.ScopeStoreInfo},
	recharge.MetafieldOwnerCustomer:     {read: recharge.ScopeReadCustomers, write: recharge.ScopeWriteCustomers},
	recharge.MetafieldOwnerSubscription: {read: recharge.ScopeReadSubscriptions, write: recharge.ScopeWriteSubscriptions},
	recharge.MetafieldOwnerOrder:        {read: recharge.ScopeReadOrders, write: recharge.ScopeWriteOrders},
	recharge.MetafieldOwnerCharge:       {read: recharge.ScopeReadOrders, write: recharge.ScopeWriteOrders},
}

// MetafieldsClient implements recharge.MetafieldsClient. The scopes of a
// call are those of the owner resource, so the owner is part of the
// endpoint signature checked by the scope guard.
type MetafieldsClient struct {
	resource
}

// NewMetafieldsClient creates a new metafields client for version.
func NewMetafieldsClient(transport *http.Client, guard *auth.ScopeGuard, version recharge.Version) *MetafieldsClient {
	return &MetafieldsClient{resource: newResource(transport, guard, version, "metafield", "metafields")}
}

func (c *MetafieldsClient) scope(owner recharge.MetafieldOwner, write bool) (recharge.Scope, error) {
	scopes, ok := metafieldOwnerScopes[owner]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetafieldOwner, string(owner))
	}

	if !write {
		return scopes.read, nil
	}

	if scopes.write == "" {
		return "", fmt.Errorf("%w: %q", ErrMetafieldOwnerReadOnly, string(owner))
	}

	return scopes.write, nil
}

func ownerTemplate(template string, owner recharge.MetafieldOwner) string {
	return template + "?owner_resource=" + string(owner)
}

// withOwner returns body with owner_resource set, leaving body untouched.
func withOwner(body recharge.Object, owner recharge.MetafieldOwner) recharge.Object {
	merged := make(recharge.Object, len(body)+1)
	for key, value := range body {
		merged[key] = value
	}

	if _, ok := merged["owner_resource"]; !ok {
		merged["owner_resource"] = string(owner)
	}

	return merged
}

// Create implements recharge.MetafieldsClient.Create.
func (c *MetafieldsClient) Create(ctx context.Context, owner recharge.MetafieldOwner, body recharge.Object) (recharge.Object, error) {
	scope, err := c.scope(owner, true)
	if err != nil {
		return nil, fmt.Errorf("creating metafield: %w", err)
	}

	return c.object(ctx, call{
		action:   "creating metafield",
		method:   nethttp.MethodPost,
		template: ownerTemplate(c.collectionTemplate(), owner),
		path:     c.collectionPath(),
		body:     withOwner(body, owner),
		key:      c.singular,
		scopes:   []recharge.Scope{scope},
	})
}

// Get implements recharge.MetafieldsClient.Get.
func (c *MetafieldsClient) Get(ctx context.Context, owner recharge.MetafieldOwner, metafieldID string) (recharge.Object, error) {
	scope, err := c.scope(owner, false)
	if err != nil {
		return nil, fmt.Errorf("getting metafield: %w", err)
	}

	return c.object(ctx, call{
		action:   "getting metafield",
		method:   nethttp.MethodGet,
		template: ownerTemplate(c.memberTemplate(), owner),
		path:     c.memberPath(metafieldID),
		key:      c.singular,
		scopes:   []recharge.Scope{scope},
	})
}

// Update implements recharge.MetafieldsClient.Update.
func (c *MetafieldsClient) Update(ctx context.Context, owner recharge.MetafieldOwner, metafieldID string, body recharge.Object) (recharge.Object, error) {
	scope, err := c.scope(owner, true)
	if err != nil {
		return nil, fmt.Errorf("updating metafield: %w", err)
	}

	return c.object(ctx, call{
		action:   "updating metafield",
		method:   nethttp.MethodPut,
		template: ownerTemplate(c.memberTemplate(), owner),
		path:     c.memberPath(metafieldID),
		body:     withOwner(body, owner),
		key:      c.singular,
		scopes:   []recharge.Scope{scope},
	})
}

// Delete implements recharge.MetafieldsClient.Delete.
func (c *MetafieldsClient) Delete(ctx context.Context, owner recharge.MetafieldOwner, metafieldID string) (recharge.Object, error) {
	scope, err := c.scope(owner, true)
	if err != nil {
		return nil, fmt.Errorf("deleting metafield: %w", err)
	}

	return c.object(ctx, call{
		action:   "deleting metafield",
		method:   nethttp.MethodDelete,
		template: ownerTemplate(c.memberTemplate(), owner),
		path:     c.memberPath(metafieldID),
		key:      c.singular,
		scopes:   []recharge.Scope{scope},
	})
}

// ownerQuery returns query filtered to owner, leaving query untouched.
func ownerQuery(query recharge.Query, owner recharge.MetafieldOwner) recharge.Query {
	filtered := recharge.NewQuery()
	for key, value := range query {
		filtered[key] = value
	}

	filtered["owner_resource"] = string(owner)

	return filtered
}

func (c *MetafieldsClient) ownerListCall(owner recharge.MetafieldOwner, query recharge.Query) (call, error) {
	scope, err := c.scope(owner, false)
	if err != nil {
		return call{}, fmt.Errorf("listing metafields: %w", err)
	}

	listing := c.listCall(ownerQuery(query, owner), []recharge.Scope{scope})
	listing.template = ownerTemplate(listing.template, owner)

	return listing, nil
}

// List implements recharge.MetafieldsClient.List.
func (c *MetafieldsClient) List(ctx context.Context, owner recharge.MetafieldOwner, query recharge.Query) ([]recharge.Object, error) {
	listing, err := c.ownerListCall(owner, query)
	if err != nil {
		return nil, err
	}

	return c.array(ctx, listing)
}

// ListAll implements recharge.MetafieldsClient.ListAll.
func (c *MetafieldsClient) ListAll(ctx context.Context, owner recharge.MetafieldOwner, query recharge.Query) ([]recharge.Object, error) {
	listing, err := c.ownerListCall(owner, query)
	if err != nil {
		return nil, err
	}

	return c.all(ctx, listing)
}

// Count implements recharge.V1MetafieldsClient.Count.
func (c *MetafieldsClient) Count(ctx context.Context, owner recharge.MetafieldOwner, query recharge.Query) (int, error) {
	scope, err := c.scope(owner, false)
	if err != nil {
		return 0, fmt.Errorf("counting metafields: %w", err)
	}

	return c.count(ctx, call{
		action:   "counting metafields",
		method:   nethttp.MethodGet,
		template: ownerTemplate(c.collectionTemplate()+"/count", owner),
		path:     c.collectionPath() + "/count",
		query:    ownerQuery(query, owner),
		scopes:   []recharge.Scope{scope},
	})
}
