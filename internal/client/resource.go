package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	rechargehttp "github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// Static errors for err113 compliance.
var (
	ErrCountMissing = errors.New("response has no count")
)

// resource is the shared base of every resource client. It checks the
// scopes of an endpoint, then delegates to the transport with the
// resource's API version.
type resource struct {
	transport *rechargehttp.Client
	guard     *auth.ScopeGuard
	version   recharge.Version

	// singular and plural are the envelope keys of one record and of a
	// listing, e.g. "charge" and "charges".
	singular string
	plural   string
}

func newResource(transport *rechargehttp.Client, guard *auth.ScopeGuard, version recharge.Version, singular, plural string) resource {
	return resource{
		transport: transport,
		guard:     guard,
		version:   version,
		singular:  singular,
		plural:    plural,
	}
}

// call describes one endpoint invocation. template is the endpoint
// signature used by the scope guard, path the concrete URL path.
type call struct {
	action   string
	method   string
	template string
	path     string
	body     recharge.Object
	query    recharge.Query
	key      string
	scopes   []recharge.Scope
	unscoped bool
}

func (r *resource) authorize(c *call) error {
	if c.unscoped || r.guard == nil {
		return nil
	}

	err := r.guard.Check(r.version, c.method, c.template, c.scopes...)
	if err != nil {
		return fmt.Errorf("%s: %w", c.action, err)
	}

	return nil
}

func (r *resource) send(ctx context.Context, c *call, shape recharge.Shape) (rechargehttp.Payload, error) {
	err := r.authorize(c)
	if err != nil {
		return rechargehttp.Payload{}, err
	}

	var (
		payload rechargehttp.Payload
		body    interface{}
	)

	if c.body != nil {
		body = c.body
	}

	query := c.query.ToValues()

	switch c.method {
	case http.MethodGet:
		payload, err = r.transport.Get(ctx, c.path, query, c.key, shape, r.version)
	case http.MethodPost:
		payload, err = r.transport.Post(ctx, c.path, body, query, c.key, shape, r.version)
	case http.MethodPut:
		payload, err = r.transport.Put(ctx, c.path, body, query, c.key, shape, r.version)
	case http.MethodDelete:
		payload, err = r.transport.Delete(ctx, c.path, body, c.key, shape, r.version)
	default:
		return rechargehttp.Payload{}, fmt.Errorf("%s: %w", c.action, rechargehttp.ErrMethodRequired)
	}

	if err != nil {
		return rechargehttp.Payload{}, fmt.Errorf("%s: %w", c.action, err)
	}

	return payload, nil
}

// object runs c and returns the record under c.key.
func (r *resource) object(ctx context.Context, c call) (recharge.Object, error) {
	payload, err := r.send(ctx, &c, recharge.ShapeObject)
	if err != nil {
		return nil, err
	}

	return payload.Object, nil
}

// array runs c and returns the records under c.key.
func (r *resource) array(ctx context.Context, c call) ([]recharge.Object, error) {
	payload, err := r.send(ctx, &c, recharge.ShapeArray)
	if err != nil {
		return nil, err
	}

	return payload.Array, nil
}

// all walks every page of the listing c describes.
func (r *resource) all(ctx context.Context, c call) ([]recharge.Object, error) {
	err := r.authorize(&c)
	if err != nil {
		return nil, err
	}

	items, err := r.transport.Paginate(ctx, c.path, c.query.ToValues(), c.key, r.version)
	if err != nil {
		return items, fmt.Errorf("%s: %w", c.action, err)
	}

	return items, nil
}

// walk calls fn with every page of the listing c describes.
func (r *resource) walk(ctx context.Context, c call, fn func(page []recharge.Object) error) error {
	err := r.authorize(&c)
	if err != nil {
		return err
	}

	err = r.transport.PaginateFunc(ctx, c.path, c.query.ToValues(), c.key, r.version, fn)
	if err != nil {
		return fmt.Errorf("%s: %w", c.action, err)
	}

	return nil
}

// count runs c and returns the integer under "count".
func (r *resource) count(ctx context.Context, c call) (int, error) {
	c.key = ""

	payload, err := r.send(ctx, &c, recharge.ShapeObject)
	if err != nil {
		return 0, err
	}

	value, ok := payload.Object["count"].(float64)
	if !ok {
		return 0, fmt.Errorf("%s: %w", c.action, ErrCountMissing)
	}

	return int(value), nil
}

// Standard record operations on /<plural> and /<plural>/:<singular>_id.

func (r *resource) collectionPath() string {
	return "/" + r.plural
}

func (r *resource) collectionTemplate() string {
	return "/" + r.plural
}

func (r *resource) memberPath(id string, extra ...string) string {
	return joinPath(append([]string{r.plural, id}, extra...)...)
}

func (r *resource) memberTemplate(extra ...string) string {
	parts := append([]string{"", r.plural, ":" + r.singular + "_id"}, extra...)

	return strings.Join(parts, "/")
}

func (r *resource) create(ctx context.Context, body recharge.Object, scopes ...recharge.Scope) (recharge.Object, error) {
	return r.object(ctx, call{
		action:   "creating " + r.singular,
		method:   http.MethodPost,
		template: r.collectionTemplate(),
		path:     r.collectionPath(),
		body:     body,
		key:      r.singular,
		scopes:   scopes,
	})
}

func (r *resource) get(ctx context.Context, id string, scopes ...recharge.Scope) (recharge.Object, error) {
	return r.object(ctx, call{
		action:   "getting " + r.singular,
		method:   http.MethodGet,
		template: r.memberTemplate(),
		path:     r.memberPath(id),
		key:      r.singular,
		scopes:   scopes,
	})
}

func (r *resource) update(ctx context.Context, id string, body recharge.Object, scopes ...recharge.Scope) (recharge.Object, error) {
	return r.object(ctx, call{
		action:   "updating " + r.singular,
		method:   http.MethodPut,
		template: r.memberTemplate(),
		path:     r.memberPath(id),
		body:     body,
		key:      r.singular,
		scopes:   scopes,
	})
}

func (r *resource) remove(ctx context.Context, id string, body recharge.Object, scopes ...recharge.Scope) (recharge.Object, error) {
	return r.object(ctx, call{
		action:   "deleting " + r.singular,
		method:   http.MethodDelete,
		template: r.memberTemplate(),
		path:     r.memberPath(id),
		body:     body,
		key:      r.singular,
		scopes:   scopes,
	})
}

func (r *resource) listCall(query recharge.Query, scopes []recharge.Scope) call {
	return call{
		action:   "listing " + r.plural,
		method:   http.MethodGet,
		template: r.collectionTemplate(),
		path:     r.collectionPath(),
		query:    query,
		key:      r.plural,
		scopes:   scopes,
	}
}

func (r *resource) list(ctx context.Context, query recharge.Query, scopes ...recharge.Scope) ([]recharge.Object, error) {
	return r.array(ctx, r.listCall(query, scopes))
}

func (r *resource) listAll(ctx context.Context, query recharge.Query, scopes ...recharge.Scope) ([]recharge.Object, error) {
	return r.all(ctx, r.listCall(query, scopes))
}

func (r *resource) countAll(ctx context.Context, query recharge.Query, scopes ...recharge.Scope) (int, error) {
	return r.count(ctx, call{
		action:   "counting " + r.plural,
		method:   http.MethodGet,
		template: r.collectionTemplate() + "/count",
		path:     r.collectionPath() + "/count",
		query:    query,
		scopes:   scopes,
	})
}

// action runs a POST on a member sub-path such as /charges/:charge_id/skip.
func (r *resource) action(ctx context.Context, id, name string, body recharge.Object, scopes ...recharge.Scope) (recharge.Object, error) {
	return r.object(ctx, call{
		action:   strings.ReplaceAll(name, "_", " ") + " " + r.singular,
		method:   http.MethodPost,
		template: r.memberTemplate(name),
		path:     r.memberPath(id, name),
		body:     body,
		key:      r.singular,
		scopes:   scopes,
	})
}

// joinPath builds an absolute path from escaped segments.
func joinPath(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}

	return "/" + strings.Join(escaped, "/")
}
