package client_test

import (
	"context"
	"net/http"
	"testing"

	. "github.com/fivetwenty-io/recharge-client/internal/client"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

func TestV1AddressesClient(t *testing.T) {
	t.Parallel()

	address := recharge.Object{"id": float64(7)}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "create under customer",
			Method:   http.MethodPost,
			Path:     "/customers/3/addresses",
			Version:  recharge.Version202101,
			Response: map[string]interface{}{"address": address},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Addresses().Create(ctx, "3", recharge.Object{"address1": "1 Main St"})
			},
			Want: address,
		},
		{
			Name:     "list under customer",
			Method:   http.MethodGet,
			Path:     "/customers/3/addresses",
			Response: map[string]interface{}{"addresses": []interface{}{address}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Addresses().List(ctx, "3", nil)
			},
			Want: []recharge.Object{address},
		},
		{
			Name:     "count",
			Method:   http.MethodGet,
			Path:     "/addresses/count",
			Response: map[string]interface{}{"count": 12},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Addresses().Count(ctx, nil)
			},
			Want: 12,
		},
		{
			Name:     "validate needs no scope",
			Method:   http.MethodPost,
			Path:     "/addresses/validate_address",
			Scopes:   []recharge.Scope{recharge.ScopeReadEvents},
			Response: map[string]interface{}{"errors": map[string]interface{}{}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Addresses().Validate(ctx, recharge.Object{"zip": "90210"})
			},
			Want: recharge.Object{"errors": map[string]interface{}{}},
		},
		{
			Name:     "apply discount",
			Method:   http.MethodPost,
			Path:     "/addresses/7/apply_discount",
			Scopes:   []recharge.Scope{recharge.ScopeWriteDiscounts},
			Body:     map[string]interface{}{"discount_code": "SAVE"},
			Response: map[string]interface{}{"address": address},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Addresses().ApplyDiscount(ctx, "7", recharge.Object{"discount_code": "SAVE"})
			},
			Want: address,
		},
		{
			Name:     "remove discount",
			Method:   http.MethodPost,
			Path:     "/addresses/7/remove_discount",
			Scopes:   []recharge.Scope{recharge.ScopeWriteDiscounts},
			Response: map[string]interface{}{"address": address},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Addresses().RemoveDiscount(ctx, "7")
			},
			Want: address,
		},
	})
}

func TestV1ChargesClient(t *testing.T) {
	t.Parallel()

	charge := recharge.Object{"id": float64(42)}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "count",
			Path:     "/charges/count",
			Query:    "status=queued",
			Version:  recharge.Version202101,
			Response: map[string]interface{}{"count": 3},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Charges().Count(ctx, recharge.NewQuery().With("status", "queued"))
			},
			Want: 3,
		},
		{
			Name:     "change next charge date",
			Method:   http.MethodPut,
			Path:     "/charges/42/change_next_charge_date",
			Body:     map[string]interface{}{"next_charge_date": "2024-03-01"},
			Response: map[string]interface{}{"charge": charge},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Charges().ChangeNextChargeDate(ctx, "42", recharge.Object{"next_charge_date": "2024-03-01"})
			},
			Want: charge,
		},
		{
			Name:     "refund uses write_payments",
			Method:   http.MethodPost,
			Path:     "/charges/42/refund",
			Scopes:   []recharge.Scope{recharge.ScopeWriteOrders, recharge.ScopeWritePayments},
			Version:  recharge.Version202101,
			Response: map[string]interface{}{"charge": charge},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.V1().Charges().Refund(ctx, "42", nil) },
			Want:     charge,
		},
		{
			Name:     "count without count in body",
			Response: map[string]interface{}{"total": 3},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.V1().Charges().Count(ctx, nil) },
			WantErr:  ErrCountMissing,
		},
	})
}

func TestV1OrdersClient(t *testing.T) {
	t.Parallel()

	order := recharge.Object{"id": float64(11)}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "change date",
			Method:   http.MethodPost,
			Path:     "/orders/11/change_date",
			Response: map[string]interface{}{"order": order},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Orders().ChangeDate(ctx, "11", recharge.Object{"scheduled_at": "2024-01-01"})
			},
			Want: order,
		},
		{
			Name:     "change variant",
			Method:   http.MethodPut,
			Path:     "/orders/11/update_shopify_variant/99",
			Response: map[string]interface{}{"order": order},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Orders().ChangeVariant(ctx, "11", "99", recharge.Object{"new_shopify_variant_id": 100})
			},
			Want: order,
		},
		{
			Name:     "clone onto charge",
			Method:   http.MethodPost,
			Path:     "/orders/clone_order_on_success_charge/11/charge/42",
			Version:  recharge.Version202101,
			Response: map[string]interface{}{"order": order},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Orders().Clone(ctx, "11", "42", recharge.Object{"scheduled_at": "2024-01-01"})
			},
			Want: order,
		},
		{
			Name:     "count",
			Path:     "/orders/count",
			Response: map[string]interface{}{"count": 0},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.V1().Orders().Count(ctx, nil) },
			Want:     0,
		},
	})
}

func TestV1ShopAndSubscriptions(t *testing.T) {
	t.Parallel()

	subscription := recharge.Object{"id": float64(5)}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "shop",
			Path:     "/shop",
			Version:  recharge.Version202101,
			Scopes:   []recharge.Scope{recharge.ScopeStoreInfo},
			Response: map[string]interface{}{"shop": map[string]interface{}{"name": "shop"}},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.V1().Shop().Get(ctx) },
			Want:     recharge.Object{"name": "shop"},
		},
		{
			Name:   "shipping countries",
			Path:   "/shop/shipping_countries",
			Scopes: []recharge.Scope{recharge.ScopeStoreInfo},
			Response: map[string]interface{}{"shipping_countries": []interface{}{
				map[string]interface{}{"code": "US"},
			}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) { return c.V1().Shop().ShippingCountries(ctx) },
			Want: []recharge.Object{{"code": "US"}},
		},
		{
			Name:     "change date",
			Method:   http.MethodPost,
			Path:     "/subscriptions/5/change_date",
			Response: map[string]interface{}{"subscription": subscription},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Subscriptions().ChangeDate(ctx, "5", recharge.Object{"date": "2024-02-01"})
			},
			Want: subscription,
		},
		{
			Name:     "bulk create",
			Method:   http.MethodPost,
			Path:     "/subscriptions/bulk_create",
			Response: map[string]interface{}{"subscriptions": []interface{}{subscription}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Subscriptions().BulkCreate(ctx, recharge.Object{"subscriptions": []interface{}{}})
			},
			Want: []recharge.Object{subscription},
		},
		{
			Name:      "bulk delete without write scope",
			Scopes:    []recharge.Scope{recharge.ScopeReadSubscriptions},
			Call:      func(ctx context.Context, c *Client) (interface{}, error) { return c.V1().Subscriptions().BulkDelete(ctx, nil) },
			WantErr:   recharge.ErrAuthorization,
			NoRequest: true,
		},
		{
			Name:     "customers count",
			Path:     "/customers/count",
			Version:  recharge.Version202101,
			Response: map[string]interface{}{"count": 9},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.V1().Customers().Count(ctx, nil) },
			Want:     9,
		},
		{
			Name:     "webhooks use 2021-01",
			Path:     "/webhooks/1",
			Version:  recharge.Version202101,
			Response: map[string]interface{}{"webhook": map[string]interface{}{"id": "1"}},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.V1().Webhooks().Get(ctx, "1") },
			Want:     recharge.Object{"id": "1"},
		},
	})
}

func TestV1SharedResources(t *testing.T) {
	t.Parallel()

	metafield := recharge.Object{"id": float64(2), "key": "gift"}
	batch := recharge.Object{"id": float64(5), "batch_type": "discount_create"}
	checkout := recharge.Object{"token": "abc"}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "async batch create",
			Method:   http.MethodPost,
			Path:     "/async_batches",
			Version:  recharge.Version202101,
			Scopes:   []recharge.Scope{recharge.ScopeWriteBatches},
			Response: map[string]interface{}{"async_batch": batch},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().AsyncBatches().Create(ctx, recharge.Object{"batch_type": "discount_create"})
			},
			Want: batch,
		},
		{
			Name:     "checkout get",
			Method:   http.MethodGet,
			Path:     "/checkouts/abc",
			Version:  recharge.Version202101,
			Scopes:   []recharge.Scope{recharge.ScopeReadCheckouts},
			Response: map[string]interface{}{"checkout": checkout},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.V1().Checkouts().Get(ctx, "abc") },
			Want:     checkout,
		},
		{
			Name:     "metafield list",
			Method:   http.MethodGet,
			Path:     "/metafields",
			Query:    "owner_resource=customer",
			Version:  recharge.Version202101,
			Scopes:   []recharge.Scope{recharge.ScopeReadCustomers},
			Response: map[string]interface{}{"metafields": []interface{}{metafield}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Metafields().List(ctx, recharge.MetafieldOwnerCustomer, nil)
			},
			Want: []recharge.Object{metafield},
		},
		{
			Name:     "metafield count",
			Method:   http.MethodGet,
			Path:     "/metafields/count",
			Query:    "owner_resource=subscription",
			Version:  recharge.Version202101,
			Scopes:   []recharge.Scope{recharge.ScopeReadSubscriptions},
			Response: map[string]interface{}{"count": 4},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Metafields().Count(ctx, recharge.MetafieldOwnerSubscription, nil)
			},
			Want: 4,
		},
		{
			Name:      "metafield count checks the owner scope",
			Scopes:    []recharge.Scope{recharge.ScopeReadCustomers},
			WantErr:   recharge.ErrAuthorization,
			NoRequest: true,
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Metafields().Count(ctx, recharge.MetafieldOwnerOrder, nil)
			},
		},
		{
			Name:     "notification email",
			Method:   http.MethodPost,
			Path:     "/customers/3/notifications",
			Version:  recharge.Version202101,
			Scopes:   []recharge.Scope{recharge.ScopeWriteNotifications},
			Body:     map[string]interface{}{"type": "email", "template_type": "get_account_access"},
			Response: map[string]interface{}{"status": "ok"},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.V1().Notifications().SendEmail(ctx, "3", recharge.Object{"type": "email", "template_type": "get_account_access"})
			},
			Want: recharge.Object{"status": "ok"},
		},
	})
}
