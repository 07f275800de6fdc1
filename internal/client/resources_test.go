package client_test

import (
	"context"
	"net/http"
	"testing"

	. "github.com/fivetwenty-io/recharge-client/internal/client"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

func TestChargesClient(t *testing.T) {
	t.Parallel()

	charge := recharge.Object{"id": float64(42), "status": "queued"}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "get",
			Method:   http.MethodGet,
			Path:     "/charges/42",
			Version:  recharge.Version202111,
			Response: map[string]interface{}{"charge": charge},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Charges().Get(ctx, "42")
			},
			Want: charge,
		},
		{
			Name:     "list with query",
			Method:   http.MethodGet,
			Path:     "/charges",
			Query:    "limit=5&status=queued",
			Response: map[string]interface{}{"charges": []interface{}{charge}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Charges().List(ctx, recharge.NewQuery().WithLimit(5).With("status", "queued"))
			},
			Want: []recharge.Object{charge},
		},
		{
			Name:     "skip",
			Method:   http.MethodPost,
			Path:     "/charges/42/skip",
			Body:     map[string]interface{}{"purchase_item_ids": []interface{}{float64(1)}},
			Response: map[string]interface{}{"charge": charge},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Charges().Skip(ctx, "42", recharge.Object{"purchase_item_ids": []interface{}{1}})
			},
			Want: charge,
		},
		{
			Name:      "refund needs the payment methods scope",
			Scopes:    []recharge.Scope{recharge.ScopeWriteOrders},
			Call:      func(ctx context.Context, c *Client) (interface{}, error) { return c.Charges().Refund(ctx, "42", nil) },
			WantErr:   recharge.ErrAuthorization,
			NoRequest: true,
		},
		{
			Name:     "refund",
			Method:   http.MethodPost,
			Path:     "/charges/42/refund",
			Scopes:   []recharge.Scope{recharge.ScopeWriteOrders, recharge.ScopeWritePaymentMethods},
			Response: map[string]interface{}{"charge": charge},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Charges().Refund(ctx, "42", nil) },
			Want:     charge,
		},
		{
			Name:   "capture",
			Method: http.MethodPost,
			Path:   "/charges/42/capture_payment",
			Scopes: []recharge.Scope{
				recharge.ScopeWriteOrders,
				recharge.ScopeWritePaymentMethods,
				recharge.ScopeWriteSubscriptions,
				recharge.ScopeWriteCustomers,
			},
			Response: map[string]interface{}{"charge": charge},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Charges().Capture(ctx, "42") },
			Want:     charge,
		},
		{
			Name:       "not found",
			StatusCode: http.StatusNotFound,
			Response:   map[string]interface{}{"errors": "Not Found"},
			Call:       func(ctx context.Context, c *Client) (interface{}, error) { return c.Charges().Get(ctx, "404") },
			WantErr:    recharge.ErrNotFound,
		},
	})
}

func TestAddressesClient(t *testing.T) {
	t.Parallel()

	address := recharge.Object{"id": float64(7), "address1": "1 Main St"}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "create",
			Method:   http.MethodPost,
			Path:     "/addresses",
			Body:     map[string]interface{}{"customer_id": float64(3)},
			Response: map[string]interface{}{"address": address},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Addresses().Create(ctx, recharge.Object{"customer_id": 3})
			},
			Want: address,
		},
		{
			Name:     "merge",
			Method:   http.MethodPost,
			Path:     "/addresses/merge",
			Response: map[string]interface{}{"address": address},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Addresses().Merge(ctx, recharge.Object{"target_address": map[string]interface{}{"id": 7}})
			},
			Want: address,
		},
		{
			Name:     "skip charges returns the whole body",
			Method:   http.MethodPost,
			Path:     "/addresses/7/charges/skip",
			Response: map[string]interface{}{"charges": []interface{}{}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Addresses().SkipCharges(ctx, "7", recharge.Object{"date": "2024-01-01"})
			},
			Want: recharge.Object{"charges": []interface{}{}},
		},
		{
			Name:      "delete without write scope",
			Scopes:    []recharge.Scope{recharge.ScopeReadCustomers},
			Call:      func(ctx context.Context, c *Client) (interface{}, error) { return c.Addresses().Delete(ctx, "7") },
			WantErr:   recharge.ErrAuthorization,
			NoRequest: true,
		},
	})
}

func TestAsyncBatchesClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name:     "create tasks",
			Method:   http.MethodPost,
			Path:     "/async_batches/9/tasks",
			Response: map[string]interface{}{"async_batch_tasks": []interface{}{}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.AsyncBatches().CreateTasks(ctx, "9", recharge.Object{"tasks": []interface{}{}})
			},
			Want: recharge.Object{"async_batch_tasks": []interface{}{}},
		},
		{
			Name:     "list tasks",
			Method:   http.MethodGet,
			Path:     "/async_batches/9/tasks",
			Response: map[string]interface{}{"async_batch_tasks": []interface{}{map[string]interface{}{"id": "t1"}}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.AsyncBatches().ListTasks(ctx, "9", nil)
			},
			Want: []recharge.Object{{"id": "t1"}},
		},
		{
			Name:     "process",
			Method:   http.MethodPost,
			Path:     "/async_batches/9/process",
			Response: map[string]interface{}{"async_batch": map[string]interface{}{"status": "processing"}},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.AsyncBatches().Process(ctx, "9") },
			Want:     recharge.Object{"status": "processing"},
		},
	})
}

func TestCheckoutsAndCollections(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name:     "checkout shipping rates",
			Method:   http.MethodGet,
			Path:     "/checkouts/tok/shipping_rates",
			Response: map[string]interface{}{"shipping_rates": []interface{}{}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Checkouts().GetShippingRates(ctx, "tok")
			},
			Want: recharge.Object{"shipping_rates": []interface{}{}},
		},
		{
			Name:     "checkout process",
			Method:   http.MethodPost,
			Path:     "/checkouts/tok/charge",
			Response: map[string]interface{}{"checkout_charge": map[string]interface{}{"id": "c1"}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Checkouts().Process(ctx, "tok", recharge.Object{"payment_processor": "stripe"})
			},
			Want: recharge.Object{"id": "c1"},
		},
		{
			Name:     "collection products",
			Method:   http.MethodGet,
			Path:     "/collection_products",
			Query:    "collection_id=5",
			Response: map[string]interface{}{"collection_products": []interface{}{map[string]interface{}{"id": "p"}}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Collections().ListProducts(ctx, recharge.NewQuery().With("collection_id", "5"))
			},
			Want: []recharge.Object{{"id": "p"}},
		},
		{
			Name:     "collection add products",
			Method:   http.MethodPost,
			Path:     "/collections/5/collection_products-bulk",
			Response: map[string]interface{}{"collection_products": []interface{}{}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Collections().AddProducts(ctx, "5", recharge.Object{"collection_products": []interface{}{}})
			},
		},
		{
			Name:     "collection delete products",
			Method:   http.MethodDelete,
			Path:     "/collections/5/collection_products-bulk",
			Response: map[string]interface{}{},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Collections().DeleteProducts(ctx, "5", recharge.Object{"collection_products": []interface{}{}})
			},
		},
	})
}

func TestCustomersClient(t *testing.T) {
	t.Parallel()

	customer := recharge.Object{"id": float64(3), "email": "a@example.com"}

	RunOperationTests(t, []TestOperation{
		{
			Name:      "create needs payment methods scope",
			Scopes:    []recharge.Scope{recharge.ScopeWriteCustomers},
			Call:      func(ctx context.Context, c *Client) (interface{}, error) { return c.Customers().Create(ctx, customer) },
			WantErr:   recharge.ErrAuthorization,
			NoRequest: true,
		},
		{
			Name:     "delivery schedule",
			Method:   http.MethodGet,
			Path:     "/customers/3/delivery_schedule",
			Query:    "future_interval=30",
			Response: map[string]interface{}{"customer": customer, "deliveries": []interface{}{}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Customers().GetDeliverySchedule(ctx, "3", recharge.NewQuery().With("future_interval", "30"))
			},
			Want: customer,
		},
		{
			Name:     "credit summary",
			Method:   http.MethodGet,
			Path:     "/customers/3/credit_summary",
			Scopes:   []recharge.Scope{recharge.ScopeReadCreditSummary},
			Response: map[string]interface{}{"credit_summary": map[string]interface{}{"total": "1.00"}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Customers().GetCreditSummary(ctx, "3")
			},
			Want: recharge.Object{"total": "1.00"},
		},
	})
}

func TestEventsAndStore(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name:     "list events",
			Method:   http.MethodGet,
			Path:     "/events",
			Scopes:   []recharge.Scope{recharge.ScopeReadEvents},
			Response: map[string]interface{}{"events": []interface{}{map[string]interface{}{"id": "e1"}}},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Events().List(ctx, nil) },
			Want:     []recharge.Object{{"id": "e1"}},
		},
		{
			Name:     "walk events",
			Method:   http.MethodGet,
			Path:     "/events",
			Response: map[string]interface{}{"events": []interface{}{map[string]interface{}{"id": "e1"}}, "next_cursor": nil},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				var seen []recharge.Object

				err := c.Events().Walk(ctx, nil, func(page []recharge.Object) error {
					seen = append(seen, page...)

					return nil
				})

				return seen, err
			},
			Want: []recharge.Object{{"id": "e1"}},
		},
		{
			Name:     "store",
			Method:   http.MethodGet,
			Path:     "/store",
			Scopes:   []recharge.Scope{recharge.ScopeStoreInfo},
			Response: map[string]interface{}{"store": map[string]interface{}{"name": "shop"}},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Store().Get(ctx) },
			Want:     recharge.Object{"name": "shop"},
		},
		{
			Name:      "store without store_info",
			Scopes:    []recharge.Scope{recharge.ScopeReadOrders},
			Call:      func(ctx context.Context, c *Client) (interface{}, error) { return c.Store().Get(ctx) },
			WantErr:   recharge.ErrAuthorization,
			NoRequest: true,
		},
	})
}

func TestNotificationsAndOrders(t *testing.T) {
	t.Parallel()

	order := recharge.Object{"id": float64(11)}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "send email",
			Method:   http.MethodPost,
			Path:     "/customers/3/notifications",
			Scopes:   []recharge.Scope{recharge.ScopeWriteNotifications},
			Body:     map[string]interface{}{"type": "email", "template_type": "get_account_access"},
			Response: map[string]interface{}{},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Notifications().SendEmail(ctx, "3", recharge.Object{"type": "email", "template_type": "get_account_access"})
			},
		},
		{
			Name:     "clone order",
			Method:   http.MethodPost,
			Path:     "/orders/11/clone",
			Response: map[string]interface{}{"order": order},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Orders().Clone(ctx, "11", recharge.Object{"scheduled_at": "2024-01-01"})
			},
			Want: order,
		},
		{
			Name:     "delay order",
			Method:   http.MethodPost,
			Path:     "/orders/11/delay",
			Response: map[string]interface{}{"order": order},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Orders().Delay(ctx, "11") },
			Want:     order,
		},
	})
}

func TestPlansClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name:     "bulk create",
			Method:   http.MethodPost,
			Path:     "/products/ext-1/plans-bulk",
			Response: map[string]interface{}{"plans": []interface{}{map[string]interface{}{"id": "p1"}}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Plans().BulkCreate(ctx, "ext-1", recharge.Object{"plans": []interface{}{}})
			},
			Want: []recharge.Object{{"id": "p1"}},
		},
		{
			Name:     "bulk update",
			Method:   http.MethodPut,
			Path:     "/products/ext-1/plans-bulk",
			Response: map[string]interface{}{"plans": []interface{}{}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Plans().BulkUpdate(ctx, "ext-1", recharge.Object{"plans": []interface{}{}})
			},
			Want: []recharge.Object{},
		},
		{
			Name:     "bulk delete",
			Method:   http.MethodDelete,
			Path:     "/products/ext-1/plans-bulk",
			Response: map[string]interface{}{},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Plans().BulkDelete(ctx, "ext-1", recharge.Object{"plans": []interface{}{}})
			},
		},
	})
}

func TestSubscriptionsClient(t *testing.T) {
	t.Parallel()

	subscription := recharge.Object{"id": float64(5)}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "change date",
			Method:   http.MethodPost,
			Path:     "/subscriptions/5/set_next_charge_date",
			Version:  recharge.Version202111,
			Body:     map[string]interface{}{"date": "2024-02-01"},
			Response: map[string]interface{}{"subscription": subscription},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Subscriptions().ChangeDate(ctx, "5", recharge.Object{"date": "2024-02-01"})
			},
			Want: subscription,
		},
		{
			Name:     "cancel sends an empty object",
			Method:   http.MethodPost,
			Path:     "/subscriptions/5/cancel",
			Body:     map[string]interface{}{},
			Response: map[string]interface{}{"subscription": subscription},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Subscriptions().Cancel(ctx, "5", nil) },
			Want:     subscription,
		},
		{
			Name:     "activate",
			Method:   http.MethodPost,
			Path:     "/subscriptions/5/activate",
			Response: map[string]interface{}{"subscription": subscription},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Subscriptions().Activate(ctx, "5") },
			Want:     subscription,
		},
		{
			Name:     "delete with reason",
			Method:   http.MethodDelete,
			Path:     "/subscriptions/5",
			Body:     map[string]interface{}{"cancellation_reason": "price"},
			Response: map[string]interface{}{},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Subscriptions().Delete(ctx, "5", recharge.Object{"cancellation_reason": "price"})
			},
		},
		{
			Name:     "skip gift",
			Method:   http.MethodPost,
			Path:     "/subscriptions/skip_gift",
			Response: map[string]interface{}{"onetimes": []interface{}{}},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Subscriptions().SkipGift(ctx, recharge.Object{"purchase_item_ids": []interface{}{5}})
			},
			Want: recharge.Object{"onetimes": []interface{}{}},
		},
	})
}

func TestCRUDResources(t *testing.T) {
	t.Parallel()

	record := recharge.Object{"id": float64(1)}

	RunOperationTests(t, []TestOperation{
		{
			Name:     "accounts get",
			Path:     "/accounts/1",
			Scopes:   []recharge.Scope{recharge.ScopeReadAccounts},
			Response: map[string]interface{}{"account": record},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Accounts().Get(ctx, "1") },
			Want:     record,
		},
		{
			Name:     "bundle selections update",
			Method:   http.MethodPut,
			Path:     "/bundle_selections/1",
			Response: map[string]interface{}{"bundle_selection": record},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.BundleSelections().Update(ctx, "1", recharge.Object{"items": []interface{}{}})
			},
			Want: record,
		},
		{
			Name:     "discounts create",
			Method:   http.MethodPost,
			Path:     "/discounts",
			Scopes:   []recharge.Scope{recharge.ScopeWriteDiscounts},
			Response: map[string]interface{}{"discount": record},
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Discounts().Create(ctx, recharge.Object{"code": "SAVE"})
			},
			Want: record,
		},
		{
			Name:     "onetimes delete",
			Method:   http.MethodDelete,
			Path:     "/onetimes/1",
			Response: map[string]interface{}{},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Onetimes().Delete(ctx, "1") },
		},
		{
			Name:     "payment methods list",
			Path:     "/payment_methods",
			Scopes:   []recharge.Scope{recharge.ScopeReadPaymentMethods},
			Response: map[string]interface{}{"payment_methods": []interface{}{record}},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.PaymentMethods().List(ctx, nil) },
			Want:     []recharge.Object{record},
		},
		{
			Name:     "products get",
			Path:     "/products/1",
			Response: map[string]interface{}{"product": record},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Products().Get(ctx, "1") },
			Want:     record,
		},
		{
			Name:      "retention strategies create needs its own scope",
			Scopes:    []recharge.Scope{recharge.ScopeWriteSubscriptions},
			Call:      func(ctx context.Context, c *Client) (interface{}, error) { return c.RetentionStrategies().Create(ctx, record) },
			WantErr:   recharge.ErrAuthorization,
			NoRequest: true,
		},
		{
			Name:     "retention strategies list",
			Path:     "/retention_strategies",
			Scopes:   []recharge.Scope{recharge.ScopeReadSubscriptions},
			Response: map[string]interface{}{"retention_strategies": []interface{}{}},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.RetentionStrategies().List(ctx, nil) },
			Want:     []recharge.Object{},
		},
		{
			Name:     "id is escaped",
			Path:     "/products/a%2Fb",
			Response: map[string]interface{}{"product": record},
			Call:     func(ctx context.Context, c *Client) (interface{}, error) { return c.Products().Get(ctx, "a/b") },
			Want:     record,
		},
	})
}
