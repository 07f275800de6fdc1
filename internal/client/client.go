package client

import (
	"context"
	"fmt"
	"math"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// Client implements the recharge.Client interface.
type Client struct {
	transport *http.Client
	session   *auth.Session
	guard     *auth.ScopeGuard
	metrics   *recharge.MetricsCollector
	logger    recharge.Logger

	// 2021-11 resource clients
	accounts            *AccountsClient
	addresses           *AddressesClient
	asyncBatches        *AsyncBatchesClient
	bundleSelections    *BundleSelectionsClient
	charges             *ChargesClient
	checkouts           *CheckoutsClient
	collections         *CollectionsClient
	customers           *CustomersClient
	discounts           *DiscountsClient
	events              *EventsClient
	metafields          *MetafieldsClient
	notifications       *NotificationsClient
	onetimes            *OnetimesClient
	orders              *OrdersClient
	paymentMethods      *PaymentMethodsClient
	plans               *PlansClient
	products            *ProductsClient
	retentionStrategies *RetentionStrategiesClient
	store               *StoreClient
	subscriptions       *SubscriptionsClient
	tokenInformation    *TokenInformationClient
	webhooks            *WebhooksClient

	v1 *v1Clients
}

// v1Clients implements recharge.V1Clients.
type v1Clients struct {
	addresses        *V1AddressesClient
	asyncBatches     *AsyncBatchesClient
	charges          *V1ChargesClient
	checkouts        *CheckoutsClient
	customers        *CustomersClient
	discounts        *DiscountsClient
	metafields       *MetafieldsClient
	notifications    *NotificationsClient
	onetimes         *OnetimesClient
	orders           *V1OrdersClient
	products         *ProductsClient
	shop             *V1ShopClient
	subscriptions    *V1SubscriptionsClient
	tokenInformation *TokenInformationClient
	webhooks         *WebhooksClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *recharge.Config, chain *recharge.InterceptorChain) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	retryMax := config.RetryMax
	if retryMax == 0 {
		retryMax = recharge.DefaultRetryMax
	}

	retryDelay := config.RetryDelay
	if retryDelay <= 0 {
		retryDelay = recharge.DefaultRetryDelay
	}

	httpOpts = append(httpOpts, http.WithRetryConfig(retryMax, retryDelay, config.RetryWaitMax))

	if config.Backoff == recharge.BackoffExponential {
		httpOpts = append(httpOpts, http.WithBackoff(http.ExponentialBackoff{
			Base: retryDelay,
			Max:  config.RetryWaitMax,
		}))
	}

	if chain.Len() > 0 {
		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	return httpOpts
}

// createInterceptorChain combines client-side throttling, the caller's
// interceptors and metrics into one chain.
func createInterceptorChain(config *recharge.Config, metrics *recharge.MetricsCollector) *recharge.InterceptorChain {
	chain := recharge.NewInterceptorChain()

	if config.RequestsPerSecond > 0 {
		burst := int(math.Ceil(config.RequestsPerSecond))
		chain.AddRequestInterceptor(recharge.RateLimitInterceptor(config.RequestsPerSecond, burst))
	}

	if config.Interceptors != nil && config.Interceptors.Len() > 0 {
		chain.AddRequestInterceptor(config.Interceptors.ExecuteRequestInterceptors)
		chain.AddResponseInterceptor(config.Interceptors.ExecuteResponseInterceptors)
	}

	if metrics != nil {
		metrics.Install(chain)
	}

	return chain
}

// New creates a new Recharge API client. Unless config.GrantedScopes is
// set, the granted scopes are read from GET /token_information, through
// config.Cache when one is configured.
func New(ctx context.Context, config *recharge.Config) (*Client, error) {
	if config == nil {
		return nil, recharge.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, recharge.ErrAccessTokenRequired
	}

	sessionOpts := []auth.SessionOption{auth.WithSessionUserAgent(config.UserAgent)}
	if config.DefaultVersion != "" {
		if !config.DefaultVersion.Valid() {
			return nil, fmt.Errorf("%w: %q", recharge.ErrUnknownVersion, string(config.DefaultVersion))
		}

		sessionOpts = append(sessionOpts, auth.WithSessionVersion(config.DefaultVersion))
	}

	session, err := auth.NewSession(config.AccessToken, sessionOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	var metrics *recharge.MetricsCollector
	if config.EnableMetrics {
		metrics = recharge.NewMetricsCollector()
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = recharge.DefaultBaseURL
	}

	chain := createInterceptorChain(config, metrics)
	transport := http.NewClient(baseURL, session, createHTTPClientOptions(config, chain)...)

	logger := config.Logger
	if logger == nil {
		logger = recharge.NoopLogger{}
	}

	client := &Client{
		transport: transport,
		session:   session,
		guard:     auth.NewScopeGuard(nil),
		metrics:   metrics,
		logger:    logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	granted := config.GrantedScopes
	if granted == nil {
		ttl := config.CacheTTL
		if ttl <= 0 {
			ttl = recharge.DefaultTokenInfoTTL
		}

		granted, err = fetchGranted(ctx, client.tokenInformation, config.Cache, config.AccessToken, ttl)
		if err != nil {
			return nil, fmt.Errorf("fetching granted scopes: %w", err)
		}
	}

	client.guard.SetGranted(granted)
	client.logger.Debug("Client ready", map[string]interface{}{
		"base_url": baseURL,
		"version":  string(session.Version()),
		"scopes":   len(granted),
	})

	return client, nil
}

func (c *Client) initializeResourceClients() {
	v2 := recharge.Version202111

	c.accounts = NewAccountsClient(c.transport, c.guard)
	c.addresses = NewAddressesClient(c.transport, c.guard)
	c.asyncBatches = NewAsyncBatchesClient(c.transport, c.guard, v2)
	c.bundleSelections = NewBundleSelectionsClient(c.transport, c.guard)
	c.charges = NewChargesClient(c.transport, c.guard, v2)
	c.checkouts = NewCheckoutsClient(c.transport, c.guard, v2)
	c.collections = NewCollectionsClient(c.transport, c.guard)
	c.customers = NewCustomersClient(c.transport, c.guard, v2)
	c.discounts = NewDiscountsClient(c.transport, c.guard, v2)
	c.events = NewEventsClient(c.transport, c.guard)
	c.metafields = NewMetafieldsClient(c.transport, c.guard, v2)
	c.notifications = NewNotificationsClient(c.transport, c.guard, v2)
	c.onetimes = NewOnetimesClient(c.transport, c.guard, v2)
	c.orders = NewOrdersClient(c.transport, c.guard, v2)
	c.paymentMethods = NewPaymentMethodsClient(c.transport, c.guard)
	c.plans = NewPlansClient(c.transport, c.guard)
	c.products = NewProductsClient(c.transport, c.guard, v2)
	c.retentionStrategies = NewRetentionStrategiesClient(c.transport, c.guard)
	c.store = NewStoreClient(c.transport, c.guard)
	c.subscriptions = NewSubscriptionsClient(c.transport, c.guard, v2)
	c.tokenInformation = NewTokenInformationClient(c.transport, v2)
	c.webhooks = NewWebhooksClient(c.transport, c.guard, v2)

	v1 := recharge.Version202101

	c.v1 = &v1Clients{
		addresses:        NewV1AddressesClient(c.transport, c.guard),
		asyncBatches:     NewAsyncBatchesClient(c.transport, c.guard, v1),
		charges:          NewV1ChargesClient(c.transport, c.guard),
		checkouts:        NewCheckoutsClient(c.transport, c.guard, v1),
		customers:        NewCustomersClient(c.transport, c.guard, v1),
		discounts:        NewDiscountsClient(c.transport, c.guard, v1),
		metafields:       NewMetafieldsClient(c.transport, c.guard, v1),
		notifications:    NewNotificationsClient(c.transport, c.guard, v1),
		onetimes:         NewOnetimesClient(c.transport, c.guard, v1),
		orders:           NewV1OrdersClient(c.transport, c.guard),
		products:         NewProductsClient(c.transport, c.guard, v1),
		shop:             NewV1ShopClient(c.transport, c.guard),
		subscriptions:    NewV1SubscriptionsClient(c.transport, c.guard),
		tokenInformation: NewTokenInformationClient(c.transport, v1),
		webhooks:         NewWebhooksClient(c.transport, c.guard, v1),
	}
}

// Transport returns the shared transport for raw calls.
func (c *Client) Transport() *http.Client {
	return c.transport
}

// Session returns the session carrying the credential and default version.
func (c *Client) Session() *auth.Session {
	return c.session
}

// Scopes implements recharge.Client.Scopes.
func (c *Client) Scopes() []recharge.Scope {
	return c.guard.Granted()
}

// Metrics implements recharge.Client.Metrics.
func (c *Client) Metrics() *recharge.MetricsCollector {
	return c.metrics
}

// V1 implements recharge.Client.V1.
func (c *Client) V1() recharge.V1Clients {
	return c.v1
}

// Resource client accessors

// Accounts implements recharge.Client.Accounts.
func (c *Client) Accounts() recharge.AccountsClient {
	return c.accounts
}

// Addresses implements recharge.Client.Addresses.
func (c *Client) Addresses() recharge.AddressesClient {
	return c.addresses
}

// AsyncBatches implements recharge.Client.AsyncBatches.
func (c *Client) AsyncBatches() recharge.AsyncBatchesClient {
	return c.asyncBatches
}

// BundleSelections implements recharge.Client.BundleSelections.
func (c *Client) BundleSelections() recharge.BundleSelectionsClient {
	return c.bundleSelections
}

// Charges implements recharge.Client.Charges.
func (c *Client) Charges() recharge.ChargesClient {
	return c.charges
}

// Checkouts implements recharge.Client.Checkouts.
func (c *Client) Checkouts() recharge.CheckoutsClient {
	return c.checkouts
}

// Collections implements recharge.Client.Collections.
func (c *Client) Collections() recharge.CollectionsClient {
	return c.collections
}

// Customers implements recharge.Client.Customers.
func (c *Client) Customers() recharge.CustomersClient {
	return c.customers
}

// Discounts implements recharge.Client.Discounts.
func (c *Client) Discounts() recharge.DiscountsClient {
	return c.discounts
}

// Events implements recharge.Client.Events.
func (c *Client) Events() recharge.EventsClient {
	return c.events
}

// Metafields implements recharge.Client.Metafields.
func (c *Client) Metafields() recharge.MetafieldsClient {
	return c.metafields
}

// Notifications implements recharge.Client.Notifications.
func (c *Client) Notifications() recharge.NotificationsClient {
	return c.notifications
}

// Onetimes implements recharge.Client.Onetimes.
func (c *Client) Onetimes() recharge.OnetimesClient {
	return c.onetimes
}

// Orders implements recharge.Client.Orders.
func (c *Client) Orders() recharge.OrdersClient {
	return c.orders
}

// PaymentMethods implements recharge.Client.PaymentMethods.
func (c *Client) PaymentMethods() recharge.PaymentMethodsClient {
	return c.paymentMethods
}

// Plans implements recharge.Client.Plans.
func (c *Client) Plans() recharge.PlansClient {
	return c.plans
}

// Products implements recharge.Client.Products.
func (c *Client) Products() recharge.ProductsClient {
	return c.products
}

// RetentionStrategies implements recharge.Client.RetentionStrategies.
func (c *Client) RetentionStrategies() recharge.RetentionStrategiesClient {
	return c.retentionStrategies
}

// Store implements recharge.Client.Store.
func (c *Client) Store() recharge.StoreClient {
	return c.store
}

// Subscriptions implements recharge.Client.Subscriptions.
func (c *Client) Subscriptions() recharge.SubscriptionsClient {
	return c.subscriptions
}

// TokenInformation implements recharge.Client.TokenInformation.
func (c *Client) TokenInformation() recharge.TokenInformationClient {
	return c.tokenInformation
}

// Webhooks implements recharge.Client.Webhooks.
func (c *Client) Webhooks() recharge.WebhooksClient {
	return c.webhooks
}

func (v *v1Clients) Addresses() recharge.V1AddressesClient { return v.addresses }

func (v *v1Clients) AsyncBatches() recharge.AsyncBatchesClient { return v.asyncBatches }

func (v *v1Clients) Charges() recharge.V1ChargesClient { return v.charges }

func (v *v1Clients) Checkouts() recharge.CheckoutsClient { return v.checkouts }

func (v *v1Clients) Customers() recharge.V1CustomersClient { return v.customers }

func (v *v1Clients) Discounts() recharge.V1DiscountsClient { return v.discounts }

func (v *v1Clients) Metafields() recharge.V1MetafieldsClient { return v.metafields }

func (v *v1Clients) Notifications() recharge.NotificationsClient { return v.notifications }

func (v *v1Clients) Onetimes() recharge.V1OnetimesClient { return v.onetimes }

func (v *v1Clients) Orders() recharge.V1OrdersClient { return v.orders }

func (v *v1Clients) Products() recharge.V1ProductsClient { return v.products }

func (v *v1Clients) Shop() recharge.V1ShopClient { return v.shop }

func (v *v1Clients) Subscriptions() recharge.V1SubscriptionsClient { return v.subscriptions }

func (v *v1Clients) TokenInformation() recharge.TokenInformationClient { return v.tokenInformation }

func (v *v1Clients) Webhooks() recharge.WebhooksClient { return v.webhooks }

var (
	_ recharge.Client    = (*Client)(nil)
	_ recharge.V1Clients = (*v1Clients)(nil)
)
