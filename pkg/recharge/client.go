package recharge

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.rechargeapps.com"

// Retry defaults.
const (
	DefaultRetryMax   = 3
	DefaultRetryDelay = 10 * time.Second
)

// BackoffKind selects how the delay between retries evolves.
type BackoffKind string

const (
	// BackoffFixed waits RetryDelay before every retry.
	BackoffFixed BackoffKind = "fixed"

	// BackoffExponential doubles the delay on every retry and adds jitter.
	BackoffExponential BackoffKind = "exponential"
)

// V2Clients exposes the 2021-11 resource clients.
type V2Clients interface {
	Accounts() AccountsClient
	Addresses() AddressesClient
	AsyncBatches() AsyncBatchesClient
	BundleSelections() BundleSelectionsClient
	Charges() ChargesClient
	Checkouts() CheckoutsClient
	Collections() CollectionsClient
	Customers() CustomersClient
	Discounts() DiscountsClient
	Events() EventsClient
	Metafields() MetafieldsClient
	Notifications() NotificationsClient
	Onetimes() OnetimesClient
	Orders() OrdersClient
	PaymentMethods() PaymentMethodsClient
	Plans() PlansClient
	Products() ProductsClient
	RetentionStrategies() RetentionStrategiesClient
	Store() StoreClient
	Subscriptions() SubscriptionsClient
	TokenInformation() TokenInformationClient
	Webhooks() WebhooksClient
}

// V1Clients exposes the 2021-01 resource clients.
type V1Clients interface {
	Addresses() V1AddressesClient
	AsyncBatches() AsyncBatchesClient
	Charges() V1ChargesClient
	Checkouts() CheckoutsClient
	Customers() V1CustomersClient
	Discounts() V1DiscountsClient
	Metafields() V1MetafieldsClient
	Notifications() NotificationsClient
	Onetimes() V1OnetimesClient
	Orders() V1OrdersClient
	Products() V1ProductsClient
	Shop() V1ShopClient
	Subscriptions() V1SubscriptionsClient
	TokenInformation() TokenInformationClient
	Webhooks() WebhooksClient
}

// Client is a Recharge API client. It is safe for concurrent use.
type Client interface {
	V2Clients

	// V1 returns the 2021-01 resource clients.
	V1() V1Clients

	// Scopes returns the scopes granted to the access token.
	Scopes() []Scope

	// Metrics returns the collector fed by every call, or nil.
	Metrics() *MetricsCollector
}

// Config represents client configuration for building a Client.
type Config struct {
	// AccessToken is sent as X-Recharge-Access-Token on every request.
	AccessToken string

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// DefaultVersion is the session version used by raw transport calls.
	// Resource clients always send their own version.
	DefaultVersion Version

	// RetryMax is the number of retries after the first attempt on 429
	// and 5xx responses. Zero means DefaultRetryMax; negative disables retries.
	RetryMax int

	// RetryDelay is the fixed delay, or the base of the exponential delay.
	RetryDelay time.Duration

	// RetryWaitMax caps a single backoff delay. Zero means no cap.
	RetryWaitMax time.Duration

	Backoff BackoffKind

	HTTPTimeout time.Duration
	HTTPClient  *http.Client

	Logger    Logger
	Debug     bool
	UserAgent string

	// RequestsPerSecond enables client-side throttling when positive.
	RequestsPerSecond float64

	Interceptors *InterceptorChain

	// EnableMetrics attaches a MetricsCollector to every call.
	EnableMetrics bool

	// Cache stores token introspection results. Nil disables caching.
	Cache    Cache
	CacheTTL time.Duration

	// GrantedScopes, when set, is used instead of calling
	// GET /token_information at construction.
	GrantedScopes []Scope
}
