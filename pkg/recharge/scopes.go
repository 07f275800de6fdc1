package recharge

import (
	"errors"
	"fmt"
)

// Scope is a permission granted to an API token.
type Scope string

// Scopes known to the Recharge API.
const (
	ScopeWriteOrders              Scope = "write_orders"
	ScopeReadOrders               Scope = "read_orders"
	ScopeReadDiscounts            Scope = "read_discounts"
	ScopeWriteDiscounts           Scope = "write_discounts"
	ScopeWriteSubscriptions       Scope = "write_subscriptions"
	ScopeReadSubscriptions        Scope = "read_subscriptions"
	ScopeWritePayments            Scope = "write_payments"
	ScopeReadPayments             Scope = "read_payments"
	ScopeWritePaymentMethods      Scope = "write_payment_methods"
	ScopeReadPaymentMethods       Scope = "read_payment_methods"
	ScopeWriteCustomers           Scope = "write_customers"
	ScopeReadCustomers            Scope = "read_customers"
	ScopeWriteProducts            Scope = "write_products"
	ScopeReadProducts             Scope = "read_products"
	ScopeStoreInfo                Scope = "store_info"
	ScopeWriteBatches             Scope = "write_batches"
	ScopeReadBatches              Scope = "read_batches"
	ScopeReadAccounts             Scope = "read_accounts"
	ScopeWriteCheckouts           Scope = "write_checkouts"
	ScopeReadCheckouts            Scope = "read_checkouts"
	ScopeWriteNotifications       Scope = "write_notifications"
	ScopeReadEvents               Scope = "read_events"
	ScopeWriteRetentionStrategies Scope = "write_retention_strategies"
	ScopeReadGiftPurchases        Scope = "read_gift_purchases"
	ScopeWriteGiftPurchases       Scope = "write_gift_purchases"
	ScopeReadBundleProducts       Scope = "read_bundle_products"
	ScopeReadCreditSummary        Scope = "read_credit_summary"
)

// Static errors for err113 compliance.
var (
	ErrUnknownScope = errors.New("unknown scope")
)

var knownScopes = map[Scope]struct{}{}

func init() {
	for _, scope := range AllScopes() {
		knownScopes[scope] = struct{}{}
	}
}

// AllScopes returns every scope known to the client.
func AllScopes() []Scope {
	return []Scope{
		ScopeWriteOrders,
		ScopeReadOrders,
		ScopeReadDiscounts,
		ScopeWriteDiscounts,
		ScopeWriteSubscriptions,
		ScopeReadSubscriptions,
		ScopeWritePayments,
		ScopeReadPayments,
		ScopeWritePaymentMethods,
		ScopeReadPaymentMethods,
		ScopeWriteCustomers,
		ScopeReadCustomers,
		ScopeWriteProducts,
		ScopeReadProducts,
		ScopeStoreInfo,
		ScopeWriteBatches,
		ScopeReadBatches,
		ScopeReadAccounts,
		ScopeWriteCheckouts,
		ScopeReadCheckouts,
		ScopeWriteNotifications,
		ScopeReadEvents,
		ScopeWriteRetentionStrategies,
		ScopeReadGiftPurchases,
		ScopeWriteGiftPurchases,
		ScopeReadBundleProducts,
		ScopeReadCreditSummary,
	}
}

// Known reports whether s is one of the scopes in AllScopes.
func (s Scope) Known() bool {
	_, ok := knownScopes[s]

	return ok
}

// ParseScope validates a scope name.
func ParseScope(value string) (Scope, error) {
	scope := Scope(value)
	if !scope.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownScope, value)
	}

	return scope, nil
}

// ScopesFromStrings converts raw scope names. Unknown names are kept because
// the API may grant scopes newer than this client.
func ScopesFromStrings(values []string) []Scope {
	scopes := make([]Scope, 0, len(values))
	for _, value := range values {
		scopes = append(scopes, Scope(value))
	}

	return scopes
}
