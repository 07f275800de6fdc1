package recharge

import "context"

// Record operations shared by most resources.
type (
	// Getter fetches one record by id.
	Getter interface {
		Get(ctx context.Context, id string) (Object, error)
	}

	// Lister fetches one page of records, or walks every page with ListAll.
	Lister interface {
		List(ctx context.Context, query Query) ([]Object, error)
		ListAll(ctx context.Context, query Query) ([]Object, error)
	}

	// Creator creates a record.
	Creator interface {
		Create(ctx context.Context, body Object) (Object, error)
	}

	// Updater updates a record.
	Updater interface {
		Update(ctx context.Context, id string, body Object) (Object, error)
	}

	// Deleter deletes a record.
	Deleter interface {
		Delete(ctx context.Context, id string) (Object, error)
	}

	// Counter counts records matching a filter (2021-01 only).
	Counter interface {
		Count(ctx context.Context, query Query) (int, error)
	}

	// CRUDClient groups the five record operations.
	CRUDClient interface {
		Creator
		Getter
		Updater
		Deleter
		Lister
	}
)

// AccountsClient manages store accounts (2021-11).
type AccountsClient interface {
	Getter
	Lister
}

// AddressesClient manages customer addresses (2021-11).
type AddressesClient interface {
	CRUDClient
	Merge(ctx context.Context, body Object) (Object, error)
	SkipCharges(ctx context.Context, addressID string, body Object) (Object, error)
}

// AsyncBatchesClient manages asynchronous batch jobs (2021-11).
type AsyncBatchesClient interface {
	Creator
	Getter
	Lister
	CreateTasks(ctx context.Context, batchID string, body Object) (Object, error)
	ListTasks(ctx context.Context, batchID string, query Query) ([]Object, error)
	Process(ctx context.Context, batchID string) (Object, error)
}

// BundleSelectionsClient manages bundle selections (2021-11).
type BundleSelectionsClient interface {
	CRUDClient
}

// ChargesClient manages charges (2021-11).
type ChargesClient interface {
	Getter
	Lister
	ApplyDiscount(ctx context.Context, chargeID string, body Object) (Object, error)
	RemoveDiscount(ctx context.Context, chargeID string) (Object, error)
	Skip(ctx context.Context, chargeID string, body Object) (Object, error)
	Unskip(ctx context.Context, chargeID string, body Object) (Object, error)
	Refund(ctx context.Context, chargeID string, body Object) (Object, error)
	Process(ctx context.Context, chargeID string) (Object, error)
	Capture(ctx context.Context, chargeID string) (Object, error)
}

// CheckoutsClient manages checkouts (2021-11).
type CheckoutsClient interface {
	Creator
	Getter
	Updater
	GetShippingRates(ctx context.Context, checkoutID string) (Object, error)
	Process(ctx context.Context, checkoutID string, body Object) (Object, error)
}

// CollectionsClient manages product collections (2021-11).
type CollectionsClient interface {
	CRUDClient
	ListProducts(ctx context.Context, query Query) ([]Object, error)
	AddProducts(ctx context.Context, collectionID string, body Object) (Object, error)
	DeleteProducts(ctx context.Context, collectionID string, body Object) (Object, error)
}

// CustomersClient manages customers (2021-11).
type CustomersClient interface {
	CRUDClient
	GetDeliverySchedule(ctx context.Context, customerID string, query Query) (Object, error)
	GetCreditSummary(ctx context.Context, customerID string) (Object, error)
}

// DiscountsClient manages discounts (2021-11).
type DiscountsClient interface {
	CRUDClient
}

// EventsClient reads the store event log (2021-11).
type EventsClient interface {
	Lister
	// Walk calls fn with every page of events until the log is exhausted
	// or fn returns an error.
	Walk(ctx context.Context, query Query, fn func(page []Object) error) error
}

// MetafieldOwner is the resource type a metafield is attached to. It selects
// the scopes a metafield call requires.
type MetafieldOwner string

// Metafield owners.
const (
	MetafieldOwnerAddress      MetafieldOwner = "address"
	MetafieldOwnerStore        MetafieldOwner = "store"
	MetafieldOwnerCustomer     MetafieldOwner = "customer"
	MetafieldOwnerSubscription MetafieldOwner = "subscription"
	MetafieldOwnerOrder        MetafieldOwner = "order"
	MetafieldOwnerCharge       MetafieldOwner = "charge"
)

// MetafieldsClient manages metafields (2021-11).
type MetafieldsClient interface {
	Create(ctx context.Context, owner MetafieldOwner, body Object) (Object, error)
	Get(ctx context.Context, owner MetafieldOwner, id string) (Object, error)
	Update(ctx context.Context, owner MetafieldOwner, id string, body Object) (Object, error)
	Delete(ctx context.Context, owner MetafieldOwner, id string) (Object, error)
	List(ctx context.Context, owner MetafieldOwner, query Query) ([]Object, error)
	ListAll(ctx context.Context, owner MetafieldOwner, query Query) ([]Object, error)
}

// NotificationsClient sends customer notifications (2021-11).
type NotificationsClient interface {
	SendEmail(ctx context.Context, customerID string, body Object) (Object, error)
}

// OnetimesClient manages one-time products (2021-11).
type OnetimesClient interface {
	CRUDClient
}

// OrdersClient manages orders (2021-11).
type OrdersClient interface {
	Getter
	Updater
	Deleter
	Lister
	Clone(ctx context.Context, orderID string, body Object) (Object, error)
	Delay(ctx context.Context, orderID string) (Object, error)
}

// PaymentMethodsClient manages payment methods (2021-11).
type PaymentMethodsClient interface {
	CRUDClient
}

// PlansClient manages selling plans (2021-11).
type PlansClient interface {
	CRUDClient
	BulkCreate(ctx context.Context, externalProductID string, body Object) ([]Object, error)
	BulkUpdate(ctx context.Context, externalProductID string, body Object) ([]Object, error)
	BulkDelete(ctx context.Context, externalProductID string, body Object) (Object, error)
}

// ProductsClient manages products (2021-11).
type ProductsClient interface {
	CRUDClient
}

// RetentionStrategiesClient manages cancellation retention strategies (2021-11).
type RetentionStrategiesClient interface {
	CRUDClient
}

// StoreClient reads store settings (2021-11).
type StoreClient interface {
	Get(ctx context.Context) (Object, error)
}

// SubscriptionsClient manages subscriptions (2021-11).
type SubscriptionsClient interface {
	Creator
	Getter
	Updater
	Lister
	Delete(ctx context.Context, subscriptionID string, body Object) (Object, error)
	ChangeDate(ctx context.Context, subscriptionID string, body Object) (Object, error)
	ChangeAddress(ctx context.Context, subscriptionID string, body Object) (Object, error)
	Cancel(ctx context.Context, subscriptionID string, body Object) (Object, error)
	Activate(ctx context.Context, subscriptionID string) (Object, error)
	SkipGift(ctx context.Context, body Object) (Object, error)
}

// TokenInformationClient introspects the access token.
type TokenInformationClient interface {
	Get(ctx context.Context) (*TokenInformation, error)
}

// WebhooksClient manages webhook subscriptions. Create requires the read
// scope of the topic's resource.
type WebhooksClient interface {
	CRUDClient
	Test(ctx context.Context, webhookID string) (Object, error)
}

// V1AddressesClient manages customer addresses (2021-01).
type V1AddressesClient interface {
	Getter
	Updater
	Deleter
	Counter
	Create(ctx context.Context, customerID string, body Object) (Object, error)
	List(ctx context.Context, customerID string, query Query) ([]Object, error)
	ListAll(ctx context.Context, customerID string, query Query) ([]Object, error)
	Validate(ctx context.Context, body Object) (Object, error)
	ApplyDiscount(ctx context.Context, addressID string, body Object) (Object, error)
	RemoveDiscount(ctx context.Context, addressID string) (Object, error)
}

// V1ChargesClient manages charges (2021-01).
type V1ChargesClient interface {
	ChargesClient
	Counter
	ChangeNextChargeDate(ctx context.Context, chargeID string, body Object) (Object, error)
}

// V1CustomersClient manages customers (2021-01).
type V1CustomersClient interface {
	CRUDClient
	Counter
}

// V1MetafieldsClient manages metafields (2021-01), which also offer a count.
type V1MetafieldsClient interface {
	MetafieldsClient
	Count(ctx context.Context, owner MetafieldOwner, query Query) (int, error)
}

// V1DiscountsClient manages discounts (2021-01).
type V1DiscountsClient interface {
	CRUDClient
	Counter
}

// V1OnetimesClient manages one-time products (2021-01).
type V1OnetimesClient interface {
	CRUDClient
}

// V1OrdersClient manages orders (2021-01).
type V1OrdersClient interface {
	Getter
	Updater
	Deleter
	Lister
	Counter
	ChangeDate(ctx context.Context, orderID string, body Object) (Object, error)
	ChangeVariant(ctx context.Context, orderID, oldVariantID string, body Object) (Object, error)
	Clone(ctx context.Context, orderID, chargeID string, body Object) (Object, error)
	Delay(ctx context.Context, orderID string) (Object, error)
}

// V1ProductsClient manages products (2021-01).
type V1ProductsClient interface {
	CRUDClient
	Counter
}

// V1ShopClient reads shop settings (2021-01).
type V1ShopClient interface {
	Get(ctx context.Context) (Object, error)
	ShippingCountries(ctx context.Context) ([]Object, error)
}

// V1SubscriptionsClient manages subscriptions (2021-01).
type V1SubscriptionsClient interface {
	Creator
	Getter
	Updater
	Lister
	Counter
	Delete(ctx context.Context, subscriptionID string, body Object) (Object, error)
	ChangeDate(ctx context.Context, subscriptionID string, body Object) (Object, error)
	ChangeAddress(ctx context.Context, subscriptionID string, body Object) (Object, error)
	Cancel(ctx context.Context, subscriptionID string, body Object) (Object, error)
	Activate(ctx context.Context, subscriptionID string) (Object, error)
	BulkCreate(ctx context.Context, body Object) ([]Object, error)
	BulkUpdate(ctx context.Context, body Object) ([]Object, error)
	BulkDelete(ctx context.Context, body Object) ([]Object, error)
}
