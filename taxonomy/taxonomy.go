// Package taxonomy defines the closed vocabulary of domain event types
// used across the Evercart platform.
//
// Event types follow a consistent "<category>.<action>" naming pattern
// (e.g. "order.created"). The vocabulary is closed: an event type is either
// part of the enumerated set below, or it is not a valid event type at all.
package taxonomy

import (
	"sort"
	"strings"
)

// Category is the high-level classification of a domain event.
type Category string

// All the event categories recognized by the platform.
const (
	CategoryOrder     Category = "order"
	CategoryCustomer  Category = "customer"
	CategoryProduct   Category = "product"
	CategoryPayment   Category = "payment"
	CategoryInventory Category = "inventory"
	CategoryCart      Category = "cart"
	CategoryReview    Category = "review"
)

// Order-related domain events.
const (
	OrderCreated     = "order.created"
	OrderUpdated     = "order.updated"
	OrderCancelled   = "order.cancelled"
	OrderConfirmed   = "order.confirmed"
	OrderProcessing  = "order.processing"
	OrderShipped     = "order.shipped"
	OrderDelivered   = "order.delivered"
	OrderRefunded    = "order.refunded"
	OrderItemAdded   = "order.item_added"
	OrderItemRemoved = "order.item_removed"
	OrderItemUpdated = "order.item_updated"
)

// Customer-related domain events.
const (
	CustomerRegistered         = "customer.registered"
	CustomerUpdated            = "customer.updated"
	CustomerActivated          = "customer.activated"
	CustomerDeactivated        = "customer.deactivated"
	CustomerSuspended          = "customer.suspended"
	CustomerDeleted            = "customer.deleted"
	CustomerEmailVerified      = "customer.email_verified"
	CustomerCredentialsUpdated = "customer.credentials_updated"
	CustomerAddressAdded       = "customer.address_added"
	CustomerAddressUpdated     = "customer.address_updated"
	CustomerAddressRemoved     = "customer.address_removed"
)

// Product-related domain events.
const (
	ProductCreated         = "product.created"
	ProductUpdated         = "product.updated"
	ProductActivated       = "product.activated"
	ProductDeactivated     = "product.deactivated"
	ProductPriceChanged    = "product.price_changed"
	ProductStockUpdated    = "product.stock_updated"
	ProductCategoryChanged = "product.category_changed"
	ProductImageAdded      = "product.image_added"
	ProductImageRemoved    = "product.image_removed"
)

// Payment-related domain events.
const (
	PaymentInitiated       = "payment.initiated"
	PaymentProcessing      = "payment.processing"
	PaymentCompleted       = "payment.completed"
	PaymentFailed          = "payment.failed"
	PaymentCancelled       = "payment.cancelled"
	PaymentRefundInitiated = "payment.refund_initiated"
	PaymentRefundCompleted = "payment.refund_completed"
	PaymentRefundFailed    = "payment.refund_failed"
	PaymentMethodAdded     = "payment.method_added"
	PaymentMethodRemoved   = "payment.method_removed"
	PaymentMethodUpdated   = "payment.method_updated"
)

// Inventory-related domain events.
const (
	InventoryStockReceived    = "inventory.stock_received"
	InventoryStockReserved    = "inventory.stock_reserved"
	InventoryStockReleased    = "inventory.stock_released"
	InventoryStockAdjusted    = "inventory.stock_adjusted"
	InventoryLowStockAlert    = "inventory.low_stock_alert"
	InventoryOutOfStock       = "inventory.out_of_stock"
	InventoryBackInStock      = "inventory.back_in_stock"
	InventoryLocationTransfer = "inventory.location_transfer"
)

// Shopping cart-related domain events.
const (
	CartCreated     = "cart.created"
	CartItemAdded   = "cart.item_added"
	CartItemRemoved = "cart.item_removed"
	CartItemUpdated = "cart.item_updated"
	CartCleared     = "cart.cleared"
	CartAbandoned   = "cart.abandoned"
	CartConverted   = "cart.converted"
	CartMerged      = "cart.merged"
)

// Review-related domain events.
const (
	ReviewSubmitted = "review.submitted"
	ReviewApproved  = "review.approved"
	ReviewRejected  = "review.rejected"
	ReviewUpdated   = "review.updated"
	ReviewDeleted   = "review.deleted"
	ReviewFlagged   = "review.flagged"
)

// categoryTypes enumerates every valid event type, grouped by category.
var categoryTypes = map[Category][]string{
	CategoryOrder: {
		OrderCreated, OrderUpdated, OrderCancelled, OrderConfirmed,
		OrderProcessing, OrderShipped, OrderDelivered, OrderRefunded,
		OrderItemAdded, OrderItemRemoved, OrderItemUpdated,
	},
	CategoryCustomer: {
		CustomerRegistered, CustomerUpdated, CustomerActivated,
		CustomerDeactivated, CustomerSuspended, CustomerDeleted,
		CustomerEmailVerified, CustomerCredentialsUpdated,
		CustomerAddressAdded, CustomerAddressUpdated, CustomerAddressRemoved,
	},
	CategoryProduct: {
		ProductCreated, ProductUpdated, ProductActivated, ProductDeactivated,
		ProductPriceChanged, ProductStockUpdated, ProductCategoryChanged,
		ProductImageAdded, ProductImageRemoved,
	},
	CategoryPayment: {
		PaymentInitiated, PaymentProcessing, PaymentCompleted, PaymentFailed,
		PaymentCancelled, PaymentRefundInitiated, PaymentRefundCompleted,
		PaymentRefundFailed, PaymentMethodAdded, PaymentMethodRemoved,
		PaymentMethodUpdated,
	},
	CategoryInventory: {
		InventoryStockReceived, InventoryStockReserved, InventoryStockReleased,
		InventoryStockAdjusted, InventoryLowStockAlert, InventoryOutOfStock,
		InventoryBackInStock, InventoryLocationTransfer,
	},
	CategoryCart: {
		CartCreated, CartItemAdded, CartItemRemoved, CartItemUpdated,
		CartCleared, CartAbandoned, CartConverted, CartMerged,
	},
	CategoryReview: {
		ReviewSubmitted, ReviewApproved, ReviewRejected, ReviewUpdated,
		ReviewDeleted, ReviewFlagged,
	},
}

// knownTypes indexes the full vocabulary by event type string.
var knownTypes = make(map[string]Category)

func init() {
	for category, types := range categoryTypes {
		for _, eventType := range types {
			knownTypes[eventType] = category
		}
	}
}

// Classify returns the Category an event type string belongs to, based on
// the prefix before the first dot.
//
// The second return value is false when the event type has no dot separator,
// or when the prefix is not a recognized category. Classify never fails:
// absence of a category is a valid result, not an error.
func Classify(eventType string) (Category, bool) {
	prefix, _, found := strings.Cut(eventType, ".")
	if !found {
		return "", false
	}

	category := Category(prefix)
	if _, ok := categoryTypes[category]; !ok {
		return "", false
	}

	return category, true
}

// IsValid reports whether the provided string is an exact member of the
// event type vocabulary. No pattern matching or prefix wildcards are
// applied: "order.created" is valid, "order.*" and "order.shipped2" are not.
func IsValid(eventType string) bool {
	category, ok := Classify(eventType)
	if !ok {
		return false
	}

	return knownTypes[eventType] == category
}

// Types returns the enumerated event types for the given category,
// or nil if the category is unknown.
func Types(category Category) []string {
	types, ok := categoryTypes[category]
	if !ok {
		return nil
	}

	out := make([]string, len(types))
	copy(out, types)

	return out
}

// All returns the full event type vocabulary, sorted alphabetically.
func All() []string {
	out := make([]string, 0, len(knownTypes))
	for eventType := range knownTypes {
		out = append(out, eventType)
	}

	sort.Strings(out)

	return out
}
