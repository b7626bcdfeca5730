package schemas

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evercart/eventschema/event"
	"github.com/evercart/eventschema/registry"
	"github.com/evercart/eventschema/taxonomy"
)

// Address is the postal address shape embedded in order events.
type Address struct {
	StreetAddress1 string `json:"street_address_1"`
	StreetAddress2 string `json:"street_address_2,omitempty"`
	City           string `json:"city"`
	StateProvince  string `json:"state_province"`
	PostalCode     string `json:"postal_code"`
	CountryCode    string `json:"country_code"`
}

func (a Address) validate(prefix string) error {
	if err := requireString(prefix+".street_address_1", a.StreetAddress1); err != nil {
		return err
	}

	if err := requireString(prefix+".city", a.City); err != nil {
		return err
	}

	if err := requireString(prefix+".postal_code", a.PostalCode); err != nil {
		return err
	}

	return requireString(prefix+".country_code", a.CountryCode)
}

// OrderItem is one line item of an order.
type OrderItem struct {
	ItemID         uuid.UUID `json:"item_id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductSKU     string    `json:"product_sku"`
	ProductName    string    `json:"product_name"`
	Quantity       int       `json:"quantity"`
	UnitPrice      float64   `json:"unit_price"`
	DiscountAmount float64   `json:"discount_amount"`
	TaxAmount      float64   `json:"tax_amount"`
	TotalAmount    float64   `json:"total_amount"`
}

func (i OrderItem) validate(prefix string) error {
	if err := requireUUID(prefix+".product_id", i.ProductID); err != nil {
		return err
	}

	if err := requireString(prefix+".product_sku", i.ProductSKU); err != nil {
		return err
	}

	return requirePositiveQuantity(prefix+".quantity", i.Quantity)
}

// OrderCreated is the payload of the "order.created" event.
type OrderCreated struct {
	OrderID           uuid.UUID   `json:"order_id"`
	OrderNumber       string      `json:"order_number"`
	CustomerID        uuid.UUID   `json:"customer_id"`
	CustomerEmail     string      `json:"customer_email"`
	CurrencyCode      string      `json:"currency_code"`
	SubtotalAmount    float64     `json:"subtotal_amount"`
	TaxAmount         float64     `json:"tax_amount"`
	ShippingAmount    float64     `json:"shipping_amount"`
	DiscountAmount    float64     `json:"discount_amount"`
	TotalAmount       float64     `json:"total_amount"`
	ShippingAddress   Address     `json:"shipping_address"`
	BillingAddress    Address     `json:"billing_address"`
	Items             []OrderItem `json:"items"`
	PaymentMethodType string      `json:"payment_method_type"`
	CreatedAt         time.Time   `json:"created_at"`
}

// EventType implements the event.Payload interface.
func (*OrderCreated) EventType() string { return taxonomy.OrderCreated }

// Validate implements the event.Payload interface.
func (p *OrderCreated) Validate() error {
	if err := requireUUID("order_id", p.OrderID); err != nil {
		return err
	}

	if err := requireString("order_number", p.OrderNumber); err != nil {
		return err
	}

	if err := requireUUID("customer_id", p.CustomerID); err != nil {
		return err
	}

	if err := requireEmail("customer_email", p.CustomerEmail); err != nil {
		return err
	}

	if err := requireCurrency("currency_code", p.CurrencyCode); err != nil {
		return err
	}

	if err := requirePositiveAmount("total_amount", p.TotalAmount); err != nil {
		return err
	}

	if len(p.Items) == 0 {
		return event.ErrValidation{Field: "items", Expected: "at least one order item", Actual: "empty"}
	}

	for i, item := range p.Items {
		if err := item.validate(fmt.Sprintf("items[%d]", i)); err != nil {
			return err
		}
	}

	if err := p.ShippingAddress.validate("shipping_address"); err != nil {
		return err
	}

	if err := p.BillingAddress.validate("billing_address"); err != nil {
		return err
	}

	return requireTime("created_at", p.CreatedAt)
}

// OrderUpdated is the payload of the "order.updated" event.
type OrderUpdated struct {
	OrderID       uuid.UUID      `json:"order_id"`
	OrderNumber   string         `json:"order_number"`
	FieldsUpdated []string       `json:"fields_updated"`
	OldValues     map[string]any `json:"old_values"`
	NewValues     map[string]any `json:"new_values"`
	UpdatedBy     string         `json:"updated_by,omitempty"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// EventType implements the event.Payload interface.
func (*OrderUpdated) EventType() string { return taxonomy.OrderUpdated }

// Validate implements the event.Payload interface.
func (p *OrderUpdated) Validate() error {
	if err := requireUUID("order_id", p.OrderID); err != nil {
		return err
	}

	if len(p.FieldsUpdated) == 0 {
		return event.ErrValidation{Field: "fields_updated", Expected: "at least one updated field", Actual: "empty"}
	}

	return requireTime("updated_at", p.UpdatedAt)
}

// OrderCancelled is the payload of the "order.cancelled" event.
type OrderCancelled struct {
	OrderID            uuid.UUID `json:"order_id"`
	OrderNumber        string    `json:"order_number"`
	CancellationReason string    `json:"cancellation_reason"`
	CancelledBy        string    `json:"cancelled_by,omitempty"`
	CancelledAt        time.Time `json:"cancelled_at"`
	RefundAmount       float64   `json:"refund_amount"`
	RefundInitiated    bool      `json:"refund_initiated"`
}

// EventType implements the event.Payload interface.
func (*OrderCancelled) EventType() string { return taxonomy.OrderCancelled }

// Validate implements the event.Payload interface.
func (p *OrderCancelled) Validate() error {
	if err := requireUUID("order_id", p.OrderID); err != nil {
		return err
	}

	if err := requireString("cancellation_reason", p.CancellationReason); err != nil {
		return err
	}

	if err := requireNonNegativeAmount("refund_amount", p.RefundAmount); err != nil {
		return err
	}

	return requireTime("cancelled_at", p.CancelledAt)
}

// OrderShipped is the payload of the "order.shipped" event.
type OrderShipped struct {
	OrderID               uuid.UUID  `json:"order_id"`
	OrderNumber           string     `json:"order_number"`
	TrackingNumber        string     `json:"tracking_number"`
	Carrier               string     `json:"carrier"`
	ShippedAt             time.Time  `json:"shipped_at"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	ShippingCost          float64    `json:"shipping_cost"`
}

// EventType implements the event.Payload interface.
func (*OrderShipped) EventType() string { return taxonomy.OrderShipped }

// Validate implements the event.Payload interface.
func (p *OrderShipped) Validate() error {
	if err := requireUUID("order_id", p.OrderID); err != nil {
		return err
	}

	if err := requireString("tracking_number", p.TrackingNumber); err != nil {
		return err
	}

	if err := requireString("carrier", p.Carrier); err != nil {
		return err
	}

	return requireTime("shipped_at", p.ShippedAt)
}

// OrderDelivered is the payload of the "order.delivered" event.
type OrderDelivered struct {
	OrderID              uuid.UUID `json:"order_id"`
	OrderNumber          string    `json:"order_number"`
	DeliveredAt          time.Time `json:"delivered_at"`
	DeliveryConfirmation string    `json:"delivery_confirmation,omitempty"`
	SignedBy             string    `json:"signed_by,omitempty"`
}

// EventType implements the event.Payload interface.
func (*OrderDelivered) EventType() string { return taxonomy.OrderDelivered }

// Validate implements the event.Payload interface.
func (p *OrderDelivered) Validate() error {
	if err := requireUUID("order_id", p.OrderID); err != nil {
		return err
	}

	return requireTime("delivered_at", p.DeliveredAt)
}

// Typed envelope variants for statically-typed construction sites.
type (
	OrderCreatedEvent   = event.Envelope[*OrderCreated]
	OrderUpdatedEvent   = event.Envelope[*OrderUpdated]
	OrderCancelledEvent = event.Envelope[*OrderCancelled]
	OrderShippedEvent   = event.Envelope[*OrderShipped]
	OrderDeliveredEvent = event.Envelope[*OrderDelivered]
)

// RegisterOrder registers the order event schemas with the registry.
func RegisterOrder(r registry.Registry) error {
	return registerDefinitions(r,
		definition{taxonomy.OrderCreated, func() event.Payload { return new(OrderCreated) }},
		definition{taxonomy.OrderUpdated, func() event.Payload { return new(OrderUpdated) }},
		definition{taxonomy.OrderCancelled, func() event.Payload { return new(OrderCancelled) }},
		definition{taxonomy.OrderShipped, func() event.Payload { return new(OrderShipped) }},
		definition{taxonomy.OrderDelivered, func() event.Payload { return new(OrderDelivered) }},
	)
}
