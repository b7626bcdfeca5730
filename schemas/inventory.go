package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/evercart/eventschema/event"
	"github.com/evercart/eventschema/registry"
	"github.com/evercart/eventschema/taxonomy"
)

// StockReceived is the payload of the "inventory.stock_received" event.
type StockReceived struct {
	InventoryID         uuid.UUID     `json:"inventory_id"`
	ProductID           uuid.UUID     `json:"product_id"`
	ProductSKU          string        `json:"product_sku"`
	LocationID          uuid.UUID     `json:"location_id"`
	QuantityReceived    int           `json:"quantity_received"`
	QuantityBefore      int           `json:"quantity_before"`
	QuantityAfter       int           `json:"quantity_after"`
	UnitCost            float64       `json:"unit_cost"`
	SupplierID          uuid.NullUUID `json:"supplier_id"`
	PurchaseOrderNumber string        `json:"purchase_order_number,omitempty"`
	ReceivedAt          time.Time     `json:"received_at"`
}

// EventType implements the event.Payload interface.
func (*StockReceived) EventType() string { return taxonomy.InventoryStockReceived }

// Validate implements the event.Payload interface.
func (p *StockReceived) Validate() error {
	if err := requireUUID("product_id", p.ProductID); err != nil {
		return err
	}

	if err := requireString("product_sku", p.ProductSKU); err != nil {
		return err
	}

	if err := requireUUID("location_id", p.LocationID); err != nil {
		return err
	}

	if err := requirePositiveQuantity("quantity_received", p.QuantityReceived); err != nil {
		return err
	}

	if err := requireNonNegativeQuantity("quantity_before", p.QuantityBefore); err != nil {
		return err
	}

	if err := requirePositiveQuantity("quantity_after", p.QuantityAfter); err != nil {
		return err
	}

	if err := requirePositiveAmount("unit_cost", p.UnitCost); err != nil {
		return err
	}

	return requireTime("received_at", p.ReceivedAt)
}

// StockReserved is the payload of the "inventory.stock_reserved" event.
type StockReserved struct {
	ReservationID           uuid.UUID `json:"reservation_id"`
	ProductID               uuid.UUID `json:"product_id"`
	ProductSKU              string    `json:"product_sku"`
	LocationID              uuid.UUID `json:"location_id"`
	OrderID                 uuid.UUID `json:"order_id"`
	QuantityReserved        int       `json:"quantity_reserved"`
	QuantityAvailableBefore int       `json:"quantity_available_before"`
	QuantityAvailableAfter  int       `json:"quantity_available_after"`
	ReservationExpiresAt    time.Time `json:"reservation_expires_at"`
	ReservedAt              time.Time `json:"reserved_at"`
}

// EventType implements the event.Payload interface.
func (*StockReserved) EventType() string { return taxonomy.InventoryStockReserved }

// Validate implements the event.Payload interface.
func (p *StockReserved) Validate() error {
	if err := requireUUID("reservation_id", p.ReservationID); err != nil {
		return err
	}

	if err := requireUUID("product_id", p.ProductID); err != nil {
		return err
	}

	if err := requireUUID("order_id", p.OrderID); err != nil {
		return err
	}

	if err := requirePositiveQuantity("quantity_reserved", p.QuantityReserved); err != nil {
		return err
	}

	if err := requireNonNegativeQuantity("quantity_available_before", p.QuantityAvailableBefore); err != nil {
		return err
	}

	if err := requireNonNegativeQuantity("quantity_available_after", p.QuantityAvailableAfter); err != nil {
		return err
	}

	if err := requireTime("reservation_expires_at", p.ReservationExpiresAt); err != nil {
		return err
	}

	return requireTime("reserved_at", p.ReservedAt)
}

// StockReleased is the payload of the "inventory.stock_released" event.
type StockReleased struct {
	ReservationID    uuid.UUID     `json:"reservation_id"`
	ProductID        uuid.UUID     `json:"product_id"`
	ProductSKU       string        `json:"product_sku"`
	LocationID       uuid.UUID     `json:"location_id"`
	OrderID          uuid.NullUUID `json:"order_id"`
	QuantityReleased int           `json:"quantity_released"`
	ReleaseReason    string        `json:"release_reason"`
	ReleasedAt       time.Time     `json:"released_at"`
}

// EventType implements the event.Payload interface.
func (*StockReleased) EventType() string { return taxonomy.InventoryStockReleased }

// Validate implements the event.Payload interface.
func (p *StockReleased) Validate() error {
	if err := requireUUID("reservation_id", p.ReservationID); err != nil {
		return err
	}

	if err := requireUUID("product_id", p.ProductID); err != nil {
		return err
	}

	if err := requirePositiveQuantity("quantity_released", p.QuantityReleased); err != nil {
		return err
	}

	if err := requireOneOf("release_reason", p.ReleaseReason,
		"order_cancelled", "reservation_expired", "manual_release", "order_completed"); err != nil {
		return err
	}

	return requireTime("released_at", p.ReleasedAt)
}

// StockAdjusted is the payload of the "inventory.stock_adjusted" event.
type StockAdjusted struct {
	AdjustmentID       uuid.UUID `json:"adjustment_id"`
	ProductID          uuid.UUID `json:"product_id"`
	ProductSKU         string    `json:"product_sku"`
	LocationID         uuid.UUID `json:"location_id"`
	QuantityBefore     int       `json:"quantity_before"`
	QuantityAfter      int       `json:"quantity_after"`
	AdjustmentQuantity int       `json:"adjustment_quantity"`
	AdjustmentReason   string    `json:"adjustment_reason"`
	AdjustedBy         string    `json:"adjusted_by"`
	AdjustedAt         time.Time `json:"adjusted_at"`
	Notes              string    `json:"notes,omitempty"`
}

// EventType implements the event.Payload interface.
func (*StockAdjusted) EventType() string { return taxonomy.InventoryStockAdjusted }

// Validate implements the event.Payload interface.
func (p *StockAdjusted) Validate() error {
	if err := requireUUID("adjustment_id", p.AdjustmentID); err != nil {
		return err
	}

	if err := requireUUID("product_id", p.ProductID); err != nil {
		return err
	}

	if err := requireNonNegativeQuantity("quantity_before", p.QuantityBefore); err != nil {
		return err
	}

	if err := requireNonNegativeQuantity("quantity_after", p.QuantityAfter); err != nil {
		return err
	}

	// AdjustmentQuantity may be negative for shrinkage adjustments.

	if err := requireOneOf("adjustment_reason", p.AdjustmentReason,
		"damaged", "lost", "found", "correction", "return", "theft"); err != nil {
		return err
	}

	if err := requireString("adjusted_by", p.AdjustedBy); err != nil {
		return err
	}

	return requireTime("adjusted_at", p.AdjustedAt)
}

// LowStockAlert is the payload of the "inventory.low_stock_alert" event.
type LowStockAlert struct {
	ProductID         uuid.UUID  `json:"product_id"`
	ProductSKU        string     `json:"product_sku"`
	LocationID        uuid.UUID  `json:"location_id"`
	CurrentQuantity   int        `json:"current_quantity"`
	ReorderPoint      int        `json:"reorder_point"`
	ReorderQuantity   int        `json:"reorder_quantity"`
	LastRestockDate   *time.Time `json:"last_restock_date,omitempty"`
	AverageDailyUsage float64    `json:"average_daily_usage"`
	DaysUntilStockout *int       `json:"days_until_stockout,omitempty"`
	AlertGeneratedAt  time.Time  `json:"alert_generated_at"`
}

// EventType implements the event.Payload interface.
func (*LowStockAlert) EventType() string { return taxonomy.InventoryLowStockAlert }

// Validate implements the event.Payload interface.
func (p *LowStockAlert) Validate() error {
	if err := requireUUID("product_id", p.ProductID); err != nil {
		return err
	}

	if err := requireString("product_sku", p.ProductSKU); err != nil {
		return err
	}

	if err := requireNonNegativeQuantity("current_quantity", p.CurrentQuantity); err != nil {
		return err
	}

	if err := requirePositiveQuantity("reorder_point", p.ReorderPoint); err != nil {
		return err
	}

	if err := requirePositiveQuantity("reorder_quantity", p.ReorderQuantity); err != nil {
		return err
	}

	if err := requireNonNegativeAmount("average_daily_usage", p.AverageDailyUsage); err != nil {
		return err
	}

	return requireTime("alert_generated_at", p.AlertGeneratedAt)
}

// OutOfStock is the payload of the "inventory.out_of_stock" event.
type OutOfStock struct {
	ProductID             uuid.UUID  `json:"product_id"`
	ProductSKU            string     `json:"product_sku"`
	LocationID            uuid.UUID  `json:"location_id"`
	LastAvailableAt       time.Time  `json:"last_available_at"`
	PendingOrdersAffected int        `json:"pending_orders_affected"`
	EstimatedRestockDate  *time.Time `json:"estimated_restock_date,omitempty"`
	StockoutOccurredAt    time.Time  `json:"stockout_occurred_at"`
}

// EventType implements the event.Payload interface.
func (*OutOfStock) EventType() string { return taxonomy.InventoryOutOfStock }

// Validate implements the event.Payload interface.
func (p *OutOfStock) Validate() error {
	if err := requireUUID("product_id", p.ProductID); err != nil {
		return err
	}

	if err := requireString("product_sku", p.ProductSKU); err != nil {
		return err
	}

	if err := requireNonNegativeQuantity("pending_orders_affected", p.PendingOrdersAffected); err != nil {
		return err
	}

	return requireTime("stockout_occurred_at", p.StockoutOccurredAt)
}

// Typed envelope variants for statically-typed construction sites.
type (
	StockReceivedEvent = event.Envelope[*StockReceived]
	StockReservedEvent = event.Envelope[*StockReserved]
	StockReleasedEvent = event.Envelope[*StockReleased]
	StockAdjustedEvent = event.Envelope[*StockAdjusted]
	LowStockAlertEvent = event.Envelope[*LowStockAlert]
	OutOfStockEvent    = event.Envelope[*OutOfStock]
)

// RegisterInventory registers the inventory event schemas with the registry.
func RegisterInventory(r registry.Registry) error {
	return registerDefinitions(r,
		definition{taxonomy.InventoryStockReceived, func() event.Payload { return new(StockReceived) }},
		definition{taxonomy.InventoryStockReserved, func() event.Payload { return new(StockReserved) }},
		definition{taxonomy.InventoryStockReleased, func() event.Payload { return new(StockReleased) }},
		definition{taxonomy.InventoryStockAdjusted, func() event.Payload { return new(StockAdjusted) }},
		definition{taxonomy.InventoryLowStockAlert, func() event.Payload { return new(LowStockAlert) }},
		definition{taxonomy.InventoryOutOfStock, func() event.Payload { return new(OutOfStock) }},
	)
}
