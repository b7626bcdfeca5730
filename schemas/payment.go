package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/evercart/eventschema/event"
	"github.com/evercart/eventschema/registry"
	"github.com/evercart/eventschema/taxonomy"
)

// Payment method types accepted by the platform.
var paymentMethodTypes = []string{
	"credit_card", "debit_card", "paypal", "bank_transfer", "crypto", "other",
}

// PaymentInitiated is the payload of the "payment.initiated" event.
type PaymentInitiated struct {
	PaymentID       uuid.UUID `json:"payment_id"`
	OrderID         uuid.UUID `json:"order_id"`
	PaymentMethodID uuid.UUID `json:"payment_method_id"`
	Amount          float64   `json:"amount"`
	CurrencyCode    string    `json:"currency_code"`
	PaymentType     string    `json:"payment_type"`
	InitiatedAt     time.Time `json:"initiated_at"`
}

// EventType implements the event.Payload interface.
func (*PaymentInitiated) EventType() string { return taxonomy.PaymentInitiated }

// Validate implements the event.Payload interface.
func (p *PaymentInitiated) Validate() error {
	if err := requireUUID("payment_id", p.PaymentID); err != nil {
		return err
	}

	if err := requireUUID("order_id", p.OrderID); err != nil {
		return err
	}

	if err := requirePositiveAmount("amount", p.Amount); err != nil {
		return err
	}

	if err := requireCurrency("currency_code", p.CurrencyCode); err != nil {
		return err
	}

	if err := requireOneOf("payment_type", p.PaymentType, paymentMethodTypes...); err != nil {
		return err
	}

	return requireTime("initiated_at", p.InitiatedAt)
}

// PaymentCompleted is the payload of the "payment.completed" event.
type PaymentCompleted struct {
	PaymentID         uuid.UUID `json:"payment_id"`
	OrderID           uuid.UUID `json:"order_id"`
	TransactionID     string    `json:"transaction_id"`
	Amount            float64   `json:"amount"`
	CurrencyCode      string    `json:"currency_code"`
	PaymentMethodType string    `json:"payment_method_type"`
	ProcessingFee     float64   `json:"processing_fee"`
	NetAmount         float64   `json:"net_amount"`
	CompletedAt       time.Time `json:"completed_at"`
}

// EventType implements the event.Payload interface.
func (*PaymentCompleted) EventType() string { return taxonomy.PaymentCompleted }

// Validate implements the event.Payload interface.
func (p *PaymentCompleted) Validate() error {
	if err := requireUUID("payment_id", p.PaymentID); err != nil {
		return err
	}

	if err := requireString("transaction_id", p.TransactionID); err != nil {
		return err
	}

	if err := requirePositiveAmount("amount", p.Amount); err != nil {
		return err
	}

	if err := requireCurrency("currency_code", p.CurrencyCode); err != nil {
		return err
	}

	if err := requireNonNegativeAmount("processing_fee", p.ProcessingFee); err != nil {
		return err
	}

	return requireTime("completed_at", p.CompletedAt)
}

// PaymentFailed is the payload of the "payment.failed" event.
type PaymentFailed struct {
	PaymentID         uuid.UUID `json:"payment_id"`
	OrderID           uuid.UUID `json:"order_id"`
	FailureReason     string    `json:"failure_reason"`
	FailureCode       string    `json:"failure_code,omitempty"`
	PaymentMethodType string    `json:"payment_method_type"`
	Amount            float64   `json:"amount"`
	CurrencyCode      string    `json:"currency_code"`
	RetryAllowed      bool      `json:"retry_allowed"`
	FailedAt          time.Time `json:"failed_at"`
}

// EventType implements the event.Payload interface.
func (*PaymentFailed) EventType() string { return taxonomy.PaymentFailed }

// Validate implements the event.Payload interface.
func (p *PaymentFailed) Validate() error {
	if err := requireUUID("payment_id", p.PaymentID); err != nil {
		return err
	}

	if err := requireString("failure_reason", p.FailureReason); err != nil {
		return err
	}

	if err := requirePositiveAmount("amount", p.Amount); err != nil {
		return err
	}

	if err := requireCurrency("currency_code", p.CurrencyCode); err != nil {
		return err
	}

	return requireTime("failed_at", p.FailedAt)
}

// RefundInitiated is the payload of the "payment.refund_initiated" event.
type RefundInitiated struct {
	RefundID     uuid.UUID `json:"refund_id"`
	PaymentID    uuid.UUID `json:"payment_id"`
	OrderID      uuid.UUID `json:"order_id"`
	RefundAmount float64   `json:"refund_amount"`
	CurrencyCode string    `json:"currency_code"`
	RefundReason string    `json:"refund_reason"`
	InitiatedBy  string    `json:"initiated_by"`
	InitiatedAt  time.Time `json:"initiated_at"`
}

// EventType implements the event.Payload interface.
func (*RefundInitiated) EventType() string { return taxonomy.PaymentRefundInitiated }

// Validate implements the event.Payload interface.
func (p *RefundInitiated) Validate() error {
	if err := requireUUID("refund_id", p.RefundID); err != nil {
		return err
	}

	if err := requireUUID("payment_id", p.PaymentID); err != nil {
		return err
	}

	if err := requirePositiveAmount("refund_amount", p.RefundAmount); err != nil {
		return err
	}

	if err := requireCurrency("currency_code", p.CurrencyCode); err != nil {
		return err
	}

	if err := requireString("refund_reason", p.RefundReason); err != nil {
		return err
	}

	return requireTime("initiated_at", p.InitiatedAt)
}

// RefundCompleted is the payload of the "payment.refund_completed" event.
type RefundCompleted struct {
	RefundID      uuid.UUID `json:"refund_id"`
	PaymentID     uuid.UUID `json:"payment_id"`
	OrderID       uuid.UUID `json:"order_id"`
	RefundAmount  float64   `json:"refund_amount"`
	CurrencyCode  string    `json:"currency_code"`
	TransactionID string    `json:"transaction_id"`
	ProcessingFee float64   `json:"processing_fee"`
	CompletedAt   time.Time `json:"completed_at"`
}

// EventType implements the event.Payload interface.
func (*RefundCompleted) EventType() string { return taxonomy.PaymentRefundCompleted }

// Validate implements the event.Payload interface.
func (p *RefundCompleted) Validate() error {
	if err := requireUUID("refund_id", p.RefundID); err != nil {
		return err
	}

	if err := requirePositiveAmount("refund_amount", p.RefundAmount); err != nil {
		return err
	}

	if err := requireCurrency("currency_code", p.CurrencyCode); err != nil {
		return err
	}

	if err := requireString("transaction_id", p.TransactionID); err != nil {
		return err
	}

	if err := requireNonNegativeAmount("processing_fee", p.ProcessingFee); err != nil {
		return err
	}

	return requireTime("completed_at", p.CompletedAt)
}

// PaymentMethodAdded is the payload of the "payment.method_added" event.
type PaymentMethodAdded struct {
	PaymentMethodID uuid.UUID `json:"payment_method_id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	MethodType      string    `json:"method_type"`
	IsDefault       bool      `json:"is_default"`
	LastFour        string    `json:"last_four,omitempty"`
	ExpiryMonth     *int      `json:"expiry_month,omitempty"`
	ExpiryYear      *int      `json:"expiry_year,omitempty"`
	AddedAt         time.Time `json:"added_at"`
}

// EventType implements the event.Payload interface.
func (*PaymentMethodAdded) EventType() string { return taxonomy.PaymentMethodAdded }

// Validate implements the event.Payload interface.
func (p *PaymentMethodAdded) Validate() error {
	if err := requireUUID("payment_method_id", p.PaymentMethodID); err != nil {
		return err
	}

	if err := requireUUID("customer_id", p.CustomerID); err != nil {
		return err
	}

	if err := requireOneOf("method_type", p.MethodType, paymentMethodTypes...); err != nil {
		return err
	}

	if p.LastFour != "" && len(p.LastFour) != 4 {
		return event.ErrValidation{Field: "last_four", Expected: "4 digits", Actual: "'" + p.LastFour + "'"}
	}

	if p.ExpiryMonth != nil && (*p.ExpiryMonth < 1 || *p.ExpiryMonth > 12) {
		return event.ErrValidation{Field: "expiry_month", Expected: "integer between 1 and 12", Actual: "out of range"}
	}

	return requireTime("added_at", p.AddedAt)
}

// Typed envelope variants for statically-typed construction sites.
type (
	PaymentInitiatedEvent   = event.Envelope[*PaymentInitiated]
	PaymentCompletedEvent   = event.Envelope[*PaymentCompleted]
	PaymentFailedEvent      = event.Envelope[*PaymentFailed]
	RefundInitiatedEvent    = event.Envelope[*RefundInitiated]
	RefundCompletedEvent    = event.Envelope[*RefundCompleted]
	PaymentMethodAddedEvent = event.Envelope[*PaymentMethodAdded]
)

// RegisterPayment registers the payment event schemas with the registry.
func RegisterPayment(r registry.Registry) error {
	return registerDefinitions(r,
		definition{taxonomy.PaymentInitiated, func() event.Payload { return new(PaymentInitiated) }},
		definition{taxonomy.PaymentCompleted, func() event.Payload { return new(PaymentCompleted) }},
		definition{taxonomy.PaymentFailed, func() event.Payload { return new(PaymentFailed) }},
		definition{taxonomy.PaymentRefundInitiated, func() event.Payload { return new(RefundInitiated) }},
		definition{taxonomy.PaymentRefundCompleted, func() event.Payload { return new(RefundCompleted) }},
		definition{taxonomy.PaymentMethodAdded, func() event.Payload { return new(PaymentMethodAdded) }},
	)
}
