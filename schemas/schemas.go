// Package schemas contains the built-in event payload definitions of the
// platform, and the bootstrap sequence that registers them with an event
// schema registry at application startup.
package schemas

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evercart/eventschema/event"
	"github.com/evercart/eventschema/registry"
)

// definition pairs an event type with the factory for its payload shape.
type definition struct {
	eventType string
	factory   func() event.Payload
}

func registerDefinitions(r registry.Registry, defs ...definition) error {
	for _, def := range defs {
		if err := r.Register(def.eventType, event.DefaultVersion, registry.DefinitionFunc(def.factory)); err != nil {
			return fmt.Errorf("schemas: failed to register '%s', %w", def.eventType, err)
		}
	}

	return nil
}

// RegisterAll registers every built-in schema with the provided registry.
func RegisterAll(r registry.Registry) error {
	for _, register := range []func(registry.Registry) error{
		RegisterOrder,
		RegisterCustomer,
		RegisterPayment,
		RegisterInventory,
	} {
		if err := register(r); err != nil {
			return err
		}
	}

	return nil
}

// Bootstrap registers all built-in schemas on the Container's active
// registry, exactly once per Container lifetime. It is meant to be called
// from the hosting application's startup sequence, before any validation
// traffic is accepted.
func Bootstrap(container *registry.Container) error {
	return container.EnsureBootstrapped(RegisterAll)
}

// Validation helpers shared by the payload definitions below.

func requireUUID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return event.ErrValidation{Field: field, Expected: "non-nil UUID", Actual: "missing"}
	}

	return nil
}

func requireString(field, value string) error {
	if value == "" {
		return event.ErrValidation{Field: field, Expected: "non-empty string", Actual: "missing"}
	}

	return nil
}

func requireTime(field string, t time.Time) error {
	if t.IsZero() {
		return event.ErrValidation{Field: field, Expected: "timestamp", Actual: "missing"}
	}

	return nil
}

func requireEmail(field, value string) error {
	if !strings.Contains(value, "@") {
		return event.ErrValidation{Field: field, Expected: "email address", Actual: fmt.Sprintf("'%s'", value)}
	}

	return nil
}

func requireCurrency(field, code string) error {
	if len(code) != 3 {
		return event.ErrValidation{Field: field, Expected: "3-letter currency code", Actual: fmt.Sprintf("'%s'", code)}
	}

	return nil
}

func requirePositiveAmount(field string, amount float64) error {
	if amount <= 0 {
		return event.ErrValidation{Field: field, Expected: "amount greater than zero", Actual: fmt.Sprintf("%v", amount)}
	}

	return nil
}

func requireNonNegativeAmount(field string, amount float64) error {
	if amount < 0 {
		return event.ErrValidation{Field: field, Expected: "non-negative amount", Actual: fmt.Sprintf("%v", amount)}
	}

	return nil
}

func requirePositiveQuantity(field string, quantity int) error {
	if quantity <= 0 {
		return event.ErrValidation{Field: field, Expected: "quantity greater than zero", Actual: fmt.Sprintf("%d", quantity)}
	}

	return nil
}

func requireNonNegativeQuantity(field string, quantity int) error {
	if quantity < 0 {
		return event.ErrValidation{Field: field, Expected: "non-negative quantity", Actual: fmt.Sprintf("%d", quantity)}
	}

	return nil
}

func requireOneOf(field, value string, allowed ...string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}

	return event.ErrValidation{
		Field:    field,
		Expected: "one of [" + strings.Join(allowed, ", ") + "]",
		Actual:   fmt.Sprintf("'%s'", value),
	}
}
