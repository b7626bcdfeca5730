package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evercart/eventschema/event"
	"github.com/evercart/eventschema/logger"
	"github.com/evercart/eventschema/registry"
	"github.com/evercart/eventschema/taxonomy"
	"github.com/evercart/eventschema/version"
)

type orderPayloadV1 struct {
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}

func (*orderPayloadV1) EventType() string { return taxonomy.OrderCreated }

func (p *orderPayloadV1) Validate() error {
	if p.OrderID == "" {
		return event.ErrValidation{Field: "order_id", Expected: "non-empty string", Actual: "missing"}
	}

	return nil
}

type orderPayloadV2 struct {
	OrderID      string  `json:"order_id"`
	TotalAmount  float64 `json:"total_amount"`
	CurrencyCode string  `json:"currency_code"`
}

func (*orderPayloadV2) EventType() string { return taxonomy.OrderCreated }

func (p *orderPayloadV2) Validate() error {
	if p.OrderID == "" {
		return event.ErrValidation{Field: "order_id", Expected: "non-empty string", Actual: "missing"}
	}

	if len(p.CurrencyCode) != 3 {
		return event.ErrValidation{Field: "currency_code", Expected: "3-letter currency code", Actual: p.CurrencyCode}
	}

	return nil
}

var (
	orderDefinitionV1 = registry.DefinitionFunc(func() event.Payload { return new(orderPayloadV1) })
	orderDefinitionV2 = registry.DefinitionFunc(func() event.Payload { return new(orderPayloadV2) })
)

func TestInMemoryRegister(t *testing.T) {
	t.Run("it stores and resolves a registered schema", func(t *testing.T) {
		r := registry.NewInMemory(registry.WithLogger(logger.NewTest(t)))
		require.NoError(t, r.Register(taxonomy.OrderCreated, "1.0", orderDefinitionV1))

		def, ok := r.GetSchema(taxonomy.OrderCreated, "1.0")
		require.True(t, ok)
		assert.IsType(t, new(orderPayloadV1), def.New())
	})

	t.Run("it rejects event types outside the taxonomy", func(t *testing.T) {
		r := registry.NewInMemory()
		err := r.Register("warehouse.created", "1.0", orderDefinitionV1)

		var invalidTypeErr registry.ErrInvalidType
		require.ErrorAs(t, err, &invalidTypeErr)
		assert.Equal(t, "warehouse.created", invalidTypeErr.EventType)
	})

	t.Run("it rejects malformed version strings", func(t *testing.T) {
		r := registry.NewInMemory()
		err := r.Register(taxonomy.OrderCreated, "v1.0", orderDefinitionV1)

		var parseErr version.ErrParse
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("it rejects a nil definition", func(t *testing.T) {
		r := registry.NewInMemory()
		assert.Error(t, r.Register(taxonomy.OrderCreated, "1.0", nil))
	})

	t.Run("it never silently overwrites a registration", func(t *testing.T) {
		r := registry.NewInMemory()
		require.NoError(t, r.Register(taxonomy.OrderCreated, "1.0", orderDefinitionV1))

		err := r.Register(taxonomy.OrderCreated, "1.0", orderDefinitionV2)

		var duplicateErr registry.ErrDuplicateSchema
		require.ErrorAs(t, err, &duplicateErr)
		assert.Equal(t, taxonomy.OrderCreated, duplicateErr.EventType)
		assert.Equal(t, "1.0", duplicateErr.Version)

		// The original definition must still be in place.
		def, ok := r.GetSchema(taxonomy.OrderCreated, "1.0")
		require.True(t, ok)
		assert.IsType(t, new(orderPayloadV1), def.New())
	})

	t.Run("it tracks the latest version numerically, not lexicographically", func(t *testing.T) {
		r := registry.NewInMemory()

		for _, v := range []string{"1.2", "1.1", "1.10"} {
			require.NoError(t, r.Register(taxonomy.OrderCreated, v, orderDefinitionV1))
		}

		require.NoError(t, r.Register(taxonomy.OrderCreated, "1.10.1", orderDefinitionV2))

		def, ok := r.GetSchema(taxonomy.OrderCreated, "")
		require.True(t, ok)
		assert.IsType(t, new(orderPayloadV2), def.New())

		assert.Equal(t, []string{"1.1", "1.2", "1.10", "1.10.1"}, r.Versions(taxonomy.OrderCreated))
	})
}

func TestInMemoryGetSchema(t *testing.T) {
	t.Run("it returns no schema for an unknown type", func(t *testing.T) {
		r := registry.NewInMemory()

		_, ok := r.GetSchema(taxonomy.CartCreated, "")
		assert.False(t, ok)

		_, ok = r.GetSchema(taxonomy.CartCreated, "1.0")
		assert.False(t, ok)
	})

	t.Run("it keeps older versions resolvable after new registrations", func(t *testing.T) {
		r := registry.NewInMemory()
		require.NoError(t, r.Register(taxonomy.OrderCreated, "1.0", orderDefinitionV1))

		def, ok := r.GetSchema(taxonomy.OrderCreated, "")
		require.True(t, ok)
		assert.IsType(t, new(orderPayloadV1), def.New())

		require.NoError(t, r.Register(taxonomy.OrderCreated, "1.1", orderDefinitionV2))

		def, ok = r.GetSchema(taxonomy.OrderCreated, "")
		require.True(t, ok)
		assert.IsType(t, new(orderPayloadV2), def.New())

		def, ok = r.GetSchema(taxonomy.OrderCreated, "1.0")
		require.True(t, ok)
		assert.IsType(t, new(orderPayloadV1), def.New())

		assert.Equal(t, []string{"1.0", "1.1"}, r.Versions(taxonomy.OrderCreated))
	})
}

func rawOrderEvent() map[string]any {
	return map[string]any{
		"metadata": map[string]any{
			"event_id":     "01234567-89ab-cdef-0123-456789abcdef",
			"event_type":   taxonomy.OrderCreated,
			"event_source": "checkout-service",
			"timestamp":    "2025-01-01T12:00:00Z",
		},
		"data": map[string]any{
			"order_id":     "ORD-1001",
			"total_amount": 99.95,
		},
	}
}

func TestInMemoryValidate(t *testing.T) {
	newRegistry := func(t *testing.T) *registry.InMemory {
		t.Helper()

		r := registry.NewInMemory()
		require.NoError(t, r.Register(taxonomy.OrderCreated, "1.0", orderDefinitionV1))

		return r
	}

	t.Run("it returns a typed envelope for a well-formed event", func(t *testing.T) {
		r := newRegistry(t)

		envelope, err := r.Validate(rawOrderEvent())
		require.NoError(t, err)

		assert.Equal(t, taxonomy.OrderCreated, envelope.Metadata.EventType)
		assert.Equal(t, "1.0", envelope.Metadata.EventVersion)

		payload, ok := envelope.Data.(*orderPayloadV1)
		require.True(t, ok)
		assert.Equal(t, "ORD-1001", payload.OrderID)
		assert.InDelta(t, 99.95, payload.TotalAmount, 0.001)
	})

	t.Run("it fails when the metadata mapping is missing", func(t *testing.T) {
		r := newRegistry(t)

		raw := rawOrderEvent()
		delete(raw, "metadata")

		_, err := r.Validate(raw)

		var malformedErr registry.ErrMalformedEvent
		require.ErrorAs(t, err, &malformedErr)
		assert.Equal(t, "metadata", malformedErr.Field)
	})

	t.Run("it fails when the data mapping is not a mapping", func(t *testing.T) {
		r := newRegistry(t)

		raw := rawOrderEvent()
		raw["data"] = "not-a-mapping"

		_, err := r.Validate(raw)

		var malformedErr registry.ErrMalformedEvent
		require.ErrorAs(t, err, &malformedErr)
		assert.Equal(t, "data", malformedErr.Field)
	})

	t.Run("it propagates metadata validation failures", func(t *testing.T) {
		r := newRegistry(t)

		raw := rawOrderEvent()
		raw["metadata"].(map[string]any)["event_id"] = "not-a-uuid"

		_, err := r.Validate(raw)

		var validationErr event.ErrValidation
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "metadata.event_id", validationErr.Field)
	})

	t.Run("it distinguishes a missing schema from an invalid type", func(t *testing.T) {
		r := newRegistry(t)

		raw := rawOrderEvent()
		raw["metadata"].(map[string]any)["event_type"] = taxonomy.CartAbandoned

		_, err := r.Validate(raw)

		var notFoundErr registry.ErrSchemaNotFound
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, taxonomy.CartAbandoned, notFoundErr.EventType)
		assert.Equal(t, "1.0", notFoundErr.Version)
	})

	t.Run("it fails when the declared version has no schema", func(t *testing.T) {
		r := newRegistry(t)

		raw := rawOrderEvent()
		raw["metadata"].(map[string]any)["event_version"] = "9.9"

		_, err := r.Validate(raw)

		var notFoundErr registry.ErrSchemaNotFound
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "9.9", notFoundErr.Version)
	})

	t.Run("it fails on payloads missing required fields, without state changes", func(t *testing.T) {
		r := newRegistry(t)
		typesBefore := r.EventTypes()

		raw := rawOrderEvent()
		delete(raw["data"].(map[string]any), "order_id")

		_, err := r.Validate(raw)

		var validationErr event.ErrValidation
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "order_id", validationErr.Field)

		assert.Equal(t, typesBefore, r.EventTypes())
		assert.Equal(t, []string{"1.0"}, r.Versions(taxonomy.OrderCreated))
	})

	t.Run("it fails on ill-typed payload fields", func(t *testing.T) {
		r := newRegistry(t)

		raw := rawOrderEvent()
		raw["data"].(map[string]any)["total_amount"] = "ninety-nine"

		_, err := r.Validate(raw)

		var validationErr event.ErrValidation
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestInMemoryEvolutionPath(t *testing.T) {
	newRegistry := func(t *testing.T) *registry.InMemory {
		t.Helper()

		r := registry.NewInMemory()
		for _, v := range []string{"1.0", "1.1", "1.2"} {
			require.NoError(t, r.Register(taxonomy.OrderCreated, v, orderDefinitionV1))
		}

		return r
	}

	t.Run("it returns the inclusive forward path", func(t *testing.T) {
		r := newRegistry(t)
		assert.Equal(t, []string{"1.0", "1.1", "1.2"}, r.EvolutionPath(taxonomy.OrderCreated, "1.0", "1.2"))
		assert.Equal(t, []string{"1.1", "1.2"}, r.EvolutionPath(taxonomy.OrderCreated, "1.1", "1.2"))
		assert.Equal(t, []string{"1.1"}, r.EvolutionPath(taxonomy.OrderCreated, "1.1", "1.1"))
	})

	t.Run("it is directional, backward paths are empty", func(t *testing.T) {
		r := newRegistry(t)
		assert.Empty(t, r.EvolutionPath(taxonomy.OrderCreated, "1.2", "1.0"))
	})

	t.Run("it is empty for unknown event types", func(t *testing.T) {
		r := newRegistry(t)
		assert.Empty(t, r.EvolutionPath(taxonomy.CartCreated, "1.0", "1.2"))
	})

	t.Run("it requires exact membership of both endpoints", func(t *testing.T) {
		r := newRegistry(t)
		assert.Empty(t, r.EvolutionPath(taxonomy.OrderCreated, "1.0", "1.3"))
		assert.Empty(t, r.EvolutionPath(taxonomy.OrderCreated, "0.9", "1.2"))
	})
}

func TestInMemoryMarkDeprecated(t *testing.T) {
	t.Run("it flags an existing schema version", func(t *testing.T) {
		r := registry.NewInMemory(registry.WithLogger(logger.NewTest(t)))
		require.NoError(t, r.Register(taxonomy.OrderCreated, "1.0", orderDefinitionV1))

		r.MarkDeprecated(taxonomy.OrderCreated, "1.0", "use 1.1, amounts moved to minor units")

		record, ok := r.Lookup(taxonomy.OrderCreated, "1.0")
		require.True(t, ok)
		assert.True(t, record.Deprecated)
		assert.Equal(t, "use 1.1, amounts moved to minor units", record.MigrationNotes)

		// Deprecated schemas stay resolvable for replaying historical events.
		_, ok = r.GetSchema(taxonomy.OrderCreated, "1.0")
		assert.True(t, ok)
	})

	t.Run("it keeps existing notes when none are provided", func(t *testing.T) {
		r := registry.NewInMemory()
		require.NoError(t, r.Register(taxonomy.OrderCreated, "1.0", orderDefinitionV1))

		r.MarkDeprecated(taxonomy.OrderCreated, "1.0", "first notes")
		r.MarkDeprecated(taxonomy.OrderCreated, "1.0", "")

		record, ok := r.Lookup(taxonomy.OrderCreated, "1.0")
		require.True(t, ok)
		assert.Equal(t, "first notes", record.MigrationNotes)
	})

	t.Run("it is a no-op for a nonexistent pair", func(t *testing.T) {
		r := registry.NewInMemory()

		r.MarkDeprecated(taxonomy.OrderCreated, "4.2", "nothing to see")

		assert.Empty(t, r.EventTypes())
		_, ok := r.Lookup(taxonomy.OrderCreated, "4.2")
		assert.False(t, ok)
	})
}

func TestInMemoryListing(t *testing.T) {
	r := registry.NewInMemory()
	require.NoError(t, r.Register(taxonomy.OrderCreated, "1.0", orderDefinitionV1))
	require.NoError(t, r.Register(taxonomy.PaymentCompleted, "1.0", registry.DefinitionFunc(func() event.Payload {
		return new(orderPayloadV1)
	})))

	t.Run("it lists only registered event types", func(t *testing.T) {
		assert.Equal(t, []string{taxonomy.OrderCreated, taxonomy.PaymentCompleted}, r.EventTypes())
	})

	t.Run("it lists no versions for unknown types", func(t *testing.T) {
		assert.Empty(t, r.Versions(taxonomy.ReviewFlagged))
	})
}
