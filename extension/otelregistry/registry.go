// Package otelregistry provides OpenTelemetry instrumentation for
// registry.Registry implementations.
//
// Registry operations are pure in-process computation, so the
// instrumentation records metrics (operation counts and validation
// latency) rather than spans.
package otelregistry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/evercart/eventschema/event"
	"github.com/evercart/eventschema/registry"
)

var _ registry.Registry = &InstrumentedRegistry{}

// Metric attribute keys recorded by the instrumentation.
var (
	EventTypeAttribute    = attribute.Key("eventschema.event.type")
	EventVersionAttribute = attribute.Key("eventschema.event.version")
	ErrorAttribute        = attribute.Key("eventschema.operation.error")
)

// InstrumentedRegistry wraps a registry.Registry implementation and
// records OpenTelemetry metrics for its catalog operations, while staying
// compatible with the Registry interface for seamless use in pre-existing
// code.
//
// Use Instrument to create new instances of this type.
type InstrumentedRegistry struct {
	meter    metric.Meter
	registry registry.Registry

	registerCount    metric.Int64Counter
	deprecateCount   metric.Int64Counter
	validateCount    metric.Int64Counter
	validateDuration metric.Float64Histogram
}

func (ir *InstrumentedRegistry) registerMetrics() error {
	var err error

	if ir.registerCount, err = ir.meter.Int64Counter(
		"eventschema.registry.register.count",
		metric.WithDescription("Count of schema registrations performed"),
	); err != nil {
		return fmt.Errorf("otelregistry: failed to register metric, %w", err)
	}

	if ir.deprecateCount, err = ir.meter.Int64Counter(
		"eventschema.registry.deprecate.count",
		metric.WithDescription("Count of schema deprecations performed"),
	); err != nil {
		return fmt.Errorf("otelregistry: failed to register metric, %w", err)
	}

	if ir.validateCount, err = ir.meter.Int64Counter(
		"eventschema.registry.validate.count",
		metric.WithDescription("Count of event validations performed"),
	); err != nil {
		return fmt.Errorf("otelregistry: failed to register metric, %w", err)
	}

	if ir.validateDuration, err = ir.meter.Float64Histogram(
		"eventschema.registry.validate.duration.milliseconds",
		metric.WithUnit("ms"),
		metric.WithDescription("Duration in milliseconds of event validations performed"),
	); err != nil {
		return fmt.Errorf("otelregistry: failed to register metric, %w", err)
	}

	return nil
}

// Instrument wraps the provided Registry with OpenTelemetry metrics.
func Instrument(r registry.Registry, opts ...Option) (*InstrumentedRegistry, error) {
	cfg := newConfig(opts...)

	ir := &InstrumentedRegistry{
		meter:    cfg.meter(),
		registry: r,
	}

	if err := ir.registerMetrics(); err != nil {
		return nil, err
	}

	return ir, nil
}

// Register delegates to the underlying Registry and records the outcome.
func (ir *InstrumentedRegistry) Register(eventType, version string, def registry.Definition) error {
	err := ir.registry.Register(eventType, version, def)

	ir.registerCount.Add(context.Background(), 1,
		metric.WithAttributes(
			EventTypeAttribute.String(eventType),
			EventVersionAttribute.String(version),
			ErrorAttribute.Bool(err != nil),
		),
	)

	return err
}

// GetSchema delegates to the underlying Registry.
func (ir *InstrumentedRegistry) GetSchema(eventType, version string) (registry.Definition, bool) {
	return ir.registry.GetSchema(eventType, version)
}

// Validate delegates to the underlying Registry and records the outcome
// and duration of the validation.
func (ir *InstrumentedRegistry) Validate(raw map[string]any) (event.GenericEnvelope, error) {
	start := time.Now()

	envelope, err := ir.registry.Validate(raw)

	attributes := []attribute.KeyValue{
		EventTypeAttribute.String(envelope.Metadata.EventType),
		ErrorAttribute.Bool(err != nil),
	}

	ir.validateCount.Add(context.Background(), 1, metric.WithAttributes(attributes...))
	ir.validateDuration.Record(context.Background(),
		float64(time.Since(start).Microseconds())/1000,
		metric.WithAttributes(attributes...),
	)

	return envelope, err
}

// EvolutionPath delegates to the underlying Registry.
func (ir *InstrumentedRegistry) EvolutionPath(eventType, from, to string) []string {
	return ir.registry.EvolutionPath(eventType, from, to)
}

// EventTypes delegates to the underlying Registry.
func (ir *InstrumentedRegistry) EventTypes() []string {
	return ir.registry.EventTypes()
}

// Versions delegates to the underlying Registry.
func (ir *InstrumentedRegistry) Versions(eventType string) []string {
	return ir.registry.Versions(eventType)
}

// Lookup delegates to the underlying Registry.
func (ir *InstrumentedRegistry) Lookup(eventType, version string) (registry.SchemaVersion, bool) {
	return ir.registry.Lookup(eventType, version)
}

// MarkDeprecated delegates to the underlying Registry and records the
// deprecation.
func (ir *InstrumentedRegistry) MarkDeprecated(eventType, version, migrationNotes string) {
	ir.registry.MarkDeprecated(eventType, version, migrationNotes)

	ir.deprecateCount.Add(context.Background(), 1,
		metric.WithAttributes(
			EventTypeAttribute.String(eventType),
			EventVersionAttribute.String(version),
		),
	)
}
