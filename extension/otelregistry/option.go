package otelregistry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/evercart/eventschema/extension/otelregistry"

type config struct {
	meterProvider metric.MeterProvider
}

func (c config) meter() metric.Meter {
	return c.meterProvider.Meter(instrumentationName)
}

func newConfig(opts ...Option) config {
	cfg := config{
		meterProvider: otel.GetMeterProvider(),
	}

	for _, opt := range opts {
		opt.apply(&cfg)
	}

	return cfg
}

// Option customizes the instrumentation setup.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (fn optionFunc) apply(cfg *config) { fn(cfg) }

// WithMeterProvider overrides the global MeterProvider used to build
// the instrumentation meters.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return optionFunc(func(cfg *config) {
		cfg.meterProvider = provider
	})
}
