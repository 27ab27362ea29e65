package renderer

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Instrumentation library name
	instrumentationName    = "github.com/seuros/gopher-cypher-dsl/src/renderer"
	instrumentationVersion = "0.1.0"
)

// observabilityInstruments holds OpenTelemetry instruments
type observabilityInstruments struct {
	tracer trace.Tracer

	renderCount    metric.Int64Counter
	renderDuration metric.Float64Histogram
	cacheHits      metric.Int64Counter
}

// initObservability initializes OpenTelemetry instruments from the given
// providers.
func initObservability(mp metric.MeterProvider, tp trace.TracerProvider) *observabilityInstruments {
	tracer := tp.Tracer(instrumentationName, trace.WithInstrumentationVersion(instrumentationVersion))
	meter := mp.Meter(instrumentationName, metric.WithInstrumentationVersion(instrumentationVersion))

	instruments := &observabilityInstruments{tracer: tracer}

	var err error

	instruments.renderCount, err = meter.Int64Counter(
		"cypher.render.count",
		metric.WithDescription("Number of statements rendered"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.renderDuration, err = meter.Float64Histogram(
		"cypher.render.duration",
		metric.WithDescription("Duration of statement rendering"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.cacheHits, err = meter.Int64Counter(
		"cypher.render.cache.hits",
		metric.WithDescription("Number of renderings served from the cache"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return instruments
}
