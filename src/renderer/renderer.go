// Package renderer turns statement trees built with package cypher into
// Cypher text. Rendering is driven by a Configuration, which is a plain
// parameter of every call: renderers hold no per-statement state and are
// safe for concurrent use.
package renderer

import (
	"context"
	"fmt"
	"maps"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/seuros/gopher-cypher-dsl/src/cypher"
	"github.com/seuros/gopher-cypher-dsl/src/logging"
)

// Rendered is the result of rendering a statement.
type Rendered struct {
	// Cypher is the statement text.
	Cypher string
	// Parameters holds the values of bound parameters by rendered name.
	Parameters map[string]any
}

// Renderer renders statement trees.
type Renderer struct {
	logger         logging.Logger
	cacheSize      int
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider

	cache       *renderCache
	instruments *observabilityInstruments
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCacheSize bounds the number of cached renderings. Zero disables the cache.
func WithCacheSize(size int) Option {
	return func(r *Renderer) { r.cacheSize = size }
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(r *Renderer) { r.meterProvider = mp }
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Renderer) { r.tracerProvider = tp }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		logger:    logging.NoOpLogger{},
		cacheSize: defaultCacheSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.meterProvider == nil {
		r.meterProvider = otel.GetMeterProvider()
	}
	if r.tracerProvider == nil {
		r.tracerProvider = otel.GetTracerProvider()
	}
	r.cache = newRenderCache(r.cacheSize)
	r.instruments = initObservability(r.meterProvider, r.tracerProvider)
	return r
}

var defaultRenderer = New()

// Render renders root with the package default renderer. A nil config
// means DefaultConfig.
func Render(root cypher.Visitable, config *Configuration) string {
	return defaultRenderer.Render(root, config)
}

// Render renders root under config. A nil config means DefaultConfig.
func (r *Renderer) Render(root cypher.Visitable, config *Configuration) string {
	return r.RenderContext(context.Background(), root, config).Cypher
}

// RenderContext renders root under config and returns the text together
// with the bound parameter values. ctx only carries the trace parent.
func (r *Renderer) RenderContext(ctx context.Context, root cypher.Visitable, config *Configuration) Rendered {
	if root == nil {
		panic(fmt.Errorf("%w: root is required", cypher.ErrInvalidArgument))
	}
	if config == nil {
		config = DefaultConfig()
	}

	attrs := []attribute.KeyValue{
		attribute.String("cypher.dialect", config.Dialect().String()),
		attribute.Bool("cypher.pretty_print", config.PrettyPrint()),
	}
	_, span := r.instruments.tracer.Start(ctx, "cypher.render", trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	var (
		result Rendered
		cached bool
	)
	if r.cache != nil && cacheable(root) {
		result, cached = r.cache.fetch(cacheKey{root: root, config: *config}, func() Rendered {
			return render(root, config)
		})
		result.Parameters = maps.Clone(result.Parameters)
	} else {
		result = render(root, config)
	}
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Bool("cypher.cached", cached))
	r.instruments.renderCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	r.instruments.renderDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))
	if cached {
		r.instruments.cacheHits.Add(ctx, 1, metric.WithAttributes(attrs...))
	}

	if r.logger.IsDebugEnabled() {
		category := logging.LogCategoryRender
		if cached {
			category = logging.LogCategoryCache
		}
		r.logger.Debug("rendered statement",
			"category", category,
			"dialect", config.Dialect().String(),
			"cached", cached,
			"duration", elapsed,
		)
	}
	return result
}

func render(root cypher.Visitable, config *Configuration) Rendered {
	v := newRenderingVisitor(config, scanNames(root))
	root.Accept(v)
	return Rendered{Cypher: v.Output(), Parameters: v.params}
}
