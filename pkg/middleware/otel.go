package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "htmlkit").
	TracerName string

	// IncludeQuery includes the raw query string in span attributes.
	// Default: false (queries may contain sensitive data).
	IncludeQuery bool

	// Filter decides whether a request should be traced.
	// Return false to skip tracing. Default: trace everything.
	Filter func(r *http.Request) bool

	// AttributeExtractor extracts additional attributes from the request.
	AttributeExtractor func(r *http.Request) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeQuery includes the query string in span attributes.
func WithIncludeQuery() OTelOption {
	return func(c *OTelConfig) {
		c.IncludeQuery = true
	}
}

// WithFilter sets a filter function to skip tracing for some requests.
func WithFilter(filter func(r *http.Request) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a function to extract extra span attributes.
func WithAttributeExtractor(extractor func(r *http.Request) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName:   "htmlkit",
		IncludeQuery: false,
		Filter:       nil,
		tracer:       nil,
	}
}

// OpenTelemetry creates middleware that adds distributed tracing spans
// for HTTP requests.
//
// Each request gets a span named "METHOD /path" with standard HTTP
// attributes. The span context is stored on the request context so
// handlers can create child spans.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-site"),
//	))
//
// To export traces, configure a trace provider before starting the
// server (e.g. with the OTLP exporter).
func OpenTelemetry(opts ...OTelOption) func(http.Handler) http.Handler {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	config.tracer = otel.Tracer(config.TracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check filter
			if config.Filter != nil && !config.Filter(r) {
				next.ServeHTTP(w, r)
				return
			}

			spanName := formatSpanName(r.Method, r.URL.Path)

			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
				attribute.String("http.host", r.Host),
			}
			if config.IncludeQuery && r.URL.RawQuery != "" {
				attrs = append(attrs, attribute.String("http.query", r.URL.RawQuery))
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(r)...)
			}

			ctx, span := config.tracer.Start(r.Context(), spanName,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.status_code", rec.status))
			if rec.status >= 500 {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}

// formatSpanName builds a span name from the method and path.
func formatSpanName(method, path string) string {
	if path == "" {
		path = "/"
	}
	return method + " " + path
}

// SpanFromRequest returns the current span from the request context.
// Returns a no-op span if the request is not being traced.
func SpanFromRequest(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}
