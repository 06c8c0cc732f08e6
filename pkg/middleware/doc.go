// Package middleware provides HTTP middleware for the htmlkit preview
// server: Prometheus metrics and OpenTelemetry tracing.
//
// Both middlewares are standard func(http.Handler) http.Handler wrappers,
// so they compose with chi and plain net/http alike:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus())
//	r.Use(middleware.OpenTelemetry())
//	r.Handle("/metrics", promhttp.Handler())
//
// The metrics middleware also exposes Record* functions for
// instrumenting events that happen outside the request path, such as
// rebuilds triggered by the file watcher and live-reload broadcasts.
package middleware
