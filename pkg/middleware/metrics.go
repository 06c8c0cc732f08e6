package middleware

import (
	"bufio"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "htmlkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "htmlkit",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for htmlkit.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    prometheus.Histogram
	rebuildsTotal   *prometheus.CounterVec
	rebuildDuration prometheus.Histogram
	reloadClients   prometheus.Gauge
	reloadsSent     prometheus.Counter
}

// globalMetrics is the singleton metrics instance.
// Created on first call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "Request handling duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		responseSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "response_size_bytes",
			Help:        "Response body size in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576}, // 256B to 1MB
		}),

		rebuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rebuilds_total",
			Help:        "Total number of site rebuilds by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		rebuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rebuild_duration_seconds",
			Help:        "Site rebuild duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reload_clients",
			Help:        "Number of connected live-reload clients",
			ConstLabels: config.ConstLabels,
		}),

		reloadsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reloads_sent_total",
			Help:        "Total number of reload messages broadcast to clients",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Prometheus creates middleware that collects Prometheus metrics for
// HTTP requests.
//
// Metrics collected:
//   - htmlkit_requests_total: Counter of requests by path and status
//   - htmlkit_request_duration_seconds: Histogram of request duration
//   - htmlkit_response_size_bytes: Histogram of response body sizes
//   - htmlkit_rebuilds_total: Counter of rebuilds (when RecordRebuild is called)
//   - htmlkit_rebuild_duration_seconds: Histogram of rebuild durations
//   - htmlkit_reload_clients: Gauge of connected live-reload clients
//   - htmlkit_reloads_sent_total: Counter of reload broadcasts
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("mysite"),
//	))
//
//	// Expose metrics endpoint
//	r.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) func(http.Handler) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "" {
				path = "/"
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			// Time the request
			start := time.Now()
			next.ServeHTTP(rec, r)
			duration := time.Since(start).Seconds()

			m.requestDuration.WithLabelValues(path).Observe(duration)
			m.requestsTotal.WithLabelValues(path, strconv.Itoa(rec.status)).Inc()
			m.responseSize.Observe(float64(rec.written))
		})
	}
}

// statusRecorder captures the response status and body size. It forwards
// Flush and Hijack so streaming responses and WebSocket upgrades keep
// working behind the middleware.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	n, err := r.ResponseWriter.Write(b)
	r.written += int64(n)
	return n, err
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hj, ok := r.ResponseWriter.(http.Hijacker); ok {
		return hj.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordRebuild records a completed rebuild. Call this from server code
// after each generator run.
func RecordRebuild(duration time.Duration, err error) {
	if globalMetrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	globalMetrics.rebuildsTotal.WithLabelValues(status).Inc()
	globalMetrics.rebuildDuration.Observe(duration.Seconds())
}

// RecordReloadClientConnect records a live-reload client connecting.
func RecordReloadClientConnect() {
	if globalMetrics != nil {
		globalMetrics.reloadClients.Inc()
	}
}

// RecordReloadClientDisconnect records a live-reload client disconnecting.
func RecordReloadClientDisconnect() {
	if globalMetrics != nil {
		globalMetrics.reloadClients.Dec()
	}
}

// RecordReloadBroadcast records a reload message being broadcast.
func RecordReloadBroadcast() {
	if globalMetrics != nil {
		globalMetrics.reloadsSent.Inc()
	}
}

// =============================================================================
// Metrics Collector
// =============================================================================

// Collector exposes the metrics for use in custom registrations.
// This allows collecting htmlkit metrics alongside other application metrics.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    prometheus.Histogram
	rebuildsTotal   *prometheus.CounterVec
	rebuildDuration prometheus.Histogram
	reloadClients   prometheus.Gauge
	reloadsSent     prometheus.Counter
}

// GetMetrics returns the global metrics collector.
// Returns nil if Prometheus middleware has not been initialized.
func GetMetrics() *Collector {
	if globalMetrics == nil {
		return nil
	}
	return &Collector{
		requestsTotal:   globalMetrics.requestsTotal,
		requestDuration: globalMetrics.requestDuration,
		responseSize:    globalMetrics.responseSize,
		rebuildsTotal:   globalMetrics.rebuildsTotal,
		rebuildDuration: globalMetrics.rebuildDuration,
		reloadClients:   globalMetrics.reloadClients,
		reloadsSent:     globalMetrics.reloadsSent,
	}
}
