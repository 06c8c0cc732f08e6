package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestPrometheusMiddleware_RecordsRequests(t *testing.T) {
	t.Run("success records status 200 and duration", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		mw := Prometheus(WithRegistry(reg))
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html></html>"))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		c := GetMetrics()
		if c == nil {
			t.Fatal("expected GetMetrics to return collector after initialization")
		}

		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/test", "200")); got != 1 {
			t.Fatalf("requests_total(200)=%v, want 1", got)
		}
		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/test", "500")); got != 0 {
			t.Fatalf("requests_total(500)=%v, want 0", got)
		}
		if got := metricHistogramCount(t, c.requestDuration.WithLabelValues("/test")); got == 0 {
			t.Fatal("expected request_duration_seconds histogram to have sample count > 0")
		}
		if got := metricHistogramCount(t, c.responseSize); got == 0 {
			t.Fatal("expected response_size_bytes histogram to have sample count > 0")
		}
	})

	t.Run("error status is recorded", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		mw := Prometheus(WithRegistry(reg))
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}

		c := GetMetrics()
		if c == nil {
			t.Fatal("expected GetMetrics to return collector after initialization")
		}

		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/test", "500")); got != 1 {
			t.Fatalf("requests_total(500)=%v, want 1", got)
		}
	})
}

func TestPrometheusMiddleware_EmptyPathNormalizesToSlash(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	mw := Prometheus(WithRegistry(reg))
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.URL.Path = ""
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	c := GetMetrics()
	if c == nil {
		t.Fatal("expected GetMetrics to return collector after initialization")
	}
	if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/", "200")); got != 1 {
		t.Fatalf("requests_total(/,200)=%v, want 1", got)
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Run("default status is 200", func(t *testing.T) {
		inner := httptest.NewRecorder()
		rec := &statusRecorder{ResponseWriter: inner, status: http.StatusOK}

		rec.Write([]byte("hello"))

		if rec.status != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.status, http.StatusOK)
		}
		if rec.written != 5 {
			t.Errorf("written = %d, want 5", rec.written)
		}
	})

	t.Run("first WriteHeader wins", func(t *testing.T) {
		inner := httptest.NewRecorder()
		rec := &statusRecorder{ResponseWriter: inner, status: http.StatusOK}

		rec.WriteHeader(http.StatusNotFound)
		rec.WriteHeader(http.StatusInternalServerError)

		if rec.status != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.status, http.StatusNotFound)
		}
	})

	t.Run("hijack unsupported without Hijacker", func(t *testing.T) {
		inner := httptest.NewRecorder()
		rec := &statusRecorder{ResponseWriter: inner, status: http.StatusOK}

		_, _, err := rec.Hijack()
		if !errors.Is(err, http.ErrNotSupported) {
			t.Errorf("Hijack() error = %v, want http.ErrNotSupported", err)
		}
	})
}

func TestMetricsRecordFunctions_WithInitializedMetrics(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	_ = Prometheus(WithRegistry(reg)) // initialize global metrics
	c := GetMetrics()
	if c == nil {
		t.Fatal("expected GetMetrics to return collector after initialization")
	}

	RecordRebuild(120*time.Millisecond, nil)
	RecordRebuild(80*time.Millisecond, errors.New("generator failed"))
	RecordReloadClientConnect()
	RecordReloadClientConnect()
	RecordReloadClientDisconnect()
	RecordReloadBroadcast()

	if got := metricCounterValue(t, c.rebuildsTotal.WithLabelValues("success")); got != 1 {
		t.Fatalf("rebuilds_total(success)=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.rebuildsTotal.WithLabelValues("error")); got != 1 {
		t.Fatalf("rebuilds_total(error)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, c.rebuildDuration); got != 2 {
		t.Fatalf("rebuild_duration_seconds sample count=%v, want 2", got)
	}
	if got := metricGaugeValue(t, c.reloadClients); got != 1 {
		t.Fatalf("reload_clients=%v, want 1 (two connects, one disconnect)", got)
	}
	if got := metricCounterValue(t, c.reloadsSent); got != 1 {
		t.Fatalf("reloads_sent_total=%v, want 1", got)
	}
}
