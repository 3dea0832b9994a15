package scsdk

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle.
// All methods are nil-receiver safe so instrumentation can stay optional.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec

	errorsTotal    *prometheus.CounterVec
	apiErrorsTotal *prometheus.CounterVec

	proxySelections *prometheus.CounterVec

	registerer prometheus.Registerer
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	mc := &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "scsdk_requests_total",
				Help: "Total number of API requests made",
			},
			[]string{"method", "action", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scsdk_request_duration_seconds",
				Help:    "Duration of API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "action", "status_code"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "scsdk_requests_in_flight",
				Help: "Number of API requests currently in flight",
			},
			[]string{"method", "action"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "scsdk_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type", "method", "action"},
		),
		apiErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "scsdk_api_errors_total",
				Help: "Total number of provider error envelopes by code",
			},
			[]string{"action", "code"},
		),
		proxySelections: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "scsdk_proxy_selections_total",
				Help: "Total number of requests routed through a proxy",
			},
			[]string{"proxy"},
		),
		registerer: registry,
	}

	return mc
}

// RecordRequest records request count and duration.
func (mc *MetricsCollector) RecordRequest(method, action string, statusCode int, duration time.Duration) {
	if mc == nil {
		return
	}

	status := strconv.Itoa(statusCode)
	mc.requestsTotal.WithLabelValues(method, action, status).Inc()
	mc.requestDuration.WithLabelValues(method, action, status).Observe(duration.Seconds())
}

// RecordRequestStart increments the in-flight gauge.
func (mc *MetricsCollector) RecordRequestStart(method, action string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(method, action).Inc()
}

// RecordRequestEnd decrements the in-flight gauge.
func (mc *MetricsCollector) RecordRequestEnd(method, action string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(method, action).Dec()
}

// RecordError increments the error counter by type.
func (mc *MetricsCollector) RecordError(errorType, method, action string) {
	if mc == nil {
		return
	}

	mc.errorsTotal.WithLabelValues(errorType, method, action).Inc()
}

// RecordAPIError increments the provider error counter by code.
func (mc *MetricsCollector) RecordAPIError(action, code string) {
	if mc == nil {
		return
	}

	mc.apiErrorsTotal.WithLabelValues(action, code).Inc()
}

// RecordProxySelection increments the proxy routing counter.
func (mc *MetricsCollector) RecordProxySelection(proxy string) {
	if mc == nil {
		return
	}

	mc.proxySelections.WithLabelValues(proxy).Inc()
}
