package scsdk

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewMetricsCollectorWithRegistry(registry)

	if collector == nil {
		t.Fatal("NewMetricsCollectorWithRegistry() returned nil")
	}

	if collector.requestsTotal == nil {
		t.Error("requestsTotal metric not initialized")
	}

	if collector.requestDuration == nil {
		t.Error("requestDuration metric not initialized")
	}

	if collector.requestsInFlight == nil {
		t.Error("requestsInFlight metric not initialized")
	}

	if collector.errorsTotal == nil {
		t.Error("errorsTotal metric not initialized")
	}

	if collector.apiErrorsTotal == nil {
		t.Error("apiErrorsTotal metric not initialized")
	}

	if collector.proxySelections == nil {
		t.Error("proxySelections metric not initialized")
	}
}

func TestRecordRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewMetricsCollectorWithRegistry(registry)

	collector.RecordRequest("GET", "GetOrders", 200, 20*time.Millisecond)
	collector.RecordRequest("GET", "GetOrders", 200, 30*time.Millisecond)

	got := testutil.ToFloat64(collector.requestsTotal.WithLabelValues("GET", "GetOrders", "200"))
	if got != 2 {
		t.Errorf("Expected 2 requests recorded, got %v", got)
	}
}

func TestRecordInFlight(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewMetricsCollectorWithRegistry(registry)

	collector.RecordRequestStart("GET", "GetOrders")
	collector.RecordRequestStart("GET", "GetOrders")
	collector.RecordRequestEnd("GET", "GetOrders")

	got := testutil.ToFloat64(collector.requestsInFlight.WithLabelValues("GET", "GetOrders"))
	if got != 1 {
		t.Errorf("Expected 1 request in flight, got %v", got)
	}
}

func TestRecordErrors(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewMetricsCollectorWithRegistry(registry)

	collector.RecordError("API", "GET", "GetOrders")
	collector.RecordAPIError("GetOrders", "10")
	collector.RecordProxySelection("proxy.local:8080")

	if got := testutil.ToFloat64(collector.errorsTotal.WithLabelValues("API", "GET", "GetOrders")); got != 1 {
		t.Errorf("Expected 1 error recorded, got %v", got)
	}
	if got := testutil.ToFloat64(collector.apiErrorsTotal.WithLabelValues("GetOrders", "10")); got != 1 {
		t.Errorf("Expected 1 api error recorded, got %v", got)
	}
	if got := testutil.ToFloat64(collector.proxySelections.WithLabelValues("proxy.local:8080")); got != 1 {
		t.Errorf("Expected 1 proxy selection recorded, got %v", got)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var collector *MetricsCollector

	collector.RecordRequest("GET", "GetOrders", 200, time.Millisecond)
	collector.RecordRequestStart("GET", "GetOrders")
	collector.RecordRequestEnd("GET", "GetOrders")
	collector.RecordError("API", "GET", "GetOrders")
	collector.RecordAPIError("GetOrders", "10")
	collector.RecordProxySelection("proxy.local:8080")
}
