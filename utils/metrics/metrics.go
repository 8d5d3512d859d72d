package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	// AllocationsTotal counts finished allocation attempts by outcome.
	AllocationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stock_allocation",
		Name:      "allocations_total",
		Help:      "Allocation requests by outcome.",
	}, []string{"outcome"})

	AllocationRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stock_allocation",
		Name:      "allocation_retries_total",
		Help:      "Allocation transactions retried after an optimistic reservation conflict.",
	})

	ShortfallUnits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stock_allocation",
		Name:      "shortfall_units_total",
		Help:      "Units requested but not matched to any slot.",
	})

	CancellationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stock_allocation",
		Name:      "cancellations_total",
		Help:      "Order cancellations by outcome.",
	}, []string{"outcome"})

	ReversalSlotMissing = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stock_allocation",
		Name:      "reversal_slot_missing_total",
		Help:      "Reversed picks whose batch was no longer present in the slot.",
	})

	AllocationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stock_allocation",
		Name:      "allocation_duration_seconds",
		Help:      "Wall time of CreateOrder including retries.",
		Buckets:   prometheus.DefBuckets,
	})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stock_allocation",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route template, method and status code.",
	}, []string{"route", "method", "status"})
)

func init() {
	registry.MustRegister(
		AllocationsTotal,
		AllocationRetries,
		ShortfallUnits,
		CancellationsTotal,
		ReversalSlotMissing,
		AllocationDuration,
		HTTPRequests,
		collectors.NewGoCollector(),
	)
}

// Handler serves the engine's metrics in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
