// Package metrics exposes Prometheus instrumentation for the HTTP layer and
// the search-engine client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	engineRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kitaplik",
			Name:      "engine_request_duration_seconds",
			Help:      "Search engine request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"op", "status"},
	)

	engineRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kitaplik",
			Name:      "engine_requests_total",
			Help:      "Total number of search engine requests",
		},
		[]string{"op", "status"},
	)
)

// RegisterEngineMetrics registers engine client metrics explicitly (no init).
func RegisterEngineMetrics() {
	prometheus.MustRegister(engineRequestDuration)
	prometheus.MustRegister(engineRequestsTotal)
}

// ObserveEngineRequest records one engine round trip.
func ObserveEngineRequest(op, status string, elapsed time.Duration) {
	engineRequestDuration.WithLabelValues(op, status).Observe(elapsed.Seconds())
	engineRequestsTotal.WithLabelValues(op, status).Inc()
}
