// ABOUTME: Prometheus instrumentation for outgoing backend requests.
// ABOUTME: Counts calls by operation and status and records their latency.
package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the client-side request collectors.
type Metrics struct {
	CounterRequests  *prometheus.CounterVec
	CounterCacheHits prometheus.Counter
	HistDuration     *prometheus.HistogramVec
}

// NewMetrics registers the client collectors on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api_client",
			Name:      "requests_total",
			Help:      "The total number of backend requests",
		}, []string{"op", "status"}),
		CounterCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api_client",
			Name:      "cache_hits_total",
			Help:      "The total number of GET responses served from the response cache",
		}),
		HistDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api_client",
			Name:      "request_duration_seconds",
			Help:      "Backend request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
}
