// ABOUTME: Prometheus instrumentation for the view-model HTTP server.
// ABOUTME: Request counts by route and status, latency by route, and recovered panics.
package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the server-side collectors.
type Metrics struct {
	CounterRequests     *prometheus.CounterVec
	CounterPanics       prometheus.Counter
	HistRequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the server collectors on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "web",
			Name:      "requests_total",
			Help:      "The total number of handled HTTP requests",
		}, []string{"route", "method", "status"}),
		CounterPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "web",
			Name:      "panics_total",
			Help:      "The total number of recovered handler panics",
		}),
		HistRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "web",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}
