package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the per-server Prometheus collectors. Each server owns its
// registry so handlers can be created more than once in the same process.
type metrics struct {
	registry *prometheus.Registry

	reviews *prometheus.CounterVec
	gaps    *prometheus.CounterVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		reviews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "reviews_total",
			Help:      "Design reviews served, labeled by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		gaps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "gaps_found_total",
			Help:      "Gaps found by the analyzer, labeled by severity.",
		}, []string{"severity"}),
	}
}
