package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGenerationMetrics() {
	r.SwapAttemptsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraphx_swap_attempts_total",
			Help: "Total stub-swap attempts during randomization",
		},
		[]string{"result"},
	)

	r.RandomizationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraphx_randomizations_total",
			Help: "Total configuration model randomizations",
		},
		[]string{"status"},
	)

	r.RandomizationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hypergraphx_randomization_duration_seconds",
			Help:    "Configuration model randomization duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)
}
