package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initMotifMetrics() {
	r.EnumerationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraphx_enumerations_total",
			Help: "Total number of motif enumerations executed",
		},
		[]string{"order", "status"},
	)

	r.EnumerationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hypergraphx_enumeration_duration_seconds",
			Help:    "Motif enumeration duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"order"},
	)

	r.EnumerationSubsets = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hypergraphx_enumeration_subsets",
			Help:    "Connected node subsets counted per enumeration",
			Buckets: []float64{10, 100, 1000, 10000, 100000, 1000000},
		},
		[]string{"order"},
	)

	r.EnumerationPatterns = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hypergraphx_enumeration_patterns",
			Help:    "Distinct canonical patterns per enumeration",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 500},
		},
		[]string{"order"},
	)

	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraphx_analyses_total",
			Help: "Total number of motif analyses executed",
		},
		[]string{"status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hypergraphx_analysis_duration_seconds",
			Help:    "Full motif analysis duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 5.0, 30.0, 120.0, 600.0},
		},
		[]string{"order"},
	)

	r.AnalysisNullRuns = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hypergraphx_analysis_null_runs",
			Help:    "Configuration model runs per analysis",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)
}
