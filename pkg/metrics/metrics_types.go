// Package metrics exposes Prometheus instrumentation for the motif-analysis
// engine.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the engine
type Registry struct {
	// Enumeration Metrics
	EnumerationsTotal   *prometheus.CounterVec
	EnumerationDuration *prometheus.HistogramVec
	EnumerationSubsets  *prometheus.HistogramVec
	EnumerationPatterns *prometheus.HistogramVec

	// Randomization Metrics
	SwapAttemptsTotal     *prometheus.CounterVec
	RandomizationsTotal   *prometheus.CounterVec
	RandomizationDuration prometheus.Histogram

	// Analysis Metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	AnalysisNullRuns prometheus.Histogram

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initMotifMetrics()
	r.initGenerationMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
