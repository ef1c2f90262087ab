package metrics

import (
	"strconv"
	"time"
)

// RecordEnumeration records a completed motif enumeration.
func (r *Registry) RecordEnumeration(order int, status string, duration time.Duration, subsets, patterns int) {
	o := strconv.Itoa(order)
	r.EnumerationsTotal.WithLabelValues(o, status).Inc()
	r.EnumerationDuration.WithLabelValues(o).Observe(duration.Seconds())
	r.EnumerationSubsets.WithLabelValues(o).Observe(float64(subsets))
	r.EnumerationPatterns.WithLabelValues(o).Observe(float64(patterns))
}

// RecordRandomization records a configuration model run with its swap
// outcomes.
func (r *Registry) RecordRandomization(status string, duration time.Duration, accepted, rejected int) {
	r.RandomizationsTotal.WithLabelValues(status).Inc()
	r.RandomizationDuration.Observe(duration.Seconds())
	r.SwapAttemptsTotal.WithLabelValues("accepted").Add(float64(accepted))
	r.SwapAttemptsTotal.WithLabelValues("rejected").Add(float64(rejected))
}

// RecordAnalysis records a full motif analysis.
func (r *Registry) RecordAnalysis(order int, status string, duration time.Duration, nullRuns int) {
	r.AnalysesTotal.WithLabelValues(status).Inc()
	r.AnalysisDuration.WithLabelValues(strconv.Itoa(order)).Observe(duration.Seconds())
	r.AnalysisNullRuns.Observe(float64(nullRuns))
}
