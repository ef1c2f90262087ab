// Package motifs implements higher-order motif analysis: enumeration of
// small connected hyperedge configurations, canonical-form deduplication of
// isomorphic patterns, and abundance scoring against configuration-model
// null hypergraphs.
package motifs

import "golang.org/x/exp/maps"

// CountTable maps canonical patterns to occurrence counts for a single
// enumeration run.
type CountTable map[PatternKey]int

// Total returns the sum of all pattern counts. Equals the number of distinct
// connected node subsets found during enumeration.
func (t CountTable) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Keys returns the table's pattern keys in canonical order.
func (t CountTable) Keys() []PatternKey {
	keys := maps.Keys(t)
	SortPatterns(keys)
	return keys
}

// Clone returns an independent copy of the table.
func (t CountTable) Clone() CountTable {
	out := make(CountTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// AnalysisResult is the outcome of a full motif analysis: observed counts,
// per-run configuration-model counts, and the normalized abundance score for
// every pattern. Patterns fixes the canonical key ordering, so iterating it
// yields index-aligned views over the three mappings. The result is built
// once per invocation and never mutated afterwards.
type AnalysisResult struct {
	Order int    // motif order (nodes per instance)
	Runs  int    // number of configuration-model runs
	RunID string // unique id for this invocation, also attached to logs

	Patterns []PatternKey // canonical ordering of all keys below

	Observed    map[PatternKey]int
	ConfigModel map[PatternKey][]int // null counts, index-aligned by run
	NormDelta   map[PatternKey]float64

	NullMean map[PatternKey]float64
	NullStd  map[PatternKey]float64
}
