package motifs

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/stat"

	"github.com/avendramini/hypergraphx/pkg/generation"
	"github.com/avendramini/hypergraphx/pkg/hypergraph"
	"github.com/avendramini/hypergraphx/pkg/logging"
	"github.com/avendramini/hypergraphx/pkg/metrics"
	"github.com/avendramini/hypergraphx/pkg/parallel"
)

// DefaultStepsPerEdge is the randomization step budget per hyperedge: each
// null-model run performs StepsPerEdge * NumEdges swap attempts, enough
// mixing to decorrelate incidence structure.
const DefaultStepsPerEdge = 10

// AnalysisOptions tunes a motif analysis. The zero value gives a serial,
// time-seeded run with no observability hooks.
type AnalysisOptions struct {
	// Seed for the null-model randomness. 0 means time-seeded. Per-run seeds
	// are derived from it, so a fixed seed reproduces results exactly
	// regardless of worker count.
	Seed int64
	// Workers bounds concurrent null-model runs. <= 1 runs serially.
	Workers int
	// StepsPerEdge overrides DefaultStepsPerEdge.
	StepsPerEdge int
	// Progress receives human-readable notifications.
	Progress ProgressSink
	// Logger receives structured log entries.
	Logger logging.Logger
	// Metrics records counters and durations.
	Metrics *metrics.Registry
	// Cache is the canonicalization memo table, shared across the observed
	// and all null-model enumerations. Nil allocates a fresh one.
	Cache *CanonicalCache
}

// ComputeMotifs runs the full motif analysis: one enumeration of the
// observed hypergraph, then runsConfigModel configuration-model samples each
// enumerated the same way, and a normalized abundance score per pattern:
//
//	normDelta = (observed - mean(null)) / (observed + mean(null))
//
// bounded in [-1, 1], defined as 0 when both terms are zero. The computation
// is atomic: any enumeration or randomization failure returns a nil result.
// With runsConfigModel == 0 only Observed is populated.
func ComputeMotifs(h *hypergraph.Hypergraph, order, runsConfigModel int, opts *AnalysisOptions) (*AnalysisResult, error) {
	if opts == nil {
		opts = &AnalysisOptions{}
	}
	if runsConfigModel < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRuns, runsConfigModel)
	}

	start := time.Now()
	runID := uuid.NewString()

	cache := opts.Cache
	if cache == nil {
		cache = NewCanonicalCache()
	}

	if opts.Logger != nil {
		opts.Logger.Info("motif analysis started",
			logging.Component("motifs"),
			logging.RunID(runID),
			logging.Order(order),
			logging.Runs(runsConfigModel),
			logging.Nodes(h.NumNodes()),
			logging.Edges(h.NumEdges()))
	}
	progressf(opts.Progress, "%s", h.Summary())
	progressf(opts.Progress, "computing observed motifs of order %d", order)

	en := &Enumerator{
		Cache:    cache,
		Progress: opts.Progress,
		Logger:   opts.Logger,
		Metrics:  opts.Metrics,
	}
	observed, err := en.Enumerate(h, order)
	if err != nil {
		recordAnalysis(opts.Metrics, order, "error", start, runsConfigModel)
		return nil, err
	}

	nullTables, err := runNullModels(h, order, runsConfigModel, cache, opts)
	if err != nil {
		recordAnalysis(opts.Metrics, order, "error", start, runsConfigModel)
		return nil, err
	}

	result := aggregate(order, runID, observed, nullTables)
	recordAnalysis(opts.Metrics, order, "ok", start, runsConfigModel)
	if opts.Logger != nil {
		opts.Logger.Info("motif analysis complete",
			logging.Component("motifs"),
			logging.RunID(runID),
			logging.Order(order),
			logging.Patterns(len(result.Patterns)),
			logging.Latency(time.Since(start)))
	}
	return result, nil
}

func recordAnalysis(r *metrics.Registry, order int, status string, start time.Time, runs int) {
	if r != nil {
		r.RecordAnalysis(order, status, time.Since(start), runs)
	}
}

// runNullModels executes the configuration-model runs, serially or across a
// worker pool. Per-run seeds are drawn up front from the root seed, and each
// run owns a private clone of the hypergraph, so the merge is deterministic
// for a fixed seed no matter how runs are scheduled.
func runNullModels(h *hypergraph.Hypergraph, order, runs int, cache *CanonicalCache, opts *AnalysisOptions) ([]CountTable, error) {
	if runs == 0 {
		return nil, nil
	}

	stepsPerEdge := opts.StepsPerEdge
	if stepsPerEdge <= 0 {
		stepsPerEdge = DefaultStepsPerEdge
	}
	steps := stepsPerEdge * h.NumEdges()

	rootSeed := opts.Seed
	if rootSeed == 0 {
		rootSeed = time.Now().UnixNano()
	}
	seedSource := rand.New(rand.NewSource(rootSeed))
	seeds := make([]int64, runs)
	for i := range seeds {
		seeds[i] = seedSource.Int63()
	}

	tables := make([]CountTable, runs)
	errs := make([]error, runs)

	runOne := func(i int) {
		runStart := time.Now()
		progressf(opts.Progress, "computing config model motifs of order %d, run %d/%d", order, i+1, runs)

		rng := rand.New(rand.NewSource(seeds[i]))
		sample, stats, err := generation.ConfigModelWithStats(h, steps, rng)
		if opts.Metrics != nil {
			status := "ok"
			if err != nil {
				status = "error"
			}
			opts.Metrics.RecordRandomization(status, time.Since(runStart), stats.Accepted, stats.Rejected)
		}
		if err != nil {
			errs[i] = fmt.Errorf("config model run %d: %w", i+1, err)
			return
		}

		en := &Enumerator{Cache: cache, Metrics: opts.Metrics}
		tables[i], errs[i] = en.Enumerate(sample, order)
	}

	if opts.Workers <= 1 || runs == 1 {
		for i := 0; i < runs; i++ {
			runOne(i)
		}
	} else {
		pool, err := parallel.NewWorkerPool(opts.Workers)
		if err != nil {
			return nil, err
		}
		for i := 0; i < runs; i++ {
			i := i
			if !pool.Submit(func() { runOne(i) }) {
				// Cannot happen while the pool is open; surface it rather
				// than silently dropping a run.
				errs[i] = fmt.Errorf("config model run %d: worker pool closed", i+1)
			}
		}
		pool.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return tables, nil
}

// aggregate merges the observed table and the null-model tables into the
// final result, index-aligned on the canonical pattern ordering.
func aggregate(order int, runID string, observed CountTable, nullTables []CountTable) *AnalysisResult {
	runs := len(nullTables)

	keySet := make(map[PatternKey]struct{}, len(observed))
	keySet[EmptyPattern] = struct{}{}
	for k := range observed {
		keySet[k] = struct{}{}
	}
	for _, t := range nullTables {
		for k := range t {
			keySet[k] = struct{}{}
		}
	}
	patterns := maps.Keys(keySet)
	SortPatterns(patterns)

	result := &AnalysisResult{
		Order:       order,
		Runs:        runs,
		RunID:       runID,
		Patterns:    patterns,
		Observed:    make(map[PatternKey]int, len(patterns)),
		ConfigModel: make(map[PatternKey][]int),
		NormDelta:   make(map[PatternKey]float64),
		NullMean:    make(map[PatternKey]float64),
		NullStd:     make(map[PatternKey]float64),
	}

	for _, p := range patterns {
		result.Observed[p] = observed[p]
	}
	if runs == 0 {
		return result
	}

	for _, p := range patterns {
		counts := make([]int, runs)
		floats := make([]float64, runs)
		for i, t := range nullTables {
			counts[i] = t[p]
			floats[i] = float64(t[p])
		}
		result.ConfigModel[p] = counts

		mean := stat.Mean(floats, nil)
		result.NullMean[p] = mean
		if runs > 1 {
			result.NullStd[p] = stat.StdDev(floats, nil)
		}

		obs := float64(result.Observed[p])
		if denom := obs + mean; denom != 0 {
			result.NormDelta[p] = (obs - mean) / denom
		} else {
			result.NormDelta[p] = 0
		}
	}
	return result
}
