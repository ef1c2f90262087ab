// Package generation produces randomized hypergraphs: the degree- and
// size-preserving configuration model used for motif null models, and a
// uniform random generator for synthetic inputs.
package generation

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/avendramini/hypergraphx/pkg/hypergraph"
)

// ErrDegenerateHypergraph is returned when randomization is requested on a
// hypergraph with fewer than 2 hyperedges; a stub swap needs two.
var ErrDegenerateHypergraph = errors.New("hypergraph has fewer than 2 hyperedges")

// CountRejectedSteps fixes the step-budget convention: every attempted swap
// consumes one step, whether accepted or rejected. Runtime stays
// proportional to the requested budget regardless of rejection rate.
const CountRejectedSteps = true

// SwapStats reports what happened during a randomization run.
type SwapStats struct {
	Attempted int
	Accepted  int
	Rejected  int
}

// ConfigModel returns a randomized copy of the hypergraph after the given
// number of stub-swap steps. See ConfigModelWithStats.
func ConfigModel(h *hypergraph.Hypergraph, steps int, rng *rand.Rand) (*hypergraph.Hypergraph, error) {
	out, _, err := ConfigModelWithStats(h, steps, rng)
	return out, err
}

// ConfigModelWithStats randomizes incidence structure while preserving every
// node's degree and every hyperedge's size exactly. Each step draws two
// distinct hyperedges and attempts to exchange one node between them; swaps
// that would duplicate a node inside an edge are rejected and a fresh pair
// is drawn (rejected attempts consume budget, per CountRejectedSteps).
//
// steps == 0 is the identity transform: the clone is returned unmodified.
// A nil rng is seeded from the clock; pass a seeded rng for reproducibility.
func ConfigModelWithStats(h *hypergraph.Hypergraph, steps int, rng *rand.Rand) (*hypergraph.Hypergraph, SwapStats, error) {
	var stats SwapStats
	if steps < 0 {
		return nil, stats, fmt.Errorf("negative step count %d", steps)
	}

	out := h.Clone()
	if steps == 0 {
		return out, stats, nil
	}
	if out.NumEdges() < 2 {
		return nil, stats, fmt.Errorf("randomize: %w", ErrDegenerateHypergraph)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for step := 0; step < steps; step++ {
		stats.Attempted++

		i := rng.Intn(out.NumEdges())
		j := rng.Intn(out.NumEdges() - 1)
		if j >= i {
			j++
		}
		e1, _ := out.Edge(i)
		e2, _ := out.Edge(j)

		a := e1[rng.Intn(e1.Size())]
		b := e2[rng.Intn(e2.Size())]

		// Moving a into e2 (or b into e1) must not create a duplicate.
		if a == b || e2.Contains(a) || e1.Contains(b) {
			stats.Rejected++
			continue
		}

		if err := out.ReplaceEdge(i, swapNode(e1, a, b)...); err != nil {
			return nil, stats, err
		}
		if err := out.ReplaceEdge(j, swapNode(e2, b, a)...); err != nil {
			return nil, stats, err
		}
		stats.Accepted++
	}
	return out, stats, nil
}

// swapNode returns the edge's nodes with `from` replaced by `to`.
func swapNode(e hypergraph.Hyperedge, from, to uint64) []uint64 {
	out := make([]uint64, 0, e.Size())
	for _, n := range e {
		if n == from {
			out = append(out, to)
		} else {
			out = append(out, n)
		}
	}
	return out
}
