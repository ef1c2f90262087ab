package generation

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/avendramini/hypergraphx/pkg/hypergraph"
)

func mustHypergraph(t *testing.T, edges [][]uint64) *hypergraph.Hypergraph {
	t.Helper()
	h, err := hypergraph.FromEdges(edges)
	if err != nil {
		t.Fatalf("FromEdges failed: %v", err)
	}
	return h
}

func sortedSizes(h *hypergraph.Hypergraph) map[int]int {
	return h.EdgeSizeCounts()
}

func TestConfigModel_ZeroStepsIsIdentity(t *testing.T) {
	h := mustHypergraph(t, [][]uint64{{1, 2}, {2, 3}, {1, 2, 3}})

	out, err := ConfigModel(h, 0, nil)
	if err != nil {
		t.Fatalf("ConfigModel failed: %v", err)
	}
	if out == h {
		t.Fatal("expected a copy, got the same instance")
	}
	for i := 0; i < h.NumEdges(); i++ {
		a, _ := h.Edge(i)
		b, _ := out.Edge(i)
		if a.Key() != b.Key() {
			t.Errorf("edge %d changed with 0 steps: %v vs %v", i, a, b)
		}
	}
}

func TestConfigModel_ZeroStepsOnDegenerate(t *testing.T) {
	h := mustHypergraph(t, [][]uint64{{1, 2, 3}})
	if _, err := ConfigModel(h, 0, nil); err != nil {
		t.Errorf("identity transform should not require 2 hyperedges: %v", err)
	}
}

func TestConfigModel_Degenerate(t *testing.T) {
	h := mustHypergraph(t, [][]uint64{{1, 2, 3}})
	_, err := ConfigModel(h, 10, nil)
	if !errors.Is(err, ErrDegenerateHypergraph) {
		t.Errorf("expected ErrDegenerateHypergraph, got %v", err)
	}
}

func TestConfigModel_NegativeSteps(t *testing.T) {
	h := mustHypergraph(t, [][]uint64{{1, 2}, {3, 4}})
	if _, err := ConfigModel(h, -1, nil); err == nil {
		t.Error("expected error for negative steps")
	}
}

func TestConfigModel_PreservesInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	h, err := RandomHypergraph(15, map[int]int{2: 20, 3: 10, 4: 5}, rng)
	if err != nil {
		t.Fatal(err)
	}

	out, stats, err := ConfigModelWithStats(h, 500, rng)
	if err != nil {
		t.Fatalf("ConfigModelWithStats failed: %v", err)
	}

	if !reflect.DeepEqual(h.DegreeSequence(), out.DegreeSequence()) {
		t.Errorf("degree sequence changed:\nbefore %v\nafter  %v",
			h.DegreeSequence(), out.DegreeSequence())
	}
	if !reflect.DeepEqual(sortedSizes(h), sortedSizes(out)) {
		t.Errorf("edge size histogram changed:\nbefore %v\nafter  %v",
			sortedSizes(h), sortedSizes(out))
	}
	if stats.Attempted != 500 {
		t.Errorf("Attempted = %d, every attempt must consume budget", stats.Attempted)
	}
	if stats.Accepted+stats.Rejected != stats.Attempted {
		t.Errorf("stats inconsistent: %+v", stats)
	}
	if stats.Accepted == 0 {
		t.Error("expected at least one accepted swap on a mixed hypergraph")
	}
}

func TestConfigModel_OriginalUntouched(t *testing.T) {
	h := mustHypergraph(t, [][]uint64{{1, 2}, {3, 4}, {5, 6}, {1, 3, 5}})
	before := make([]string, h.NumEdges())
	for i := range before {
		e, _ := h.Edge(i)
		before[i] = e.Key()
	}

	if _, err := ConfigModel(h, 200, rand.New(rand.NewSource(3))); err != nil {
		t.Fatal(err)
	}

	for i := range before {
		e, _ := h.Edge(i)
		if e.Key() != before[i] {
			t.Errorf("original edge %d mutated: %v", i, e)
		}
	}
}

func TestConfigModel_SeedReproducible(t *testing.T) {
	h := mustHypergraph(t, [][]uint64{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {1, 3, 5}})

	a, err := ConfigModel(h, 100, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := ConfigModel(h, 100, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < a.NumEdges(); i++ {
		ea, _ := a.Edge(i)
		eb, _ := b.Edge(i)
		if ea.Key() != eb.Key() {
			t.Errorf("edge %d differs under identical seeds: %v vs %v", i, ea, eb)
		}
	}
}

func TestConfigModel_PreservationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// For any random hypergraph and any step budget, the sorted degree
	// sequence and the edge-size histogram survive randomization exactly.
	properties.Property("degrees and sizes preserved", prop.ForAll(
		func(seed int64, steps int) bool {
			rng := rand.New(rand.NewSource(seed))
			h, err := RandomHypergraph(10, map[int]int{2: 8, 3: 4}, rng)
			if err != nil {
				return false
			}

			out, err := ConfigModel(h, steps, rng)
			if err != nil {
				return false
			}
			return reflect.DeepEqual(h.DegreeSequence(), out.DegreeSequence()) &&
				reflect.DeepEqual(sortedSizes(h), sortedSizes(out))
		},
		gen.Int64(),
		gen.IntRange(0, 300),
	))

	properties.TestingRun(t)
}

func TestRandomHypergraph(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h, err := RandomHypergraph(12, map[int]int{2: 10, 3: 4, 5: 1}, rng)
	if err != nil {
		t.Fatalf("RandomHypergraph failed: %v", err)
	}

	if h.NumNodes() != 12 {
		t.Errorf("NumNodes() = %d, want 12", h.NumNodes())
	}
	if h.NumEdges() != 15 {
		t.Errorf("NumEdges() = %d, want 15", h.NumEdges())
	}
	counts := h.EdgeSizeCounts()
	if counts[2] != 10 || counts[3] != 4 || counts[5] != 1 {
		t.Errorf("EdgeSizeCounts() = %v", counts)
	}
}

func TestRandomHypergraph_Validation(t *testing.T) {
	if _, err := RandomHypergraph(0, map[int]int{2: 1}, nil); err == nil {
		t.Error("expected error for zero nodes")
	}
	if _, err := RandomHypergraph(3, map[int]int{5: 1}, nil); err == nil {
		t.Error("expected error for edge size above node count")
	}
}
