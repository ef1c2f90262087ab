package motifs

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat/combin"

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

func TestEnumerate_InvalidOrder(t *testing.T) {
	h := mustHypergraph(t, [][]uint64{{1, 2}, {2, 3}})

	tests := []struct {
		name  string
		order int
	}{
		{"below 2", 1},
		{"zero", 0},
		{"negative", -3},
		{"above node count", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EnumerateMotifs(h, tt.order)
			if !errors.Is(err, ErrInvalidOrder) {
				t.Errorf("expected ErrInvalidOrder, got %v", err)
			}
		})
	}
}

func TestEnumerate_ClosedTriad(t *testing.T) {
	// The classic order-3 closed triad: three pairwise links plus the full
	// three-way hyperedge.
	h := mustHypergraph(t, [][]uint64{{1, 2}, {1, 3}, {2, 3}, {1, 2, 3}})

	counts, err := EnumerateMotifs(h, 3)
	if err != nil {
		t.Fatalf("EnumerateMotifs failed: %v", err)
	}

	if counts.Total() != 1 {
		t.Fatalf("Total() = %d, want exactly 1 connected subset", counts.Total())
	}

	fullyClosed := Canonicalize([][]int{{0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}, 3, nil)
	if counts[fullyClosed] != 1 {
		t.Errorf("fully closed pattern count = %d, want 1", counts[fullyClosed])
	}
	for p, c := range counts {
		if p != fullyClosed && c != 0 {
			t.Errorf("pattern %q has count %d, want 0", p, c)
		}
	}
	if _, ok := counts[EmptyPattern]; !ok {
		t.Error("empty baseline pattern missing from table")
	}
}

func TestEnumerate_PairwiseOnlyHasNoLargeEdges(t *testing.T) {
	// Pairwise hyperedges only: no size >= 3 hyperedge can appear in any
	// pattern at order 3.
	h := mustHypergraph(t, [][]uint64{{1, 2}, {2, 3}, {3, 4}, {4, 1}, {1, 3}})

	counts, err := EnumerateMotifs(h, 3)
	if err != nil {
		t.Fatalf("EnumerateMotifs failed: %v", err)
	}
	if counts.Total() == 0 {
		t.Fatal("expected connected triples")
	}

	for p, c := range counts {
		if c == 0 {
			continue
		}
		for _, e := range p.Edges() {
			if len(e) >= 3 {
				t.Errorf("pattern %q with count %d contains a size-%d hyperedge", p, c, len(e))
			}
		}
	}
}

func TestEnumerate_LargeEdgeRestriction(t *testing.T) {
	// A single size-4 hyperedge: every triple inside it induces the full
	// size-3 restriction, so all C(4,3) subsets count the same pattern.
	h := mustHypergraph(t, [][]uint64{{1, 2, 3, 4}})

	counts, err := EnumerateMotifs(h, 3)
	if err != nil {
		t.Fatalf("EnumerateMotifs failed: %v", err)
	}

	full := Canonicalize([][]int{{0, 1, 2}}, 3, nil)
	if counts[full] != 4 {
		t.Errorf("full-triple pattern count = %d, want 4", counts[full])
	}
	if counts.Total() != 4 {
		t.Errorf("Total() = %d, want 4", counts.Total())
	}
}

func TestEnumerate_RestrictionOnlySubsets(t *testing.T) {
	// Two overlapping size-3 hyperedges. Subsets like {1,2,3} are connected
	// only through restrictions ({1,2} and {2,3}) of hyperedges that are not
	// themselves inside the subset, so they must still be reached.
	h := mustHypergraph(t, [][]uint64{{1, 2, 9}, {2, 3, 8}})

	counts, err := EnumerateMotifs(h, 3)
	if err != nil {
		t.Fatalf("EnumerateMotifs failed: %v", err)
	}

	if counts.Total() != 6 {
		t.Fatalf("Total() = %d, want 6", counts.Total())
	}
	fullTriple := Canonicalize([][]int{{0, 1, 2}}, 3, nil)
	if counts[fullTriple] != 2 {
		t.Errorf("full-triple pattern count = %d, want 2", counts[fullTriple])
	}
	path := Canonicalize([][]int{{0, 1}, {1, 2}}, 3, nil)
	if counts[path] != 4 {
		t.Errorf("two-pair path pattern count = %d, want 4", counts[path])
	}

	want := bruteForceCounts(t, h, 3)
	for p, c := range want {
		if counts[p] != c {
			t.Errorf("pattern %q: count %d, brute force %d", p, counts[p], c)
		}
	}
}

func TestEnumerate_DisconnectedSubsetsRejected(t *testing.T) {
	h := mustHypergraph(t, [][]uint64{{1, 2}, {3, 4}})

	counts, err := EnumerateMotifs(h, 3)
	if err != nil {
		t.Fatalf("EnumerateMotifs failed: %v", err)
	}
	if counts.Total() != 0 {
		t.Errorf("Total() = %d, want 0 (no connected triple exists)", counts.Total())
	}
}

func TestEnumerate_DuplicateEdgesCollapse(t *testing.T) {
	// Duplicate hyperedges collapse in the induced sub-hypergraph, so the
	// pattern matches the single-edge version.
	single := mustHypergraph(t, [][]uint64{{1, 2}, {2, 3}})
	doubled := mustHypergraph(t, [][]uint64{{1, 2}, {1, 2}, {2, 3}})

	a, err := EnumerateMotifs(single, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EnumerateMotifs(doubled, 3)
	if err != nil {
		t.Fatal(err)
	}

	for p, c := range a {
		if b[p] != c {
			t.Errorf("pattern %q: doubled count %d, single count %d", p, b[p], c)
		}
	}
}

func TestEnumerate_ProgressSinkDoesNotChangeResults(t *testing.T) {
	h := mustHypergraph(t, [][]uint64{{1, 2}, {1, 3}, {2, 3}, {1, 2, 3}})

	quiet, err := EnumerateMotifs(h, 3)
	if err != nil {
		t.Fatal(err)
	}

	var lines []string
	en := &Enumerator{
		Progress:      progressFunc(func(msg string) { lines = append(lines, msg) }),
		ProgressEvery: 1,
	}
	loud, err := en.Enumerate(h, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(lines) == 0 {
		t.Error("expected progress notifications with ProgressEvery=1")
	}
	if len(loud) != len(quiet) || loud.Total() != quiet.Total() {
		t.Errorf("progress sink changed results: %v vs %v", loud, quiet)
	}
}

type progressFunc func(string)

func (f progressFunc) Progressf(format string, args ...any) {
	f(fmt.Sprintf(format, args...))
}

// bruteForceCounts enumerates all C(N, order) node subsets directly and
// counts connected ones per canonical pattern. Reference implementation for
// small hypergraphs only.
func bruteForceCounts(t *testing.T, h *hypergraph.Hypergraph, order int) CountTable {
	t.Helper()
	nodes := h.Nodes()
	counts := CountTable{EmptyPattern: 0}

	for _, combo := range combin.Combinations(len(nodes), order) {
		subset := make(hypergraph.Hyperedge, order)
		members := make(map[uint64]bool, order)
		for i, idx := range combo {
			subset[i] = nodes[idx]
			members[nodes[idx]] = true
		}

		induced := inducedEdges(h, subset, members)
		if !coversConnected(induced, order) {
			continue
		}

		index := make(map[uint64]int, order)
		for i, n := range subset {
			index[n] = i
		}
		shape := make([][]int, len(induced))
		for i, e := range induced {
			labels := make([]int, len(e))
			for j, n := range e {
				labels[j] = index[n]
			}
			shape[i] = labels
		}
		counts[Canonicalize(shape, order, nil)]++
	}
	return counts
}

func TestEnumerate_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		numNodes := 6 + rng.Intn(7) // 6..12
		h := hypergraph.New()
		for n := 1; n <= numNodes; n++ {
			h.AddNode(uint64(n))
		}
		numEdges := 4 + rng.Intn(10)
		for i := 0; i < numEdges; i++ {
			size := 2 + rng.Intn(3) // 2..4
			perm := rng.Perm(numNodes)[:size]
			nodes := make([]uint64, size)
			for j, p := range perm {
				nodes[j] = uint64(p + 1)
			}
			if err := h.AddEdge(nodes...); err != nil {
				t.Fatal(err)
			}
		}

		for _, order := range []int{2, 3, 4} {
			got, err := EnumerateMotifs(h, order)
			if err != nil {
				t.Fatalf("trial %d order %d: %v", trial, order, err)
			}
			want := bruteForceCounts(t, h, order)

			if got.Total() != want.Total() {
				t.Errorf("trial %d order %d: Total() = %d, brute force %d",
					trial, order, got.Total(), want.Total())
			}
			for p, c := range want {
				if got[p] != c {
					t.Errorf("trial %d order %d pattern %q: count %d, brute force %d",
						trial, order, p, got[p], c)
				}
			}
			for p, c := range got {
				if c != 0 && want[p] != c {
					t.Errorf("trial %d order %d pattern %q: extra count %d", trial, order, p, c)
				}
			}
		}
	}
}
