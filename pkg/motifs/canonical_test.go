package motifs

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCanonicalize_Empty(t *testing.T) {
	if got := Canonicalize(nil, 3, nil); got != EmptyPattern {
		t.Errorf("Canonicalize(nil) = %q, want empty pattern", got)
	}
}

func TestCanonicalize_RelabelingInvariance(t *testing.T) {
	// The same structure under different labelings must share a key.
	tests := []struct {
		name string
		a    [][]int
		b    [][]int
		k    int
	}{
		{
			name: "single pair swapped",
			a:    [][]int{{0, 1}},
			b:    [][]int{{1, 2}},
			k:    3,
		},
		{
			name: "wedge relabeled",
			a:    [][]int{{0, 1}, {1, 2}},
			b:    [][]int{{0, 2}, {0, 1}},
			k:    3,
		},
		{
			name: "closed triad relabeled",
			a:    [][]int{{0, 1}, {0, 2}, {1, 2}, {0, 1, 2}},
			b:    [][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1, 2}},
			k:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka := Canonicalize(tt.a, tt.k, nil)
			kb := Canonicalize(tt.b, tt.k, nil)
			if ka != kb {
				t.Errorf("keys differ: %q vs %q", ka, kb)
			}
		})
	}
}

func TestCanonicalize_DistinctStructures(t *testing.T) {
	wedge := Canonicalize([][]int{{0, 1}, {1, 2}}, 3, nil)
	triangle := Canonicalize([][]int{{0, 1}, {1, 2}, {0, 2}}, 3, nil)
	triadWithFull := Canonicalize([][]int{{0, 1}, {1, 2}, {0, 2}, {0, 1, 2}}, 3, nil)

	if wedge == triangle || triangle == triadWithFull || wedge == triadWithFull {
		t.Errorf("distinct structures collided: %q %q %q", wedge, triangle, triadWithFull)
	}
}

func TestCanonicalize_ClosedTriadKey(t *testing.T) {
	key := Canonicalize([][]int{{0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}, 3, nil)
	if key.NumEdges() != 4 {
		t.Errorf("closed triad key %q has %d edges, want 4", key, key.NumEdges())
	}
}

func TestCanonicalize_CacheEquivalence(t *testing.T) {
	cache := NewCanonicalCache()
	shape := [][]int{{0, 1}, {1, 2}, {0, 1, 2}}

	first := Canonicalize(shape, 3, cache)
	second := Canonicalize(shape, 3, cache)
	uncached := Canonicalize(shape, 3, nil)

	if first != second || first != uncached {
		t.Errorf("cache changed results: %q / %q / %q", first, second, uncached)
	}
	if cache.Len() != 1 {
		t.Errorf("cache.Len() = %d, want 1", cache.Len())
	}
}

// applyPermutation relabels a shape through perm, re-sorting each edge.
func applyPermutation(edges [][]int, perm []int) [][]int {
	out := make([][]int, len(edges))
	for i, e := range edges {
		m := make([]int, len(e))
		for j, v := range e {
			m[j] = perm[v]
		}
		sort.Ints(m)
		out[i] = m
	}
	return out
}

func TestCanonicalize_PermutationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Any relabeling of any random shape yields the identical canonical key.
	properties.Property("canonical key is permutation invariant", prop.ForAll(
		func(seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			k := 3 + rng.Intn(2) // order 3 or 4

			// Random shape: a few distinct edges of size 2..k
			numEdges := 1 + rng.Intn(4)
			seen := map[string]bool{}
			var edges [][]int
			for len(edges) < numEdges {
				size := 2 + rng.Intn(k-1)
				e := rng.Perm(k)[:size]
				sort.Ints(e)
				key := encodeShape([][]int{e})
				if !seen[string(key)] {
					seen[string(key)] = true
					edges = append(edges, e)
				}
			}

			perm := rng.Perm(k)
			return Canonicalize(edges, k, nil) == Canonicalize(applyPermutation(edges, perm), k, nil)
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
