package motifs

import (
	"sort"
	"sync"
)

// CanonicalCache memoizes canonicalization results per distinct edge-set
// shape. It is a pure performance layer: Canonicalize produces identical
// results with a nil cache, just slower. Safe for concurrent use, so the
// same cache can be shared across parallel null-model runs.
type CanonicalCache struct {
	mu      sync.Mutex
	entries map[PatternKey]PatternKey // input shape -> canonical key
}

// NewCanonicalCache creates an empty canonicalization cache.
func NewCanonicalCache() *CanonicalCache {
	return &CanonicalCache{entries: make(map[PatternKey]PatternKey)}
}

// Len returns the number of memoized shapes.
func (c *CanonicalCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *CanonicalCache) lookup(shape PatternKey) (PatternKey, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key, ok := c.entries[shape]
	return key, ok
}

func (c *CanonicalCache) store(shape, key PatternKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[shape] = key
}

// Canonicalize maps an induced edge set to its isomorphism-class key. The
// edges are given on subset-index labels 0..k-1, each edge sorted. Every one
// of the k! relabelings is applied; the lexicographically smallest sorted
// edge tuple wins. Deterministic, and invariant under any relabeling of the
// input, which is what makes observed and null-model counts comparable.
//
// cache may be nil.
func Canonicalize(edges [][]int, k int, cache *CanonicalCache) PatternKey {
	if len(edges) == 0 {
		return EmptyPattern
	}

	shape := encodeShape(edges)
	if cache != nil {
		if key, ok := cache.lookup(shape); ok {
			return key
		}
	}

	var best [][]int
	forEachPermutation(k, func(perm []int) {
		mapped := make([][]int, len(edges))
		for i, e := range edges {
			m := make([]int, len(e))
			for j, v := range e {
				m[j] = perm[v]
			}
			sort.Ints(m)
			mapped[i] = m
		}
		sort.Slice(mapped, func(i, j int) bool { return lessEdge(mapped[i], mapped[j]) })
		if best == nil || lessEdgeList(mapped, best) {
			best = mapped
		}
	})

	key := encodePattern(best)
	if cache != nil {
		cache.store(shape, key)
	}
	return key
}

// encodeShape serializes the input edge set in a deterministic order so it
// can serve as a memoization key. Reuses the pattern encoding; the shape key
// is never exposed as a canonical key.
func encodeShape(edges [][]int) PatternKey {
	sorted := make([][]int, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool { return lessEdge(sorted[i], sorted[j]) })
	return encodePattern(sorted)
}

// lessEdge compares two sorted label slices lexicographically.
func lessEdge(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// lessEdgeList compares two sorted edge lists lexicographically.
func lessEdgeList(a, b [][]int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if lessEdge(a[i], b[i]) {
			return true
		}
		if lessEdge(b[i], a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}

// forEachPermutation invokes fn with every permutation of 0..k-1, using
// Heap's algorithm. The slice passed to fn is reused between calls.
func forEachPermutation(k int, fn func([]int)) {
	perm := make([]int, k)
	for i := range perm {
		perm[i] = i
	}

	c := make([]int, k)
	fn(perm)
	i := 0
	for i < k {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			fn(perm)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
