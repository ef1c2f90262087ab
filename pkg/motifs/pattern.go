package motifs

import (
	"sort"
	"strconv"
	"strings"
)

// PatternKey is the canonical representative of a motif isomorphism class.
// It encodes the canonical hyperedge set on the label alphabet {1..k}: each
// hyperedge is its labels joined by ',', hyperedges are joined by '|' in
// lexicographic order, e.g. "1,2|1,2,3|1,3|2,3" for the fully closed
// order-3 pattern. Keys are
// comparable with == and sortable, so they serve directly as count-table
// keys.
type PatternKey string

// EmptyPattern is the degenerate pattern with no hyperedges. Connectivity-
// based discovery never emits it; it is pre-registered as a baseline key so
// observed and null tables always share a fixed reference point.
const EmptyPattern PatternKey = ""

// NumEdges returns the number of hyperedges in the pattern.
func (p PatternKey) NumEdges() int {
	if p == "" {
		return 0
	}
	return strings.Count(string(p), "|") + 1
}

// Less defines the canonical output ordering: fewer hyperedges first, then
// lexicographic on the encoded key.
func (p PatternKey) Less(other PatternKey) bool {
	a, b := p.NumEdges(), other.NumEdges()
	if a != b {
		return a < b
	}
	return p < other
}

// Edges decodes the pattern back into its hyperedges on {1..k}.
func (p PatternKey) Edges() [][]int {
	if p == "" {
		return nil
	}
	parts := strings.Split(string(p), "|")
	out := make([][]int, len(parts))
	for i, part := range parts {
		labels := strings.Split(part, ",")
		edge := make([]int, len(labels))
		for j, l := range labels {
			n, _ := strconv.Atoi(l)
			edge[j] = n
		}
		out[i] = edge
	}
	return out
}

// String implements fmt.Stringer.
func (p PatternKey) String() string {
	if p == "" {
		return "(empty)"
	}
	return string(p)
}

// encodePattern serializes a sorted edge list on labels 0..k-1 into a
// PatternKey, shifting labels to the 1-based alphabet.
func encodePattern(edges [][]int) PatternKey {
	if len(edges) == 0 {
		return EmptyPattern
	}
	var b strings.Builder
	for i, e := range edges {
		if i > 0 {
			b.WriteByte('|')
		}
		for j, v := range e {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(v + 1))
		}
	}
	return PatternKey(b.String())
}

// SortPatterns orders keys by the canonical ordering (edge count, then
// lexicographic), in place.
func SortPatterns(keys []PatternKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}
