// Package hypergraph provides the in-memory hypergraph structure consumed by
// the motif-analysis engine: a fixed node set, a multiset of hyperedges, and
// an incidence index for fast "edges containing node X" lookups.
package hypergraph

import (
	"fmt"
	"sort"
)

// Hypergraph is a collection of hyperedges over a node set. Duplicate
// hyperedges are allowed (the edge collection is a multiset); each individual
// hyperedge holds distinct nodes. Every node referenced by an edge is
// registered in the node set automatically.
//
// Hypergraph is not safe for concurrent mutation. Concurrent reads are safe
// once construction is complete.
type Hypergraph struct {
	nodes     map[uint64]struct{}
	edges     []Hyperedge
	incidence map[uint64][]int // node -> positions in edges
}

// New creates an empty hypergraph.
func New() *Hypergraph {
	return &Hypergraph{
		nodes:     make(map[uint64]struct{}),
		edges:     make([]Hyperedge, 0),
		incidence: make(map[uint64][]int),
	}
}

// FromEdges builds a hypergraph from raw node-ID slices, one per hyperedge.
func FromEdges(edges [][]uint64) (*Hypergraph, error) {
	h := New()
	for _, e := range edges {
		if err := h.AddEdge(e...); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// AddNode registers a node. Adding an existing node is a no-op, so isolated
// nodes can be declared before (or without) any incident edge.
func (h *Hypergraph) AddNode(id uint64) {
	h.nodes[id] = struct{}{}
}

// AddEdge appends a hyperedge over the given nodes, registering any node not
// yet in the node set.
func (h *Hypergraph) AddEdge(nodes ...uint64) error {
	e, err := NewHyperedge(nodes...)
	if err != nil {
		return err
	}
	pos := len(h.edges)
	h.edges = append(h.edges, e)
	for _, n := range e {
		h.nodes[n] = struct{}{}
		h.incidence[n] = append(h.incidence[n], pos)
	}
	return nil
}

// ReplaceEdge swaps the hyperedge at the given position for a new one of the
// same size over nodes already present in the node set. The incidence index
// is updated; the node set itself never shrinks. Used by randomization, which
// rewires incidence without touching degrees or sizes it doesn't own.
func (h *Hypergraph) ReplaceEdge(index int, nodes ...uint64) error {
	if index < 0 || index >= len(h.edges) {
		return NewError("ReplaceEdge").Hyperedge(index).Cause(ErrEdgeOutOfRange).Build()
	}
	e, err := NewHyperedge(nodes...)
	if err != nil {
		return err
	}
	if e.Size() != h.edges[index].Size() {
		return NewError("ReplaceEdge").Hyperedge(index).
			Context(fmt.Sprintf("size %d -> %d", h.edges[index].Size(), e.Size())).
			Cause(ErrSizeNotPreserved).Build()
	}
	for _, n := range e {
		if _, ok := h.nodes[n]; !ok {
			return NewError("ReplaceEdge").Node(n).Cause(ErrUnknownNode).Build()
		}
	}

	old := h.edges[index]
	for _, n := range old {
		h.incidence[n] = removePosition(h.incidence[n], index)
	}
	h.edges[index] = e
	for _, n := range e {
		h.incidence[n] = append(h.incidence[n], index)
	}
	return nil
}

func removePosition(positions []int, pos int) []int {
	for i, p := range positions {
		if p == pos {
			return append(positions[:i], positions[i+1:]...)
		}
	}
	return positions
}

// NumNodes returns the number of nodes in the node set.
func (h *Hypergraph) NumNodes() int {
	return len(h.nodes)
}

// NumEdges returns the number of hyperedges.
func (h *Hypergraph) NumEdges() int {
	return len(h.edges)
}

// HasNode reports whether the node is in the node set.
func (h *Hypergraph) HasNode(id uint64) bool {
	_, ok := h.nodes[id]
	return ok
}

// Nodes returns the node set in ascending order.
func (h *Hypergraph) Nodes() []uint64 {
	out := make([]uint64, 0, len(h.nodes))
	for n := range h.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Edges returns the hyperedge collection. The returned slice and its
// hyperedges are shared with the hypergraph: callers must treat them as
// read-only (use Clone for a mutable copy).
func (h *Hypergraph) Edges() []Hyperedge {
	return h.edges
}

// Edge returns the hyperedge at the given position.
func (h *Hypergraph) Edge(index int) (Hyperedge, error) {
	if index < 0 || index >= len(h.edges) {
		return nil, NewError("Edge").Hyperedge(index).Cause(ErrEdgeOutOfRange).Build()
	}
	return h.edges[index], nil
}

// IncidentEdges returns the positions of all hyperedges containing the node.
// The returned slice is shared and must be treated as read-only.
func (h *Hypergraph) IncidentEdges(node uint64) []int {
	return h.incidence[node]
}

// Degree returns the number of hyperedges incident to the node.
func (h *Hypergraph) Degree(node uint64) int {
	return len(h.incidence[node])
}

// DegreeSequence returns the sorted degree of every node in the node set,
// including zero-degree isolated nodes.
func (h *Hypergraph) DegreeSequence() []int {
	out := make([]int, 0, len(h.nodes))
	for n := range h.nodes {
		out = append(out, len(h.incidence[n]))
	}
	sort.Ints(out)
	return out
}

// EdgeSizeCounts returns a histogram of hyperedge sizes.
func (h *Hypergraph) EdgeSizeCounts() map[int]int {
	out := make(map[int]int)
	for _, e := range h.edges {
		out[e.Size()]++
	}
	return out
}

// Clone returns a deep copy: mutating the clone (ReplaceEdge during
// randomization) never touches the original.
func (h *Hypergraph) Clone() *Hypergraph {
	out := &Hypergraph{
		nodes:     make(map[uint64]struct{}, len(h.nodes)),
		edges:     make([]Hyperedge, len(h.edges)),
		incidence: make(map[uint64][]int, len(h.incidence)),
	}
	for n := range h.nodes {
		out.nodes[n] = struct{}{}
	}
	for i, e := range h.edges {
		out.edges[i] = e.Clone()
	}
	for n, positions := range h.incidence {
		cp := make([]int, len(positions))
		copy(cp, positions)
		out.incidence[n] = cp
	}
	return out
}

// Summary returns a one-line human-readable description, used in progress
// output.
func (h *Hypergraph) Summary() string {
	minSize, maxSize := 0, 0
	for i, e := range h.edges {
		if i == 0 || e.Size() < minSize {
			minSize = e.Size()
		}
		if e.Size() > maxSize {
			maxSize = e.Size()
		}
	}
	if len(h.edges) == 0 {
		return fmt.Sprintf("hypergraph with %d nodes and no hyperedges", len(h.nodes))
	}
	return fmt.Sprintf("hypergraph with %d nodes and %d hyperedges (sizes %d-%d)",
		len(h.nodes), len(h.edges), minSize, maxSize)
}
