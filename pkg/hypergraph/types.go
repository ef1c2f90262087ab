package hypergraph

import (
	"sort"
	"strconv"
	"strings"
)

// Hyperedge is a single higher-order relation: a set of distinct node IDs,
// stored as a sorted slice. The zero value is an empty (invalid) hyperedge.
type Hyperedge []uint64

// NewHyperedge builds a hyperedge from the given node IDs. The input is
// copied, sorted, and validated: the result is nonempty and duplicate-free.
func NewHyperedge(nodes ...uint64) (Hyperedge, error) {
	if len(nodes) == 0 {
		return nil, NewError("NewHyperedge").Hyperedge(-1).Cause(ErrEmptyHyperedge).Build()
	}

	e := make(Hyperedge, len(nodes))
	copy(e, nodes)
	sort.Slice(e, func(i, j int) bool { return e[i] < e[j] })

	for i := 1; i < len(e); i++ {
		if e[i] == e[i-1] {
			return nil, NewError("NewHyperedge").Node(e[i]).Cause(ErrDuplicateNode).Build()
		}
	}
	return e, nil
}

// Size returns the number of nodes in the hyperedge.
func (e Hyperedge) Size() int {
	return len(e)
}

// Contains reports whether the hyperedge includes the given node.
func (e Hyperedge) Contains(node uint64) bool {
	i := sort.Search(len(e), func(i int) bool { return e[i] >= node })
	return i < len(e) && e[i] == node
}

// Intersects reports whether two hyperedges share at least one node.
// Both slices are sorted, so a single merge walk suffices.
func (e Hyperedge) Intersects(other Hyperedge) bool {
	i, j := 0, 0
	for i < len(e) && j < len(other) {
		switch {
		case e[i] == other[j]:
			return true
		case e[i] < other[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// Restrict returns the hyperedge restricted to the given node subset.
// The result may be empty; it is a fresh slice and remains sorted.
func (e Hyperedge) Restrict(subset map[uint64]bool) Hyperedge {
	var out Hyperedge
	for _, n := range e {
		if subset[n] {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns an independent copy of the hyperedge.
func (e Hyperedge) Clone() Hyperedge {
	out := make(Hyperedge, len(e))
	copy(out, e)
	return out
}

// Key returns a stable string form of the hyperedge, suitable as a map key
// for dedup. Equal hyperedges always produce equal keys.
func (e Hyperedge) Key() string {
	var b strings.Builder
	for i, n := range e {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(n, 10))
	}
	return b.String()
}

// String implements fmt.Stringer.
func (e Hyperedge) String() string {
	return "{" + e.Key() + "}"
}
