package motifs

import (
	"fmt"
	"sort"
	"time"

	"github.com/avendramini/hypergraphx/pkg/hypergraph"
	"github.com/avendramini/hypergraphx/pkg/logging"
	"github.com/avendramini/hypergraphx/pkg/metrics"
	"github.com/avendramini/hypergraphx/pkg/pools"
)

// DefaultProgressEvery is the default number of processed subsets between
// progress notifications.
const DefaultProgressEvery = 10000

// Enumerator counts motif instances of a fixed order. The zero value is
// ready to use; all fields are optional.
type Enumerator struct {
	// Cache memoizes canonicalization per edge-set shape. Shared caches are
	// safe across concurrent enumerations.
	Cache *CanonicalCache
	// Progress, when set, receives periodic notifications. Never affects
	// results.
	Progress ProgressSink
	// ProgressEvery overrides the notification interval (processed subsets).
	ProgressEvery int
	// Logger, when set, receives a summary entry per enumeration.
	Logger logging.Logger
	// Metrics, when set, records enumeration counters and durations.
	Metrics *metrics.Registry
}

// EnumerateMotifs counts every connected motif instance of the given order
// with default settings. See Enumerator.Enumerate.
func EnumerateMotifs(h *hypergraph.Hypergraph, order int) (CountTable, error) {
	return (&Enumerator{}).Enumerate(h, order)
}

// Enumerate walks all connected node subsets of exactly `order` nodes and
// returns per-pattern instance counts. Candidate subsets are grown
// incrementally from within-hyperedge node pairs via incidence, never by
// brute-forcing all C(N, order) combinations. Each distinct subset is
// visited once; its induced sub-hypergraph is canonicalized and counted when
// connected. The empty baseline pattern is always present with count >= 0.
func (en *Enumerator) Enumerate(h *hypergraph.Hypergraph, order int) (CountTable, error) {
	start := time.Now()
	if order < 2 {
		return nil, fmt.Errorf("%w: order %d is below 2", ErrInvalidOrder, order)
	}
	if order > h.NumNodes() {
		return nil, fmt.Errorf("%w: order %d exceeds node count %d", ErrInvalidOrder, order, h.NumNodes())
	}

	every := en.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	counts := CountTable{EmptyPattern: 0}
	seen := make(map[string]bool)
	var stack []hypergraph.Hyperedge

	// Seed with every node pair contained in a hyperedge. Every connected
	// subset's induced edges are restrictions of original hyperedges, so the
	// subset holds at least one within-edge pair and incidence growth from
	// that pair reaches it. Seeding whole edges instead would miss subsets
	// whose induced edges are restrictions only.
	push := func(s hypergraph.Hyperedge) {
		key := s.Key()
		if !seen[key] {
			seen[key] = true
			stack = append(stack, s)
		}
	}
	for _, e := range h.Edges() {
		for i := 0; i < e.Size(); i++ {
			for j := i + 1; j < e.Size(); j++ {
				push(hypergraph.Hyperedge{e[i], e[j]})
			}
		}
	}

	processed := 0
	for len(stack) > 0 {
		subset := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(subset) == order {
			if en.countSubset(h, subset, order, counts) {
				processed++
				if processed%every == 0 {
					progressf(en.Progress, "motif enumeration: %d subsets processed", processed)
				}
			}
			continue
		}

		for _, next := range en.frontier(h, subset) {
			grown := insertSorted(subset, next)
			key := grown.Key()
			if !seen[key] {
				seen[key] = true
				stack = append(stack, grown)
			}
		}
	}

	if en.Logger != nil {
		en.Logger.Info("motif enumeration complete",
			logging.Component("motifs"),
			logging.Order(order),
			logging.Subsets(counts.Total()),
			logging.Patterns(len(counts)),
			logging.Latency(time.Since(start)))
	}
	if en.Metrics != nil {
		en.Metrics.RecordEnumeration(order, "ok", time.Since(start), counts.Total(), len(counts))
	}
	return counts, nil
}

// frontier collects the nodes adjacent to the subset through incident
// hyperedges, deduplicated and sorted. Gathering goes through a pooled
// scratch slice to keep the hot loop off the allocator.
func (en *Enumerator) frontier(h *hypergraph.Hypergraph, subset hypergraph.Hyperedge) []uint64 {
	scratch := pools.GetUint64s(len(subset) * 8)
	for _, n := range subset {
		for _, pos := range h.IncidentEdges(n) {
			edge, _ := h.Edge(pos)
			for _, m := range edge {
				if !subset.Contains(m) {
					scratch = append(scratch, m)
				}
			}
		}
	}

	sort.Slice(scratch, func(i, j int) bool { return scratch[i] < scratch[j] })
	out := make([]uint64, 0, len(scratch))
	for i, n := range scratch {
		if i == 0 || n != scratch[i-1] {
			out = append(out, n)
		}
	}
	pools.PutUint64s(scratch)
	return out
}

// countSubset canonicalizes the sub-hypergraph induced by a complete subset
// and increments its pattern count. Returns false when the subset is
// rejected as disconnected.
func (en *Enumerator) countSubset(h *hypergraph.Hypergraph, subset hypergraph.Hyperedge, order int, counts CountTable) bool {
	members := make(map[uint64]bool, len(subset))
	for _, n := range subset {
		members[n] = true
	}

	induced := inducedEdges(h, subset, members)
	if !coversConnected(induced, order) {
		return false
	}

	index := make(map[uint64]int, len(subset))
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

	counts[Canonicalize(shape, order, en.Cache)]++
	return true
}

// inducedEdges restricts every hyperedge touching the subset to the subset's
// nodes, keeping restrictions of size >= 2 and dropping duplicates. Size-1
// restrictions carry no connectivity information and are ignored by
// convention.
func inducedEdges(h *hypergraph.Hypergraph, subset hypergraph.Hyperedge, members map[uint64]bool) []hypergraph.Hyperedge {
	var out []hypergraph.Hyperedge
	seen := make(map[string]bool)
	visited := make(map[int]bool)
	for _, n := range subset {
		for _, pos := range h.IncidentEdges(n) {
			if visited[pos] {
				continue
			}
			visited[pos] = true
			edge, _ := h.Edge(pos)
			r := edge.Restrict(members)
			if r.Size() < 2 {
				continue
			}
			key := r.Key()
			if !seen[key] {
				seen[key] = true
				out = append(out, r)
			}
		}
	}
	return out
}

// coversConnected reports whether the induced edges form a single component
// covering all `order` subset nodes. Edges are adjacent when they intersect;
// a BFS from the first edge must reach every node.
func coversConnected(edges []hypergraph.Hyperedge, order int) bool {
	if len(edges) == 0 {
		return false
	}

	visited := make([]bool, len(edges))
	covered := make(map[uint64]bool)
	queue := []int{0}
	visited[0] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range edges[cur] {
			covered[n] = true
		}
		for i, e := range edges {
			if !visited[i] && edges[cur].Intersects(e) {
				visited[i] = true
				queue = append(queue, i)
			}
		}
	}
	return len(covered) == order
}

// insertSorted returns a fresh sorted slice with the node added.
func insertSorted(subset hypergraph.Hyperedge, node uint64) hypergraph.Hyperedge {
	out := make(hypergraph.Hyperedge, 0, len(subset)+1)
	placed := false
	for _, n := range subset {
		if !placed && node < n {
			out = append(out, node)
			placed = true
		}
		out = append(out, n)
	}
	if !placed {
		out = append(out, node)
	}
	return out
}
