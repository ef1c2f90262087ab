package generation

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/avendramini/hypergraphx/pkg/hypergraph"
)

// RandomHypergraph builds a uniform random hypergraph over nodes 1..numNodes
// with a prescribed edge-size histogram: edgesBySize[s] hyperedges of size s,
// each drawn uniformly among the size-s node subsets. Sizes are generated in
// ascending order so a seeded rng reproduces the same hypergraph.
func RandomHypergraph(numNodes int, edgesBySize map[int]int, rng *rand.Rand) (*hypergraph.Hypergraph, error) {
	if numNodes < 1 {
		return nil, fmt.Errorf("need at least 1 node, got %d", numNodes)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sizes := make([]int, 0, len(edgesBySize))
	for s := range edgesBySize {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)

	h := hypergraph.New()
	for n := 1; n <= numNodes; n++ {
		h.AddNode(uint64(n))
	}

	for _, size := range sizes {
		if size < 1 || size > numNodes {
			return nil, fmt.Errorf("edge size %d out of range for %d nodes", size, numNodes)
		}
		for k := 0; k < edgesBySize[size]; k++ {
			perm := rng.Perm(numNodes)[:size]
			nodes := make([]uint64, size)
			for i, p := range perm {
				nodes[i] = uint64(p + 1)
			}
			if err := h.AddEdge(nodes...); err != nil {
				return nil, err
			}
		}
	}
	return h, nil
}
