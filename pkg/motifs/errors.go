package motifs

import "errors"

// Common sentinel errors
var (
	// ErrInvalidOrder is returned when the requested motif order is below 2
	// or exceeds the hypergraph's node count.
	ErrInvalidOrder = errors.New("invalid motif order")

	// ErrInvalidRuns is returned when a negative configuration-model run
	// count is requested.
	ErrInvalidRuns = errors.New("invalid configuration model run count")
)
