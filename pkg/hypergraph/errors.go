package hypergraph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrEmptyHyperedge   = errors.New("hyperedge has no nodes")
	ErrDuplicateNode    = errors.New("duplicate node in hyperedge")
	ErrUnknownNode      = errors.New("node not in node set")
	ErrEdgeOutOfRange   = errors.New("hyperedge index out of range")
	ErrSizeNotPreserved = errors.New("hyperedge size not preserved")
)

// HypergraphError provides structured error information for hypergraph
// operations.
type HypergraphError struct {
	Op      string // Operation that failed (e.g., "AddEdge", "ReplaceEdge")
	Entity  string // Entity type ("node" or "hyperedge")
	ID      int64  // Node ID or hyperedge index; -1 when not applicable
	Cause   error  // Underlying error
	Context string // Additional context
}

// Error implements the error interface.
func (e *HypergraphError) Error() string {
	if e.ID >= 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *HypergraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *HypergraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building HypergraphErrors.
type ErrorBuilder struct {
	err HypergraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: HypergraphError{Op: op, ID: -1}}
}

// Node sets the entity to "node" with the given ID.
func (b *ErrorBuilder) Node(id uint64) *ErrorBuilder {
	b.err.Entity = "node"
	b.err.ID = int64(id)
	return b
}

// Hyperedge sets the entity to "hyperedge" with the given index.
func (b *ErrorBuilder) Hyperedge(index int) *ErrorBuilder {
	b.err.Entity = "hyperedge"
	b.err.ID = int64(index)
	return b
}

// Context adds additional context to the error.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// Cause sets the underlying error.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error.
func (b *ErrorBuilder) Build() error {
	return &b.err
}
