package pools

import (
	"sync"
)

// Size classes for pooled node-ID slices. Frontier scratch during subset
// growth is small for typical hypergraphs; anything above the largest class
// is allocated directly.
var uint64Classes = [...]int{16, 64, 256}

// Uint64Pool pools node-ID slices across the enumeration hot loop.
type Uint64Pool struct {
	classes [len(uint64Classes)]sync.Pool
}

// NewUint64Pool creates a pool with one sync.Pool per size class.
func NewUint64Pool() *Uint64Pool {
	p := &Uint64Pool{}
	for i, capacity := range uint64Classes {
		capacity := capacity
		p.classes[i].New = func() any {
			s := make([]uint64, 0, capacity)
			return &s
		}
	}
	return p
}

func classFor(size int) int {
	for i, capacity := range uint64Classes {
		if size <= capacity {
			return i
		}
	}
	return -1
}

// Get returns an empty slice with at least the requested capacity.
func (p *Uint64Pool) Get(size int) []uint64 {
	i := classFor(size)
	if i < 0 {
		return make([]uint64, 0, size)
	}
	sp, ok := p.classes[i].Get().(*[]uint64)
	if !ok || cap(*sp) < size {
		return make([]uint64, 0, size)
	}
	return (*sp)[:0]
}

// Put returns a slice to its size class. Slices above the largest class are
// dropped for the garbage collector.
func (p *Uint64Pool) Put(s []uint64) {
	i := classFor(cap(s))
	if i < 0 {
		return
	}
	s = s[:0]
	p.classes[i].Put(&s)
}

var defaultUint64Pool = NewUint64Pool()

// GetUint64s returns a slice from the shared pool.
func GetUint64s(size int) []uint64 {
	return defaultUint64Pool.Get(size)
}

// PutUint64s returns a slice to the shared pool.
func PutUint64s(s []uint64) {
	defaultUint64Pool.Put(s)
}
