package bitvec

import (
	"sync"
	"sync/atomic"
)

// Pool is a type-safe wrapper around sync.Pool, specialized for managing
// *Set instances of a fixed bit length.
//
// It efficiently reuses Set memory and tracks statistics on allocations and
// active use for debugging and performance tuning.
type Pool struct {
	sync.Pool
	n int

	// TODO: remove once the memory-discipline invariant (popcount(NC) +
	// sum popcount(cap_j) == N) has a dedicated property test.
	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// NewPool creates a pool of Sets of length n. Every Set handed out by Get
// and returned via Put has this length.
func NewPool(n int) *Pool {
	p := &Pool{n: n}
	p.New = func() any {
		p.totalAllocated.Add(1)
		return New(p.n)
	}
	return p
}

// Get retrieves a zeroed *Set of the pool's length, allocating a new one
// only if the pool is empty.
func (p *Pool) Get() *Set {
	if p == nil {
		return New(0)
	}
	p.currentLive.Add(1)
	s := p.Pool.Get().(*Set)
	s.Reset(p.n)
	return s
}

// Put returns a Set to the pool for reuse. The Set is zeroed on the next
// Get, not here, so Put itself stays cheap.
func (p *Pool) Put(s *Set) {
	if p == nil || s == nil {
		return
	}
	p.currentLive.Add(-1)
	p.Pool.Put(s)
}

// Stats returns the number of currently live (checked-out) Sets and the
// total number ever allocated by this pool.
func (p *Pool) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
