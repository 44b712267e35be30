package pool

import (
	"fmt"
	"os"

	"github.com/joshuapare/poolkit/pool/trace"
)

// Runtime debug flag for allocation logging - controlled by POOL_LOG_ALLOC env var.
var logAlloc = os.Getenv("POOL_LOG_ALLOC") != ""

// Ref is a handle for a live allocation: its byte offset into the arena.
type Ref int32

const (
	// NilRef is the failure/null sentinel. It never refers to arena bytes.
	NilRef Ref = -1

	// ZeroRef is the placeholder handle returned for zero-size allocations.
	// It reserves no capacity and never aliases a real allocation's first
	// byte, so freeing it is a no-op.
	ZeroRef Ref = -2
)

// Pool is a fixed-capacity byte arena plus its tracking state.
//
// NOT thread-safe. The pool is unsynchronized mutable state with exactly one
// logical owner.
type Pool struct {
	arena     []byte  // Reserved byte range, len == capacity
	occupancy []bool  // Per-byte allocated flag
	extent    []int32 // Allocation length at each allocation's first byte, 0 elsewhere
	capacity  int
	used      int // Bytes currently allocated; always the count of set occupancy flags

	tracer trace.Tracer
	stats  Stats
}

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithTracer attaches a tracer that receives every allocator operation.
func WithTracer(t trace.Tracer) Option {
	return func(p *Pool) {
		if t != nil {
			p.tracer = t
		}
	}
}

// New reserves an arena of exactly capacity bytes and the two tracking
// regions of the same logical length. All bytes start free.
//
// On unix the arena is an anonymous private mapping; the kernel rounds the
// mapping to page granularity but the logical capacity stays exact. A
// non-positive capacity or a failed reservation returns an error; there is no
// degraded mode, so callers that cannot continue without the pool should
// treat the error as fatal.
func New(capacity int, opts ...Option) (*Pool, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	arena, err := reserveArena(capacity)
	if err != nil {
		return nil, fmt.Errorf("pool: arena reservation failed: %w", err)
	}

	p := &Pool{
		arena:     arena,
		occupancy: make([]bool, capacity),
		extent:    make([]int32, capacity),
		capacity:  capacity,
		tracer:    trace.Nop{},
	}
	for _, opt := range opts {
		opt(p)
	}

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[POOL] initialized %d byte pool\n", capacity)
	}
	return p, nil
}

// Close releases the arena back to the platform and drops the tracking
// regions. Every previously issued Ref is invalid afterwards. Close is
// idempotent; operations on a closed pool return ErrClosed.
func (p *Pool) Close() error {
	if p.arena == nil {
		return nil
	}
	err := releaseArena(p.arena)
	p.arena = nil
	p.occupancy = nil
	p.extent = nil
	p.capacity = 0
	p.used = 0
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[POOL] pool deinitialized\n")
	}
	return err
}

// Capacity returns the total byte length of the arena, 0 after Close.
func (p *Pool) Capacity() int { return p.capacity }

// Used returns the number of bytes currently allocated.
func (p *Pool) Used() int { return p.used }

// Available returns the remaining allocation budget. A single allocation of
// this size may still fail when the free bytes are fragmented.
func (p *Pool) Available() int { return p.capacity - p.used }

// Live reports whether ref is the start of a live allocation.
func (p *Pool) Live(ref Ref) bool {
	if p.arena == nil || ref < 0 || int(ref) >= p.capacity {
		return false
	}
	return p.occupancy[ref] && p.extent[ref] > 0
}

// SizeOf returns the length of the live allocation at ref, or 0 if ref is
// not a live allocation's start byte.
func (p *Pool) SizeOf(ref Ref) int {
	if !p.Live(ref) {
		return 0
	}
	return int(p.extent[ref])
}

// Bytes re-resolves a live allocation and returns its payload window.
// The window aliases the arena and is invalidated by Free, Resize and Close.
func (p *Pool) Bytes(ref Ref) ([]byte, error) {
	if p.arena == nil {
		return nil, ErrClosed
	}
	if ref == ZeroRef {
		return nil, nil // zero-size placeholder owns no bytes
	}
	if ref < 0 || int(ref) >= p.capacity {
		return nil, ErrBadRef
	}
	if !p.occupancy[ref] || p.extent[ref] == 0 {
		return nil, ErrNotLive
	}
	start := int(ref)
	return p.arena[start : start+int(p.extent[ref])], nil
}

// Extent describes one live allocation.
type Extent struct {
	Off int `json:"off"`
	Len int `json:"len"`
}

// Extents returns every live allocation in offset order.
func (p *Pool) Extents() []Extent {
	var out []Extent
	for i := 0; i < p.capacity; i++ {
		if n := p.extent[i]; n > 0 {
			out = append(out, Extent{Off: i, Len: int(n)})
		}
	}
	return out
}

// Stats returns a copy of the allocator counters.
func (p *Pool) Stats() Stats { return p.stats }
