package pool

import (
	"fmt"
	"os"

	"github.com/joshuapare/poolkit/pool/trace"
)

// Alloc reserves size contiguous bytes and returns the allocation's ref plus
// its payload window into the arena.
//
// size == 0 returns ZeroRef with a nil window: a valid placeholder that holds
// no capacity. A request that would push the total allocated bytes past the
// capacity is rejected with ErrPoolFull before any scan. Otherwise the
// allocator walks byte offsets in increasing order and takes the first free
// run long enough (first-fit); if the free bytes are too fragmented for one
// run, it returns ErrNoSpace with the pool unchanged.
func (p *Pool) Alloc(size int) (Ref, []byte, error) {
	p.stats.AllocCalls++

	if p.arena == nil {
		return NilRef, nil, ErrClosed
	}
	if size < 0 {
		return NilRef, nil, ErrBadSize
	}
	if size == 0 {
		p.stats.ZeroAllocs++
		return ZeroRef, nil, nil
	}

	// Fast global-budget check, independent of fragmentation.
	if p.used+size > p.capacity {
		p.stats.BudgetRejects++
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] reject: need=%d used=%d capacity=%d\n",
				size, p.used, p.capacity)
		}
		return NilRef, nil, ErrPoolFull
	}

	// First-fit scan: earliest run of size consecutive free bytes wins.
	run := 0
	for i := 0; i < p.capacity; i++ {
		if p.occupancy[i] {
			run = 0
			continue
		}
		run++
		if run < size {
			continue
		}

		start := i - size + 1
		for j := start; j <= i; j++ {
			p.occupancy[j] = true
		}
		p.extent[start] = int32(size)
		p.used += size
		p.stats.BytesAllocated += int64(size)
		p.tracer.Record(trace.OpAlloc, start, size)

		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] %d bytes at %d (used %d/%d)\n",
				size, start, p.used, p.capacity)
		}
		return Ref(start), p.arena[start : start+size], nil
	}

	// Budget passed but every free run is shorter than the request.
	p.stats.ScanFailures++
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] fragmented: need=%d free=%d\n",
			size, p.capacity-p.used)
	}
	return NilRef, nil, ErrNoSpace
}
