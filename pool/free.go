package pool

import (
	"fmt"
	"os"

	"github.com/joshuapare/poolkit/pool/trace"
)

// Free releases the allocation at ref and returns its bytes to the free
// space. NilRef and ZeroRef are no-ops. An out-of-range ref or a ref whose
// first byte is already free is rejected without mutating the pool, so a
// double free cannot corrupt state.
//
// Coalescing needs no extra bookkeeping here: free runs are defined by the
// occupancy map alone, so a freed range merges with free neighbors the moment
// its flags clear. The accounting in used is decremented exactly once per
// freed byte.
func (p *Pool) Free(ref Ref) error {
	p.stats.FreeCalls++

	if p.arena == nil {
		return ErrClosed
	}
	if ref == NilRef || ref == ZeroRef {
		return nil
	}
	if ref < 0 || int(ref) >= p.capacity {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[FREE] bad ref %d (capacity %d)\n", ref, p.capacity)
		}
		return ErrBadRef
	}

	start := int(ref)
	if !p.occupancy[start] {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[FREE] double free at %d\n", start)
		}
		return ErrNotLive
	}

	length := int(p.extent[start])
	if length == 0 {
		// Occupied byte with no extent marker. Clear the trailing occupied
		// run up to the next recorded extent so the maps agree again.
		cleared := 0
		for i := start; i < p.capacity && p.occupancy[i]; i++ {
			if i > start && p.extent[i] != 0 {
				break
			}
			p.occupancy[i] = false
			cleared++
		}
		p.used -= cleared
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[FREE] missing extent at %d, cleared %d bytes\n",
				start, cleared)
		}
		return ErrNoExtent
	}

	for i := start; i < start+length; i++ {
		p.occupancy[i] = false
	}
	p.extent[start] = 0
	p.used -= length
	p.stats.BytesFreed += int64(length)
	p.tracer.Record(trace.OpFree, start, length)

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[FREE] %d bytes at %d (used %d/%d)\n",
			length, start, p.used, p.capacity)
	}
	return nil
}
