package pool

import (
	"github.com/joshuapare/poolkit/pool/trace"
)

// Resize changes the allocation at ref to newSize bytes and returns the ref
// and payload window of the result.
//
// NilRef and ZeroRef behave like Alloc(newSize); newSize == 0 behaves like
// Free(ref) and returns NilRef. A shrink releases the trailing bytes in
// place. A grow stays in place when the bytes immediately after the
// allocation are free; otherwise the allocation is relocated: a fresh Alloc,
// a copy of the current payload, then a Free of the old range. If that Alloc
// fails, the original allocation is untouched and the failure is returned.
func (p *Pool) Resize(ref Ref, newSize int) (Ref, []byte, error) {
	p.stats.ResizeCalls++

	if p.arena == nil {
		return NilRef, nil, ErrClosed
	}
	if newSize < 0 {
		return NilRef, nil, ErrBadSize
	}
	if ref == NilRef || ref == ZeroRef {
		return p.Alloc(newSize)
	}
	if ref < 0 || int(ref) >= p.capacity {
		return NilRef, nil, ErrBadRef
	}

	start := int(ref)
	if !p.occupancy[start] || p.extent[start] == 0 {
		return NilRef, nil, ErrNotLive
	}
	cur := int(p.extent[start])

	if newSize == 0 {
		if err := p.Free(ref); err != nil {
			return NilRef, nil, err
		}
		return NilRef, nil, nil
	}

	if newSize <= cur {
		for i := start + newSize; i < start+cur; i++ {
			p.occupancy[i] = false
		}
		p.extent[start] = int32(newSize)
		p.used -= cur - newSize
		p.stats.BytesFreed += int64(cur - newSize)
		if newSize < cur {
			p.stats.InPlaceShrinks++
			p.tracer.Record(trace.OpShrink, start, cur-newSize)
		}
		return ref, p.arena[start : start+newSize], nil
	}

	// In-place growth when the tail bytes are free.
	if start+newSize <= p.capacity && p.runFree(start+cur, start+newSize) {
		for i := start + cur; i < start+newSize; i++ {
			p.occupancy[i] = true
		}
		p.extent[start] = int32(newSize)
		p.used += newSize - cur
		p.stats.BytesAllocated += int64(newSize - cur)
		p.stats.InPlaceGrows++
		p.tracer.Record(trace.OpGrow, start, newSize-cur)
		return ref, p.arena[start : start+newSize], nil
	}

	// Relocation path. The old allocation stays live during the search, so a
	// failed Alloc leaves it completely untouched.
	newRef, window, err := p.Alloc(newSize)
	if err != nil {
		return NilRef, nil, err
	}
	copy(window, p.arena[start:start+cur])
	_ = p.Free(ref) // own allocation, validated live above
	p.stats.Relocations++
	p.tracer.Record(trace.OpMove, int(newRef), newSize)
	return newRef, window, nil
}

// runFree reports whether every byte in [from, to) is free.
func (p *Pool) runFree(from, to int) bool {
	for i := from; i < to; i++ {
		if p.occupancy[i] {
			return false
		}
	}
	return true
}
