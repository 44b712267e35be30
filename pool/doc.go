// Package pool implements a fixed-capacity memory pool allocator.
//
// # Overview
//
// A Pool carves one contiguous byte range, reserved once at construction,
// into variable-length allocations and reclaims them on demand. The platform
// allocator is never consulted again until Close. This gives bounded,
// deterministic, inspectable allocation behavior: the same operation sequence
// against the same pool state always produces the same offsets.
//
// # Core operations
//
//   - New(capacity): reserve the arena and tracking state
//   - Alloc(size): first-fit allocation, byte granularity
//   - Free(ref): release an allocation; adjacent free ranges coalesce
//   - Resize(ref, n): shrink in place, grow in place, or relocate
//   - Close(): release the arena back to the platform
//
// # Data model
//
// The pool tracks three co-indexed regions of equal logical length:
//
//	arena      raw bytes handed out to callers
//	occupancy  one flag per byte, true while the byte is allocated
//	extent     allocation length, recorded at each allocation's first byte
//
// A Ref is an offset into the arena. It stays valid from the Alloc or Resize
// call that produced it until the Free, Resize, or Close that invalidates it.
// The pool retains ownership of the bytes and reuses them after Free.
//
// # Allocation strategy
//
// Alloc walks byte offsets in increasing order and takes the first run of
// free bytes long enough for the request. Ties break toward the earliest
// offset, so repeated identical request patterns are fully deterministic.
// A request that would push the total allocated bytes past the capacity is
// rejected before any scan.
//
// Free clears exactly the bytes recorded in the extent map. Coalescing falls
// out of the occupancy map: a later scan sees adjacent freed ranges as one
// run, with no boundary bookkeeping to merge.
//
// # Failure model
//
// Construction failure (non-positive capacity, arena reservation failure) is
// unrecoverable for the caller; there is no degraded mode. Everything else is
// ordinary control flow: ErrPoolFull and ErrNoSpace from Alloc and Resize
// leave the pool untouched, as do ErrBadRef and ErrNotLive from Free.
//
// # Thread safety
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally; the design assumes one logical owner for the pool's lifetime.
//
// # Related packages
//
//   - github.com/joshuapare/poolkit/pool/trace: operation journaling
//   - github.com/joshuapare/poolkit/pool/printer: occupancy map rendering
//   - github.com/joshuapare/poolkit/list: a linked list built on the pool
package pool
