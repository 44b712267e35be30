package pool

import "errors"

var (
	// ErrBadCapacity indicates a non-positive pool capacity.
	ErrBadCapacity = errors.New("pool: capacity must be positive")

	// ErrClosed indicates an operation on a pool after Close.
	ErrClosed = errors.New("pool: pool is closed")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("pool: size must be non-negative")

	// ErrPoolFull indicates the request would push total allocated bytes past
	// the capacity. This is the fast budget check; no scan was performed.
	ErrPoolFull = errors.New("pool: allocation exceeds remaining capacity")

	// ErrNoSpace indicates enough total bytes are free but no contiguous run
	// is long enough (fragmentation).
	ErrNoSpace = errors.New("pool: no free run large enough")

	// ErrBadRef indicates a ref outside the arena or not an allocation start.
	ErrBadRef = errors.New("pool: bad allocation ref")

	// ErrNotLive indicates a ref whose first byte is not allocated, typically
	// a double free.
	ErrNotLive = errors.New("pool: ref is not a live allocation")

	// ErrNoExtent indicates an occupied start byte with no recorded extent.
	// The pool clears the trailing occupied run defensively before returning
	// this, so the invariants still hold.
	ErrNoExtent = errors.New("pool: live byte with no recorded extent")
)
