package trace

// Tracer is the minimal interface for observing allocator operations.
// Implementations receive the operation kind plus the arena byte range it
// affected. The allocator calls Record synchronously, so implementations
// must be cheap and must not call back into the pool.
type Tracer interface {
	// Record reports one operation.
	// off is the arena offset, size is the number of bytes.
	Record(op Op, off, size int)
}

// Nop is a Tracer that discards all events.
type Nop struct{}

// Record implements Tracer as a no-op.
func (Nop) Record(Op, int, int) {}
