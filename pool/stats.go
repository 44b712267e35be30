package pool

// Stats holds allocator counters for instrumentation and testing.
type Stats struct {
	AllocCalls  int // Total Alloc() calls
	FreeCalls   int // Total Free() calls
	ResizeCalls int // Total Resize() calls

	BytesAllocated int64 // Total bytes handed out
	BytesFreed     int64 // Total bytes reclaimed

	ZeroAllocs     int // Zero-size allocations (placeholder refs)
	BudgetRejects  int // Allocs rejected by the capacity check, before scanning
	ScanFailures   int // Allocs that scanned and found no run (fragmentation)
	InPlaceGrows   int // Resizes grown without moving
	InPlaceShrinks int // Resizes shrunk in place
	Relocations    int // Resizes that moved the allocation
}
