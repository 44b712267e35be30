// Package trace provides recording of pool allocator operations.
//
// The allocator reports every byte range it touches through a Tracer. The
// Recorder implementation keeps an ordered journal of those events so a
// workload's allocation behavior can be audited after the fact; Nop discards
// them for zero-overhead production use.
package trace

// Op identifies the kind of allocator operation being recorded.
type Op uint8

const (
	OpAlloc Op = iota + 1
	OpFree
	OpGrow   // in-place resize growth
	OpShrink // in-place resize shrink
	OpMove   // resize relocation (alloc+copy+free)
)

// String returns the lowercase operation name.
func (op Op) String() string {
	switch op {
	case OpAlloc:
		return "alloc"
	case OpFree:
		return "free"
	case OpGrow:
		return "grow"
	case OpShrink:
		return "shrink"
	case OpMove:
		return "move"
	default:
		return "unknown"
	}
}

// Entry is a single recorded allocator event.
type Entry struct {
	Op   Op
	Off  int // Arena offset the operation touched
	Size int // Number of bytes involved
}

// defaultEntryCapacity is the pre-allocated journal capacity.
// This keeps short workloads allocation-free.
const defaultEntryCapacity = 64

// Recorder accumulates allocator events in order.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Recorder struct {
	entries []Entry
	counts  [OpMove + 1]int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		entries: make([]Entry, 0, defaultEntryCapacity),
	}
}

// Record appends one event to the journal.
func (r *Recorder) Record(op Op, off, size int) {
	r.entries = append(r.entries, Entry{Op: op, Off: off, Size: size})
	if op <= OpMove {
		r.counts[op]++
	}
}

// Entries returns the recorded events in operation order.
// The returned slice aliases the journal; callers must not mutate it.
func (r *Recorder) Entries() []Entry {
	return r.entries
}

// Count returns how many events of the given kind were recorded.
func (r *Recorder) Count(op Op) int {
	if op > OpMove {
		return 0
	}
	return r.counts[op]
}

// Len returns the total number of recorded events.
func (r *Recorder) Len() int { return len(r.entries) }

// Reset clears the journal, retaining capacity.
func (r *Recorder) Reset() {
	r.entries = r.entries[:0]
	r.counts = [OpMove + 1]int{}
}
