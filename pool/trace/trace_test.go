package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorderKeepsOrder(t *testing.T) {
	rec := NewRecorder()
	rec.Record(OpAlloc, 0, 16)
	rec.Record(OpAlloc, 16, 8)
	rec.Record(OpFree, 0, 16)

	entries := rec.Entries()
	assert.Equal(t, []Entry{
		{Op: OpAlloc, Off: 0, Size: 16},
		{Op: OpAlloc, Off: 16, Size: 8},
		{Op: OpFree, Off: 0, Size: 16},
	}, entries)

	assert.Equal(t, 2, rec.Count(OpAlloc))
	assert.Equal(t, 1, rec.Count(OpFree))
	assert.Equal(t, 0, rec.Count(OpMove))
	assert.Equal(t, 3, rec.Len())
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.Record(OpShrink, 4, 2)
	rec.Reset()

	assert.Zero(t, rec.Len())
	assert.Zero(t, rec.Count(OpShrink))
	assert.Empty(t, rec.Entries())
}

func TestOpString(t *testing.T) {
	cases := map[Op]string{
		OpAlloc:  "alloc",
		OpFree:   "free",
		OpGrow:   "grow",
		OpShrink: "shrink",
		OpMove:   "move",
		Op(99):   "unknown",
	}
	for op, want := range cases {
		assert.Equal(t, want, op.String())
	}
}

func TestNopDiscards(t *testing.T) {
	var tr Tracer = Nop{}
	tr.Record(OpAlloc, 0, 8) // must not panic
}
