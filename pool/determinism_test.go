package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocationDeterminism verifies that the same sequence of allocations
// produces identical offsets across multiple runs.
func TestAllocationDeterminism(t *testing.T) {
	sequence := []int{6, 12, 3, 24, 12, 6, 1}

	run := func() []Ref {
		p := newTestPool(t, 128)
		offsets := make([]Ref, len(sequence))
		for i, size := range sequence {
			offsets[i] = mustAlloc(t, p, size)
		}
		return offsets
	}

	assert.Equal(t, run(), run(), "allocations must be deterministic")
}

// TestFirstFitTieBreaking verifies that among equally sized holes the
// earliest offset always wins.
func TestFirstFitTieBreaking(t *testing.T) {
	p := newTestPool(t, 32)

	refs := make([]Ref, 4)
	for i := range refs {
		refs[i] = mustAlloc(t, p, 8)
	}
	require.NoError(t, p.Free(refs[1])) // hole at 8
	require.NoError(t, p.Free(refs[3])) // hole at 24

	got := mustAlloc(t, p, 8)
	assert.Equal(t, refs[1], got, "first-fit takes the earliest hole")
}

// TestFreeThenReallocReuse verifies that freeing a k-byte allocation and
// immediately requesting k bytes returns the same offset.
func TestFreeThenReallocReuse(t *testing.T) {
	p := newTestPool(t, 64)

	mustAlloc(t, p, 8)
	ref := mustAlloc(t, p, 16)
	mustAlloc(t, p, 8)

	require.NoError(t, p.Free(ref))
	again := mustAlloc(t, p, 16)
	assert.Equal(t, ref, again, "first-fit over a single freed hole")
	validatePoolInvariants(t, p)
}

// TestMixedWorkloadDeterminism replays an alloc/free/resize interleaving and
// expects identical handles both times.
func TestMixedWorkloadDeterminism(t *testing.T) {
	run := func() []Ref {
		p := newTestPool(t, 96)
		var got []Ref

		a := mustAlloc(t, p, 10)
		b := mustAlloc(t, p, 20)
		got = append(got, a, b)

		require.NoError(t, p.Free(a))
		c := mustAlloc(t, p, 4)
		got = append(got, c)

		d, _, err := p.Resize(b, 40)
		require.NoError(t, err)
		got = append(got, d)

		e := mustAlloc(t, p, 10)
		got = append(got, e)
		return got
	}

	assert.Equal(t, run(), run())
}
