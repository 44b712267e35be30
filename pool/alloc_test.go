package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocFirstFitOffsets(t *testing.T) {
	p := newTestPool(t, 64)

	assert.Equal(t, Ref(0), mustAlloc(t, p, 16))
	assert.Equal(t, Ref(16), mustAlloc(t, p, 8))
	assert.Equal(t, Ref(24), mustAlloc(t, p, 1))
	assert.Equal(t, 25, p.Used())
	validatePoolInvariants(t, p)
}

func TestAllocZeroSize(t *testing.T) {
	p := newTestPool(t, 16)

	ref, buf, err := p.Alloc(0)
	require.NoError(t, err)
	assert.Equal(t, ZeroRef, ref)
	assert.Nil(t, buf)
	assert.Equal(t, 0, p.Used(), "placeholder must reserve no capacity")

	// The placeholder never aliases a real allocation's first byte.
	real := mustAlloc(t, p, 4)
	assert.NotEqual(t, ref, real)
	validatePoolInvariants(t, p)

	// Freeing it is a no-op.
	require.NoError(t, p.Free(ref))
	assert.Equal(t, 4, p.Used())
}

func TestAllocNegativeSize(t *testing.T) {
	p := newTestPool(t, 16)

	_, _, err := p.Alloc(-1)
	assert.ErrorIs(t, err, ErrBadSize)
	validatePoolInvariants(t, p)
}

func TestAllocBudgetRejectBeforeScan(t *testing.T) {
	p := newTestPool(t, 16)
	mustAlloc(t, p, 12)

	_, _, err := p.Alloc(5)
	require.ErrorIs(t, err, ErrPoolFull)
	assert.Equal(t, 1, p.Stats().BudgetRejects)
	assert.Zero(t, p.Stats().ScanFailures, "budget rejection must not scan")
	assert.Equal(t, 12, p.Used(), "failed alloc must not mutate state")
	validatePoolInvariants(t, p)
}

func TestAllocFragmentationFailure(t *testing.T) {
	p := newTestPool(t, 16)

	a := mustAlloc(t, p, 4) // [0,4)
	mustAlloc(t, p, 4)      // [4,8)
	c := mustAlloc(t, p, 4) // [8,12)
	mustAlloc(t, p, 4)      // [12,16)
	require.NoError(t, p.Free(a))
	require.NoError(t, p.Free(c))

	// 8 bytes free in total, but split into two 4-byte holes.
	_, _, err := p.Alloc(8)
	require.ErrorIs(t, err, ErrNoSpace)
	assert.Equal(t, 1, p.Stats().ScanFailures)
	assert.Equal(t, 8, p.Used())
	validatePoolInvariants(t, p)

	// Each hole is still individually allocatable.
	assert.Equal(t, Ref(0), mustAlloc(t, p, 4))
	assert.Equal(t, Ref(8), mustAlloc(t, p, 4))
}

func TestAllocScansPastFragmentedFront(t *testing.T) {
	// init(16); alloc(4)->0; alloc(4)->4; free(0); alloc(2)->0;
	// alloc(6) must find offset 8, not fail.
	p := newTestPool(t, 16)

	a := mustAlloc(t, p, 4)
	assert.Equal(t, Ref(0), a)
	b := mustAlloc(t, p, 4)
	assert.Equal(t, Ref(4), b)

	require.NoError(t, p.Free(a))

	c := mustAlloc(t, p, 2)
	assert.Equal(t, Ref(0), c, "first-fit must reuse the freed hole")

	d := mustAlloc(t, p, 6)
	assert.Equal(t, Ref(8), d, "scan must skip the 2-byte hole at offset 2")

	assert.Equal(t, "1100111111111100", p.AllocationMap())
	validatePoolInvariants(t, p)
}

func TestAllocWholePool(t *testing.T) {
	p := newTestPool(t, 32)

	ref := mustAlloc(t, p, 32)
	assert.Equal(t, Ref(0), ref)
	assert.Equal(t, 32, p.Used())

	_, _, err := p.Alloc(1)
	require.ErrorIs(t, err, ErrPoolFull)
	assert.Equal(t, 32, p.Used(), "failed alloc must not mutate state")
	validatePoolInvariants(t, p)
}

func TestAllocStats(t *testing.T) {
	p := newTestPool(t, 16)

	mustAlloc(t, p, 4)
	_, _, _ = p.Alloc(0)
	_, _, err := p.Alloc(100)
	require.Error(t, err)

	s := p.Stats()
	assert.Equal(t, 3, s.AllocCalls)
	assert.Equal(t, 1, s.ZeroAllocs)
	assert.Equal(t, int64(4), s.BytesAllocated)
	assert.Equal(t, 1, s.BudgetRejects)
}
