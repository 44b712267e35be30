package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestPool creates a pool and closes it when the test ends.
func newTestPool(t *testing.T, capacity int) *Pool {
	t.Helper()
	p, err := New(capacity)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// validatePoolInvariants checks the pool's core invariants:
//  1. every live allocation's bytes are occupied, and only those bytes
//  2. extent entries exist only at allocation start bytes
//  3. used equals the sum of live allocation lengths
//  4. no two live allocations overlap
//  5. 0 <= used <= capacity
func validatePoolInvariants(t *testing.T, p *Pool) {
	t.Helper()

	occupied := 0
	for _, flag := range p.occupancy {
		if flag {
			occupied++
		}
	}
	require.Equal(t, occupied, p.used, "used must equal count of occupied bytes")

	sum := 0
	covered := make([]bool, p.capacity)
	for i := 0; i < p.capacity; i++ {
		n := int(p.extent[i])
		if n == 0 {
			continue
		}
		sum += n
		require.LessOrEqual(t, i+n, p.capacity, "extent at %d overruns the arena", i)
		for j := i; j < i+n; j++ {
			require.True(t, p.occupancy[j], "byte %d of allocation at %d must be occupied", j, i)
			require.False(t, covered[j], "allocations at byte %d overlap", j)
			covered[j] = true
		}
		for j := i + 1; j < i+n; j++ {
			require.Zero(t, p.extent[j], "extent marker inside allocation at %d", i)
		}
	}
	require.Equal(t, sum, p.used, "used must equal sum of live extents")

	for i := 0; i < p.capacity; i++ {
		if p.occupancy[i] {
			require.True(t, covered[i], "occupied byte %d belongs to no allocation", i)
		}
	}

	require.GreaterOrEqual(t, p.used, 0)
	require.LessOrEqual(t, p.used, p.capacity)
}

// mustAlloc allocates or fails the test.
func mustAlloc(t *testing.T, p *Pool, size int) Ref {
	t.Helper()
	ref, _, err := p.Alloc(size)
	require.NoError(t, err)
	return ref
}
