package slotmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGrowOnLoad pins the load-ceiling boundary of §4.4/I3: class 0 holds
// 8 slots, and the controller must not let live exceed floor(0.8*8) = 6
// before triggering a grow-rebuild to class 1.
func TestGrowOnLoad(t *testing.T) {
	m := New[int, int]()

	for i := 0; i < 6; i++ {
		require.NoError(t, m.Put(i, i))
	}
	require.Equal(t, 0, m.ctrl.class)
	require.Equal(t, 8, m.Capacity())

	// The 7th insert must breach the ceiling and grow before inserting.
	require.NoError(t, m.Put(6, 6))
	require.Equal(t, 1, m.ctrl.class)
	require.Equal(t, 16, m.Capacity())

	for i := 0; i < 7; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

// TestRebuildInPlaceDropsOneClass pins the §9 Open Question 1 decision: a
// tombstone-saturation rebuild decrements the capacity class by one
// (saturating at zero, and never below what the live set needs) before
// resizing.
//
// It uses an identity hash so each key's home index is deterministic
// (key & mask), which lets the test place tombstones at chosen slots
// without depending on the default hasher's seed.
func TestRebuildInPlaceDropsOneClass(t *testing.T) {
	identity := func(k int) uint64 { return uint64(k) }

	m := New[int, int](WithHashFunc[int, int](identity))
	require.NoError(t, m.EnsureCapacity(13))
	require.Equal(t, 2, m.ctrl.class)
	require.Equal(t, 32, m.Capacity())

	// Occupy home indices 0-4, leaving 5-31 free.
	for i := 0; i < 5; i++ {
		require.NoError(t, m.Put(i, i))
	}

	// Insert-then-remove 17 distinct keys whose home indices (5..21) never
	// collide with the live keys (0..4) or each other, so each cycle leaves
	// exactly one permanent tombstone: tombstones climbs to 17, which
	// breaches the length/2 = 16 threshold (32/2) without ever touching the
	// load ceiling (live stays at 5 throughout).
	for i := 5; i < 22; i++ {
		require.NoError(t, m.Put(i, i))
		require.True(t, m.Remove(i))
	}
	require.Equal(t, uint64(17), m.ctrl.tombstones)

	// This insert finds tombstones*2 > length and rebuilds in place,
	// dropping the class by one (2 -> 1): the live set (5, about to become
	// 6) needs only class 0's headroom, but the decrement is capped at one
	// class per rebuild, so it lands on 1, not the lower floor.
	require.NoError(t, m.Put(9999, 9999))

	require.Equal(t, 1, m.ctrl.class)
	require.Equal(t, 16, m.Capacity())
	require.Equal(t, uint64(0), m.ctrl.tombstones)

	for i := 0; i < 5; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}

	v, ok := m.Get(9999)
	require.True(t, ok)
	require.Equal(t, 9999, v)
}

func TestEnsureCapacityNoFurtherRebuild(t *testing.T) {
	m := New[int, int]()
	require.NoError(t, m.EnsureCapacity(1000))

	capacityAfterEnsure := m.Capacity()

	for i := 0; i < 1000; i++ {
		require.NoError(t, m.Put(i, i))
	}

	require.Equal(t, capacityAfterEnsure, m.Capacity())
}

func TestReduceMemoryNoOpWhenAboveThreshold(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 6; i++ {
		require.NoError(t, m.Put(i, i))
	}
	before := m.Capacity()
	require.NoError(t, m.ReduceMemory())
	require.Equal(t, before, m.Capacity())
}
