package slotmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// P6: the iterator visits each live entry exactly once, in some order, and
// never visits a removed or never-inserted key.
func TestIteratorVisitsEachLiveEntryOnce(t *testing.T) {
	m := New[int, int]()
	want := map[int]int{}
	for i := 0; i < 50; i++ {
		require.NoError(t, m.Put(i, i*i))
		want[i] = i * i
	}
	for i := 0; i < 50; i += 3 {
		require.True(t, m.Remove(i))
		delete(want, i)
	}

	got := map[int]int{}
	it := m.Iter()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		if _, dup := got[k]; dup {
			t.Fatalf("key %d visited more than once", k)
		}
		got[k] = v
	}

	assert.Equal(t, want, got)
}

func TestIteratorResetRevisits(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, m.Put(i, i))
	}

	it := m.Iter()
	count := 0
	for {
		_, _, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, 5, count)

	it.Reset()
	count = 0
	for {
		_, _, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 5, count)
}

func TestEmptyMapIteratorYieldsNothing(t *testing.T) {
	m := New[string, string]()
	it := m.Iter()
	_, _, ok := it.Next()
	assert.False(t, ok)
}

func TestAllRangeOverFunc(t *testing.T) {
	m := New[int, string]()
	want := map[int]string{1: "a", 2: "b", 3: "c"}
	for k, v := range want {
		require.NoError(t, m.Put(k, v))
	}

	got := map[int]string{}
	for k, v := range m.All() {
		got[k] = v
	}
	assert.Equal(t, want, got)
}

func TestAllRangeOverFuncEarlyBreak(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 20; i++ {
		require.NoError(t, m.Put(i, i))
	}

	seen := 0
	for range m.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}
