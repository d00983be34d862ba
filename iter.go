package slotmap

// Iterator is a stateful cursor over a Map's live entries. Iteration order
// is arbitrary and unstable across mutations (§1 Non-goals).
//
// Any mutation on the owning Map that may resize the table (Put,
// PutNoClobber, GetOrInsert, FetchPut, EnsureCapacity, ReduceMemory,
// ClearAndRelease) invalidates every Iterator obtained before the call;
// using one afterward is undefined. Update, Remove, FetchRemove, and
// ClearRetainCapacity do not invalidate iterators.
type Iterator[K comparable, V any] struct {
	m     *Map[K, V]
	index uint64
}

// Iter returns a new Iterator positioned before the first live slot.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

// Reset repositions the iterator before the first live slot.
func (it *Iterator[K, V]) Reset() {
	it.index = 0
}

// Next advances to the next live slot, skipping empty and tombstone slots,
// and returns its key and value. ok is false once the array is exhausted.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	length := it.m.arr.length()
	for it.index < length {
		s := it.m.arr.at(it.index)
		it.index++
		if s.tag == tagLive {
			return s.key, s.value, true
		}
	}
	var zeroK K
	return zeroK, it.m.zeroV, false
}

// All returns a range-over-func iterator suitable for `for k, v := range
// m.All() { ... }`, consuming a fresh Iterator under the hood. The same
// invalidation rules documented on Iterator apply.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for {
			k, v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}
