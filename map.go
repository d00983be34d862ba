package slotmap

// Map is a generic mapping from K to V backed by a single contiguous
// open-addressed slot array. It self-rebuilds on load and on tombstone
// pressure, so that read-heavy and churn-heavy workloads stay near
// constant-time without the caller ever having to call a compaction method
// by hand (ReduceMemory exists for the explicit, "I know better" case).
//
// A Map is single-threaded; concurrent use from more than one goroutine is
// not supported.
type Map[K comparable, V any] struct {
	arr       slotArray[K, V]
	ctrl      controller[K, V]
	hashFunc  HashFunc[K]
	allocator Allocator[K, V]
	zeroV     V
	destroyed bool
}

// Option configures a Map at construction time.
type Option[K comparable, V any] func(m *Map[K, V])

// WithHashFunc overrides the default hash/maphash-backed hasher.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(m *Map[K, V]) {
		m.hashFunc = f
	}
}

// WithAllocator overrides the default GC-backed Allocator.
func WithAllocator[K comparable, V any](a Allocator[K, V]) Option[K, V] {
	return func(m *Map[K, V]) {
		m.allocator = a
	}
}

// New constructs an empty Map at capacity class 0 (8 slots).
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{}

	for _, opt := range opts {
		opt(m)
	}

	if m.hashFunc == nil {
		m.hashFunc = MakeDefaultHashFunc[K]()
	}
	if m.allocator == nil {
		m.allocator = defaultAllocator[K, V]{}
	}

	m.arr = newSlotArray(m.allocator, capacityForClass(0))
	m.ctrl = controller[K, V]{class: 0}

	return m
}

// rebuildAtClass allocates a fresh slotArray at the target class,
// re-inserts every live entry via the insert-only probe path, resets the
// tombstone counter, and swaps the new array in. The old array is not
// released until the new one is fully populated, giving the strong
// allocation-failure guarantee of §7.
func (m *Map[K, V]) rebuildAtClass(class int) error {
	if class > maxClass {
		return ErrCapacityExhausted
	}
	if class < 0 {
		class = 0
	}

	newLength := capacityForClass(class)
	newArr := newSlotArray(m.allocator, newLength)
	if uint64(len(newArr.slots)) != newLength {
		return ErrAllocationFailed
	}

	for i := range m.arr.slots {
		s := &m.arr.slots[i]
		if s.tag != tagLive {
			continue
		}
		idx := insertOnlyAssumeCapacity(&newArr, m.hashFunc, s.key)
		dst := newArr.at(idx)
		dst.tag = tagLive
		dst.key = s.key
		dst.value = s.value
	}

	old := m.arr
	m.arr = newArr
	old.release(m.allocator)

	m.ctrl.class = class
	m.ctrl.tombstones = 0

	return nil
}

// Put inserts a new entry or replaces the value of an existing one.
func (m *Map[K, V]) Put(key K, value V) error {
	if err := m.ctrl.maybeGrowBeforeInsert(m); err != nil {
		return err
	}

	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full {
		return ErrCapacityExhausted
	}

	s := m.arr.at(r.index)
	if r.found {
		s.value = value
		return nil
	}

	if s.tag == tagTombstone {
		m.ctrl.tombstones--
	}
	s.tag = tagLive
	s.key = key
	s.value = value
	m.ctrl.live++

	return nil
}

// PutNoClobber inserts key/value only if key is absent. It reports whether
// the key was newly inserted.
func (m *Map[K, V]) PutNoClobber(key K, value V) (bool, error) {
	if err := m.ctrl.maybeGrowBeforeInsert(m); err != nil {
		return false, err
	}

	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full {
		return false, ErrCapacityExhausted
	}
	if r.found {
		return false, nil
	}

	s := m.arr.at(r.index)
	if s.tag == tagTombstone {
		m.ctrl.tombstones--
	}
	s.tag = tagLive
	s.key = key
	s.value = value
	m.ctrl.live++

	return true, nil
}

// Update replaces the value of an existing key only; it never inserts.
// Returns false if key is absent.
func (m *Map[K, V]) Update(key K, value V) bool {
	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full || !r.found {
		return false
	}
	m.arr.at(r.index).value = value
	return true
}

// FetchPut replaces the value of key (inserting if absent) and returns the
// previous value, if any.
func (m *Map[K, V]) FetchPut(key K, value V) (V, bool, error) {
	if err := m.ctrl.maybeGrowBeforeInsert(m); err != nil {
		return m.zeroV, false, err
	}

	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full {
		return m.zeroV, false, ErrCapacityExhausted
	}

	s := m.arr.at(r.index)
	if r.found {
		prev := s.value
		s.value = value
		return prev, true, nil
	}

	if s.tag == tagTombstone {
		m.ctrl.tombstones--
	}
	s.tag = tagLive
	s.key = key
	s.value = value
	m.ctrl.live++

	return m.zeroV, false, nil
}

// PutAssumeCapacity behaves like Put but never triggers a rebuild; it
// returns false (and leaves the map unchanged) if the table is structurally
// full.
func (m *Map[K, V]) PutAssumeCapacity(key K, value V) bool {
	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full {
		return false
	}

	s := m.arr.at(r.index)
	if r.found {
		s.value = value
		return true
	}

	if s.tag == tagTombstone {
		m.ctrl.tombstones--
	}
	s.tag = tagLive
	s.key = key
	s.value = value
	m.ctrl.live++

	return true
}

// GetOrInsert ensures a slot exists for key, returning a pointer to its
// value and whether the key already existed. When foundExisting is false,
// the returned pointer addresses V's zero value; the caller is expected to
// write through it before relying on any subsequent lookup (see DESIGN.md,
// Open Question 2).
func (m *Map[K, V]) GetOrInsert(key K) (value *V, foundExisting bool, err error) {
	if err := m.ctrl.maybeGrowBeforeInsert(m); err != nil {
		return nil, false, err
	}

	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full {
		return nil, false, ErrCapacityExhausted
	}

	s := m.arr.at(r.index)
	if r.found {
		return &s.value, true, nil
	}

	if s.tag == tagTombstone {
		m.ctrl.tombstones--
	}
	s.tag = tagLive
	s.key = key
	s.value = m.zeroV
	m.ctrl.live++

	return &s.value, false, nil
}

// Get looks up key, returning its value and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full || !r.found {
		return m.zeroV, false
	}
	return m.arr.at(r.index).value, true
}

// GetRef looks up key and returns a pointer directly into its slot's value
// rather than a copy. Unlike GetOrInsert, it never inserts and never
// triggers a rebuild: a miss returns (nil, false) with the map unchanged.
// The returned pointer is invalidated by any later rebuild (see Iterator's
// invalidation rules); it remains valid across Update and other operations
// that only mutate in place.
func (m *Map[K, V]) GetRef(key K) (*V, bool) {
	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full || !r.found {
		return nil, false
	}
	return &m.arr.at(r.index).value, true
}

// GetEntry looks up key, returning the (key, value) pair it resolves to.
func (m *Map[K, V]) GetEntry(key K) (K, V, bool) {
	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full || !r.found {
		var zeroK K
		return zeroK, m.zeroV, false
	}
	s := m.arr.at(r.index)
	return s.key, s.value, true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	r := findOrInsert(&m.arr, m.hashFunc, key)
	return !r.full && r.found
}

// Remove deletes key if present, converting its slot to a tombstone. It
// reports whether the key was present.
func (m *Map[K, V]) Remove(key K) bool {
	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full || !r.found {
		return false
	}

	s := m.arr.at(r.index)
	s.tag = tagTombstone
	var zeroK K
	s.key = zeroK
	s.value = m.zeroV
	m.ctrl.live--
	m.ctrl.tombstones++

	return true
}

// FetchRemove deletes key if present and returns its value.
func (m *Map[K, V]) FetchRemove(key K) (V, bool) {
	r := findOrInsert(&m.arr, m.hashFunc, key)
	if r.full || !r.found {
		return m.zeroV, false
	}

	s := m.arr.at(r.index)
	v := s.value
	s.tag = tagTombstone
	var zeroK K
	s.key = zeroK
	s.value = m.zeroV
	m.ctrl.live--
	m.ctrl.tombstones++

	return v, true
}

// ClearRetainCapacity empties the map (live=0, tombstones=0) without
// changing its capacity class.
func (m *Map[K, V]) ClearRetainCapacity() {
	for i := range m.arr.slots {
		m.arr.slots[i] = slot[K, V]{tag: tagEmpty}
	}
	m.ctrl.live = 0
	m.ctrl.tombstones = 0
}

// ClearAndRelease empties the map and shrinks it back to capacity class 0.
func (m *Map[K, V]) ClearAndRelease() {
	old := m.arr
	m.arr = newSlotArray(m.allocator, capacityForClass(0))
	old.release(m.allocator)
	m.ctrl.live = 0
	m.ctrl.tombstones = 0
	m.ctrl.class = 0
}

// EnsureCapacity raises the capacity class, if needed, so that the table
// holds n live entries in total (entries already present included) without
// a load-triggered grow (§R4). It is a no-op if the current class already
// suffices.
func (m *Map[K, V]) EnsureCapacity(n uint64) error {
	return m.ctrl.ensureCapacity(m, n)
}

// ReduceMemory shrinks the table per the §4.4 shrink rule: only when
// live < 0.4*length, down to the smallest class that still holds 1.25*live.
// A no-op otherwise.
func (m *Map[K, V]) ReduceMemory() error {
	return m.ctrl.shrinkToFit(m)
}

// Count returns the number of live entries.
func (m *Map[K, V]) Count() int {
	return int(m.ctrl.live)
}

// Capacity returns the current slot-array length.
func (m *Map[K, V]) Capacity() int {
	return int(m.arr.length())
}

// Clone produces a deep, independently owned copy of the map, using the
// same allocator and hash function.
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := &Map[K, V]{
		hashFunc:  m.hashFunc,
		allocator: m.allocator,
		ctrl:      m.ctrl,
	}
	clone.arr = newSlotArray(clone.allocator, m.arr.length())
	copy(clone.arr.slots, m.arr.slots)
	return clone
}

// Close releases the underlying slot array through the configured
// Allocator and marks the map destroyed; any further use is a programmer
// error. No method checks that mark: Get, GetRef, GetEntry, Contains,
// Remove, FetchRemove, Update and PutAssumeCapacity panic on indexed access
// into the released (nil) array, while Put, PutNoClobber, FetchPut and
// GetOrInsert find a zero-length array, rebuild a fresh one through the
// grow gate and succeed.
func (m *Map[K, V]) Close() {
	m.arr.release(m.allocator)
	m.destroyed = true
}

// Stats returns a snapshot of the map's internal counters.
func (m *Map[K, V]) Stats() Stats {
	capacity := m.arr.length()

	var tombstoneCapacityRatio, tombstoneSizeRatio float64
	if capacity > 0 {
		tombstoneCapacityRatio = float64(m.ctrl.tombstones) / float64(capacity)
	}
	if m.ctrl.live > 0 {
		tombstoneSizeRatio = float64(m.ctrl.tombstones) / float64(m.ctrl.live)
	}

	return Stats{
		Size:                    int(m.ctrl.live),
		Tombstones:              int(m.ctrl.tombstones),
		Capacity:                int(capacity),
		EffectiveCapacity:       int(capacity * 8 / 10),
		TombstonesCapacityRatio: tombstoneCapacityRatio,
		TombstonesSizeRatio:     tombstoneSizeRatio,
	}
}
