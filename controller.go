package slotmap

// controller owns the live/tombstone counters and the current capacity
// class, and decides when the owning Map's slotArray must be rebuilt.
type controller[K comparable, V any] struct {
	live       uint64
	tombstones uint64
	class      int
}

// loadBreached reports whether live has reached the load ceiling (§I3),
// live >= length * 0.8, at which an insert must grow the table first.
func loadBreached(live, length uint64) bool {
	return live*10 >= length*8
}

// tombstoneSaturated reports whether the tombstone-pressure rebuild trigger
// of §4.4 has fired. tombstones is bounded by length-live (I1), so a literal
// "tombstones > length" can never hold; the trigger is instead "more than
// half the table is dead weight" (see DESIGN.md's Open Question 1 note),
// which keeps the rebuild-in-place path reachable.
func tombstoneSaturated(tombstones, length uint64) bool {
	return tombstones*2 > length
}

// maybeGrowBeforeInsert is the "adjust-before-insert" gate (§4.5): called
// before any mutation that may raise live by one. It may trigger a grow
// rebuild (load breach) or a same/lower-class rebuild (tombstone
// saturation) before the mutation proceeds.
func (c *controller[K, V]) maybeGrowBeforeInsert(m *Map[K, V]) error {
	length := m.arr.length()

	// Check against live+1, the count the pending insert would produce,
	// not the count already in the table: the gate must grow before an
	// insert would breach the ceiling, not one insert after.
	if loadBreached(c.live+1, length) {
		return m.rebuildAtClass(c.class + 1)
	}

	// The same rebuild also runs when live entries and tombstones together
	// occupy every slot: with no empty slot left, the probe for a new key
	// would walk the whole array and report the table full.
	if tombstoneSaturated(c.tombstones, length) || c.live+c.tombstones >= length {
		// §9 Open Question 1, decided: rebuild-in-place drops the class by
		// one (saturating at zero) before resizing, so a tombstone-pressure
		// rebuild can also shrink if the live set now fits in less space.
		target := c.class - 1
		if target < 0 {
			target = 0
		}
		// Never shrink below what the pending insert (live -> live+1)
		// actually needs.
		minClass := classForHeadroom(c.live + 1)
		if target < minClass {
			target = minClass
		}
		return m.rebuildAtClass(target)
	}

	return nil
}

// shrinkToFit implements the explicit shrink rule of §4.4: only acts when
// live < 0.4*length, rebuilding at the smallest class that still holds
// 1.25*live. A no-op when already at that class.
func (c *controller[K, V]) shrinkToFit(m *Map[K, V]) error {
	length := m.arr.length()
	if c.live*10 >= length*4 {
		return nil
	}

	target := classForShrink(c.live)
	if target == c.class {
		return nil
	}

	return m.rebuildAtClass(target)
}

// ensureCapacity implements §4.5's ensure-capacity: jump directly to the
// smallest class whose load ceiling admits n live entries in total (entries
// already present count towards n), so that filling the map up to n entries
// triggers no grow (R4), never growing further on its own.
func (c *controller[K, V]) ensureCapacity(m *Map[K, V], n uint64) error {
	needed := classForHeadroom(n)
	if c.class >= needed {
		return nil
	}

	return m.rebuildAtClass(needed)
}
