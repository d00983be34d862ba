package slotmap

import "math/bits"

// maxClass is the top index into ladder; the table has 41 classes, 0..40.
const maxClass = 40

// ladder is the fixed power-of-two capacity ladder, LADDER[c] = 1<<(c+3).
// Class 0 is 8 slots, class 40 is 1<<43 slots.
var ladder = func() [maxClass + 1]uint64 {
	var l [maxClass + 1]uint64
	for c := range l {
		l[c] = uint64(1) << (c + 3)
	}
	return l
}()

// capacityForClass returns the slot-array length for a capacity class.
func capacityForClass(class int) uint64 {
	return ladder[class]
}

// classForMinCapacity returns the smallest class c such that
// capacityForClass(c) >= n, clamped to [0, maxClass].
func classForMinCapacity(n uint64) int {
	if n <= ladder[0] {
		return 0
	}
	// ladder[c] = 8 << c, so we want the smallest c with 8<<c >= n.
	c := bits.Len64(n-1) - 3
	if c < 0 {
		c = 0
	}
	if c > maxClass {
		c = maxClass
	}
	return c
}

// classForHeadroom returns the smallest class c such that n inserts land
// strictly under the load ceiling (floor(0.8*capacityForClass(c)) >= n),
// i.e. capacityForClass(c)*8 > n*10. classForMinCapacity(n*10/8) is not
// enough: it only guarantees capacityForClass(c)*8 >= n*10, which the grow
// gate (live+1)*10 >= length*8 would still flag as a breach on the nth
// insert. The +1 nudges past the boundary rather than landing on it.
func classForHeadroom(n uint64) int {
	return classForMinCapacity(n*10/8 + 1)
}

// classForShrink implements the shrink-to-fit rule of §4.4: the smallest
// class c such that capacityForClass(c) >= 1.25*live, with 1.25*live rounded
// up so that live stays within the rebuilt table's load ceiling.
func classForShrink(live uint64) int {
	if live == 0 {
		return 0
	}
	target := live + (live+3)/4
	return classForMinCapacity(target)
}
