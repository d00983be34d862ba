package slotmap

import "hash/maphash"

// HashFunc computes a deterministic (per process), non-cryptographic 64-bit
// hash for a key. The core treats the exact bit-mixer as interchangeable;
// MakeDefaultHashFunc supplies the default, seeded-per-table implementation.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a HashFunc backed by hash/maphash, seeded once
// per call so that two maps created with the default hasher do not share a
// seed (and thus do not share worst-case probe sequences).
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
