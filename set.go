package slotmap

// Union returns a new map containing every entry from a and b. When a and b
// share a key, the smaller map's value wins: Union clones the larger of the
// two and then Puts every entry of the smaller one into the clone, so the
// smaller map's entries overwrite whatever the larger map held for a
// shared key. Choosing the smaller map to iterate bounds the work to
// O(|smaller|) puts plus O(|larger|) for the clone.
func Union[K comparable, V any](a, b *Map[K, V]) (*Map[K, V], error) {
	bigger, smaller := a, b
	if a.Count() < b.Count() {
		bigger, smaller = b, a
	}

	result := bigger.Clone()

	it := smaller.Iter()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		if err := result.Put(k, v); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Intersection returns a new map containing only the entries whose keys
// appear in both a and b, with values taken from whichever map was cloned
// (the smaller one).
func Intersection[K comparable, V any](a, b *Map[K, V]) (*Map[K, V], error) {
	bigger, smaller := a, b
	if a.Count() < b.Count() {
		bigger, smaller = b, a
	}

	result := smaller.Clone()

	it := smaller.Iter()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		if !bigger.Contains(k) {
			result.Remove(k)
		}
	}

	return result, nil
}

// SymmetricDifference returns a new map containing the entries whose keys
// appear in exactly one of a and b.
func SymmetricDifference[K comparable, V any](a, b *Map[K, V]) (*Map[K, V], error) {
	bigger, smaller := a, b
	if a.Count() < b.Count() {
		bigger, smaller = b, a
	}

	result := bigger.Clone()

	it := smaller.Iter()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}

		value, foundExisting, err := result.GetOrInsert(k)
		if err != nil {
			return nil, err
		}
		if foundExisting {
			result.Remove(k)
		} else {
			*value = v
		}
	}

	return result, nil
}

// RelativeComplement returns a new map holding the entries of a whose keys
// do not appear in b (i.e. a \ b).
func RelativeComplement[K comparable, V any](a, b *Map[K, V]) (*Map[K, V], error) {
	result := a.Clone()

	it := a.Iter()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		if b.Contains(k) {
			result.Remove(k)
		}
	}

	return result, nil
}
