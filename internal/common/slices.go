package common

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"

// IndexBy builds a lookup from key to position for the given slice.
// Later duplicates do not overwrite earlier entries.
func IndexBy[S ~[]E, E any, K comparable](s S, key func(E) K) map[K]int {
	idx := make(map[K]int, len(s))
	for i, e := range s {
		k := key(e)
		if _, ok := idx[k]; !ok {
			idx[k] = i
		}
	}

	return idx
}
