package domain

// CanonicalPair orders two user identifiers into a fixed (lo, hi) pair so
// two-user aggregates are stored and read under one key regardless of
// perspective. swapped is true when the inputs arrived in (hi, lo) order.
// Every reader and writer of pair aggregates must go through this helper;
// inlining the comparison elsewhere would let the symmetry guarantee drift.
func CanonicalPair(a, b string) (lo, hi string, swapped bool) {
	if a <= b {
		return a, b, false
	}
	return b, a, true
}

// PairKey builds the storage key for a canonical user pair
func PairKey(a, b string) string {
	lo, hi, _ := CanonicalPair(a, b)
	return lo + ":" + hi
}
