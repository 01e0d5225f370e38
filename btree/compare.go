package btree

import "cmp"

// Comparator returns a negative number if a < b, zero if a == b and a positive
// number if a > b.
type Comparator[K any] func(a, b K) int

// Ordered returns a comparator for the natural order of K.
func Ordered[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// Reverse returns a comparator ordering keys descending with respect to c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return c(b, a)
	}
}

// bisectLeft returns the first index i with keys[i] >= key.
func bisectLeft[K any](keys []K, key K, c Comparator[K]) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if c(keys[mid], key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// bisectRight returns the first index i with keys[i] > key.
func bisectRight[K any](keys []K, key K, c Comparator[K]) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if c(keys[mid], key) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
