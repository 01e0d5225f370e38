package btree

// insertAt inserts value into s at idx, shifting the tail right.
func insertAt[T any](s []T, idx int, value T) []T {
	assert(idx >= 0 && idx <= len(s), "insertAt index out of range")
	var zero T
	s = append(s, zero)
	copy(s[idx+1:], s[idx:])
	s[idx] = value
	return s
}

// removeAt removes the element at idx, shifting the tail left. The vacated
// slot is zeroed so that the backing array does not retain stale values.
func removeAt[T any](s []T, idx int) ([]T, T) {
	assert(idx >= 0 && idx < len(s), "removeAt index out of range")
	v := s[idx]
	copy(s[idx:], s[idx+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1], v
}

// pop removes and returns the last element.
func pop[T any](s []T) ([]T, T) {
	return removeAt(s, len(s)-1)
}

// truncate cuts s to its first n elements, zeroing the remainder.
func truncate[T any](s []T, n int) []T {
	assert(n >= 0 && n <= len(s), "truncate length out of range")
	clear(s[n:])
	return s[:n]
}
