package bplus

import "slices"

// lowerBound returns the first index i with keys[i] >= target, or len(keys).
// In an internal node this is also the index of the child to descend into.
func lowerBound(keys [][]byte, target []byte, cmp func(a, b []byte) int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// binarySearch returns the index of target in keys, or -1.
func binarySearch(keys [][]byte, target []byte, cmp func(a, b []byte) int) int {
	i := lowerBound(keys, target, cmp)
	if i < len(keys) && cmp(keys[i], target) == 0 {
		return i
	}
	return -1
}

// insert inserts elem at index i in slice.
func insert[T any](slice []T, i int, elem T) []T {
	return slices.Insert(slice, i, elem)
}

// remove removes element at index i from slice, zeroing the vacated slot.
func remove[T any](slice []T, i int) []T {
	return slices.Delete(slice, i, i+1)
}

// truncate shortens slice to n elements and zeroes the tail so moved
// keys and values are not kept alive by the old backing array.
func truncate[T any](slice []T, n int) []T {
	clear(slice[n:])
	return slice[:n]
}
