package slab

import gc "github.com/TomTonic/gocontainers"

// LowerBound returns the smallest index i in buf such that cmp(buf[i], key)
// >= 0, or len(buf) if no such index exists. buf must already be sorted by
// cmp in non-decreasing order. Equivalently, the result is the count of
// elements strictly less than key.
func LowerBound[T any](buf []T, cmp gc.CompareFunc[T], key T) int {
	lo, hi := 0, len(buf)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(buf[mid], key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// UpperBound returns the smallest index i in buf such that cmp(buf[i], key)
// > 0, or len(buf) if no such index exists. buf must already be sorted by
// cmp in non-decreasing order.
func UpperBound[T any](buf []T, cmp gc.CompareFunc[T], key T) int {
	lo, hi := 0, len(buf)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(buf[mid], key) > 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// SortedFindFirst returns the leftmost index of an element equal to key in
// a slice sorted by cmp, or -1 if absent.
func SortedFindFirst[T any](buf []T, cmp gc.CompareFunc[T], key T) int {
	i := LowerBound(buf, cmp, key)
	if i >= len(buf) || cmp(buf[i], key) != 0 {
		return -1
	}
	return i
}

// SortedFindLast returns the rightmost index of an element equal to key in
// a slice sorted by cmp, or -1 if absent. It narrows the search using
// upper-midpoint rounding so the loop terminates on the rightmost match.
func SortedFindLast[T any](buf []T, cmp gc.CompareFunc[T], key T) int {
	lo, hi := 0, len(buf)-1
	result := -1
	for lo <= hi {
		mid := int(uint(lo+hi+1) >> 1) // upper-midpoint rounding
		c := cmp(buf[mid], key)
		switch {
		case c == 0:
			result = mid
			lo = mid + 1
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return result
}

// UnsortedFindFirst scans buf from the front and returns the index of the
// first element equal to key, or -1 if none matches.
func UnsortedFindFirst[T any](buf []T, cmp gc.CompareFunc[T], key T) int {
	for i := range buf {
		if cmp(buf[i], key) == 0 {
			return i
		}
	}
	return -1
}

// UnsortedFindLast scans buf from the back and returns the index of the
// last element equal to key, or -1 if none matches.
func UnsortedFindLast[T any](buf []T, cmp gc.CompareFunc[T], key T) int {
	for i := len(buf) - 1; i >= 0; i-- {
		if cmp(buf[i], key) == 0 {
			return i
		}
	}
	return -1
}

// Min returns the index of the first-seen minimum element of buf under cmp.
// ok is false iff buf is empty.
func Min[T any](buf []T, cmp gc.CompareFunc[T]) (idx int, ok bool) {
	if len(buf) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(buf); i++ {
		if cmp(buf[i], buf[best]) < 0 {
			best = i
		}
	}
	return best, true
}

// Max returns the index of the first-seen maximum element of buf under cmp.
// ok is false iff buf is empty.
func Max[T any](buf []T, cmp gc.CompareFunc[T]) (idx int, ok bool) {
	if len(buf) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(buf); i++ {
		if cmp(buf[i], buf[best]) > 0 {
			best = i
		}
	}
	return best, true
}
