package darray

import "github.com/TomTonic/gocontainers/slab"

// SearchFirst returns the index of the first live element equal to key, or
// -1 if none matches. The Sorted variant may use binary search internally;
// the observable contract is identical either way.
func (d *DArray[T]) SearchFirst(key T, out *T) int {
	live := d.buf[:d.n]
	var idx int
	if d.variant == Sorted {
		idx = slab.SortedFindFirst(live, d.cmp, key)
	} else {
		idx = slab.UnsortedFindFirst(live, d.cmp, key)
	}
	if idx >= 0 && out != nil {
		*out = live[idx]
	}
	return idx
}

// SearchLast returns the index of the last live element equal to key, or
// -1 if none matches.
func (d *DArray[T]) SearchLast(key T, out *T) int {
	live := d.buf[:d.n]
	var idx int
	if d.variant == Sorted {
		idx = slab.SortedFindLast(live, d.cmp, key)
	} else {
		idx = slab.UnsortedFindLast(live, d.cmp, key)
	}
	if idx >= 0 && out != nil {
		*out = live[idx]
	}
	return idx
}

// SearchMin writes the minimum live element into *out. ok is false iff the
// array is empty.
func (d *DArray[T]) SearchMin(out *T) (ok bool) {
	idx, ok := slab.Min(d.buf[:d.n], d.cmp)
	if ok && out != nil {
		*out = d.buf[idx]
	}
	return ok
}

// SearchMax writes the maximum live element into *out. ok is false iff the
// array is empty.
func (d *DArray[T]) SearchMax(out *T) (ok bool) {
	idx, ok := slab.Max(d.buf[:d.n], d.cmp)
	if ok && out != nil {
		*out = d.buf[idx]
	}
	return ok
}

// Sort reorders the live elements by cmp. Only meaningful for Unsorted
// arrays (a Sorted array is already ordered, and mutating its order outside
// of Insert would violate its invariant); callers that sort a Sorted array
// do so at their own risk, same as the underlying slab.Sort primitive.
func (d *DArray[T]) Sort() {
	slab.Sort(d.buf[:d.n], d.cmp)
}
