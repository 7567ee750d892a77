// Package darray implements an amortised-capacity growable sequence built
// on the slab package: push-back/pop-back and positional insert/delete for
// an unsorted variant, and order-preserving insert for a sorted variant.
package darray

import (
	gc "github.com/TomTonic/gocontainers"
	"github.com/TomTonic/gocontainers/slab"
)

// Variant selects whether a DArray keeps its live elements in comparator
// order (Sorted) or accepts positional mutation at the cost of no ordering
// guarantee (Unsorted).
type Variant int

const (
	Unsorted Variant = iota
	Sorted
)

const (
	growthFactor    = 2
	shrinkThreshold = 1.0 / (2 * growthFactor) // = 1/4, per spec.md §4.B
)

// DArray is a growable sequence of elements of type T. Its capacity grows
// and shrinks only at the points spec.md §4.B specifies, so insert/delete
// stay amortised O(1) without thrashing near a fixed population size.
type DArray[T any] struct {
	buf     []T // len(buf) == capacity c
	n       int // population
	variant Variant
	cmp     gc.CompareFunc[T]
	destroy gc.DestroyFunc[T]
}

// Create returns a new, empty DArray. cmp is required when variant is
// Sorted. An Unsorted array may be created without one, but its
// SearchFirst, SearchLast, SearchMin, SearchMax and Sort call cmp, so they
// need a non-nil cmp too. destroy is optional; Destroy does not invoke it
// (see Destroy's doc comment).
//
// initialCapacity is a hint; 0 leaves the buffer unallocated until the
// first insert. Any other value is rounded up to the next capacity of the
// form 2*2^k so the capacity invariant (spec.md §3, "c ∈ {0} ∪ {2·2^k}")
// holds from the start, not just after the first resize.
func Create[T any](variant Variant, initialCapacity int, cmp gc.CompareFunc[T], destroy gc.DestroyFunc[T]) (*DArray[T], error) {
	if initialCapacity < 0 {
		return nil, gc.ErrBadArg
	}
	if variant == Sorted && cmp == nil {
		return nil, gc.ErrBadArg
	}
	d := &DArray[T]{variant: variant, cmp: cmp, destroy: destroy}
	if initialCapacity > 0 {
		c := growthFactor
		for c < initialCapacity {
			c *= growthFactor
		}
		d.buf = make([]T, c)
	}
	return d, nil
}

// Destroy releases the backing buffer. It does not invoke a destructor on
// any live element; callers needing per-element cleanup must drain the
// array first (spec.md §4.B: "matches the minimal contract actually
// required by the stack façade").
func (d *DArray[T]) Destroy() {
	d.buf = nil
	d.n = 0
}

// NumEntries returns the number of live elements.
func (d *DArray[T]) NumEntries() int { return d.n }

// Size returns the current allocated capacity (spec.md §4.B's "size",
// distinct from NumEntries' population count).
func (d *DArray[T]) Size() int { return len(d.buf) }

// DataSize is kept as an alias of Size for callers migrating from the
// original library's size_of(T) getter. In Go that quantity is compile-time
// information carried by the type parameter itself, not a runtime value, so
// DataSize here reports capacity rather than element width — see DESIGN.md.
func (d *DArray[T]) DataSize() int { return len(d.buf) }

// RawArray exposes the live prefix of the backing array directly. Callers
// must not retain it across a mutating call (spec.md §5's aliasing rule).
func (d *DArray[T]) RawArray() []T { return d.buf[:d.n] }

func (d *DArray[T]) growForInsert() {
	switch {
	case len(d.buf) == 0:
		d.buf = make([]T, growthFactor)
	case d.n == len(d.buf):
		grown := make([]T, len(d.buf)*growthFactor)
		copy(grown, d.buf)
		d.buf = grown
	}
}

// shrinkForDelete applies spec.md §4.B's resize policy on delete. It is
// called with the pre-decrement population already checked against the
// pre-decrement capacity (the same timing convention growForInsert uses:
// check current n against current c, then mutate) and newLiveLen, the
// number of elements that must survive the shrink (the live prefix after
// whatever shift the caller already performed).
func (d *DArray[T]) shrinkForDelete(newLiveLen int) {
	c := len(d.buf)
	switch {
	case d.n == 1:
		d.buf = nil
	case float64(d.n) == float64(c)*shrinkThreshold:
		shrunk := make([]T, c/growthFactor)
		copy(shrunk, d.buf[:newLiveLen])
		d.buf = shrunk
	}
}

// Insert pushes entry onto the back of an Unsorted DArray, or inserts it in
// order for a Sorted one.
func (d *DArray[T]) Insert(entry T) error {
	d.growForInsert()
	switch d.variant {
	case Sorted:
		if err := slab.SortedInsert(d.buf[:d.n+1], d.cmp, entry); err != nil {
			return err
		}
	default:
		d.buf[d.n] = entry
	}
	d.n++
	return nil
}

// Delete pops the back (highest-index) element. If out is non-nil, the
// popped value is written to *out. Returns gocontainers.ErrEmpty if the
// array has no live elements.
func (d *DArray[T]) Delete(out *T) error {
	if d.n == 0 {
		return gc.ErrEmpty
	}
	if out != nil {
		*out = d.buf[d.n-1]
	}
	d.shrinkForDelete(d.n - 1)
	d.n--
	return nil
}

// InsertPos inserts entry at position pos, shifting [pos, n) toward the
// end. Valid only for the Unsorted variant; the Sorted variant rejects it
// with ErrBadArg to preserve ordering (spec.md §4.B).
func (d *DArray[T]) InsertPos(entry T, pos int) error {
	if d.variant != Unsorted {
		return gc.ErrBadArg
	}
	if pos < 0 || pos > d.n {
		return gc.ErrBadArg
	}
	d.growForInsert()
	// shift the live window [pos, n) into [pos+1, n+1) with copy over the
	// grown n+1 window.
	copy(d.buf[pos+1:d.n+1], d.buf[pos:d.n])
	d.buf[pos] = entry
	d.n++
	return nil
}

// DeletePos removes the element at position pos, shifting (pos, n) toward
// the beginning. Valid only for the Unsorted variant.
func (d *DArray[T]) DeletePos(out *T, pos int) error {
	if d.variant != Unsorted {
		return gc.ErrBadArg
	}
	if pos < 0 || pos >= d.n {
		return gc.ErrBadArg
	}
	if out != nil {
		*out = d.buf[pos]
	}
	copy(d.buf[pos:d.n-1], d.buf[pos+1:d.n])
	d.shrinkForDelete(d.n - 1)
	d.n--
	return nil
}

// Get copies the element at pos into *out.
func (d *DArray[T]) Get(out *T, pos int) error {
	if pos < 0 || pos >= d.n {
		return gc.ErrBadArg
	}
	*out = d.buf[pos]
	return nil
}
