// Package slab implements fixed-capacity operations over a contiguous
// block of uniform elements: the byte-slab primitives of the container
// toolkit (binary search, sorted/positional insert and delete, min/max,
// quicksort). Every element-level error from one of these functions is
// reported as a distinguished return (gocontainers.ErrBadArg or a negative
// index); nothing is retried and a failed call leaves its arguments
// unmodified.
package slab

import (
	"math"
	"unsafe"

	gc "github.com/TomTonic/gocontainers"
)

// Slab is a fixed-length, zero-filled block of elements. It is the
// generic-over-T translation of the original "byte block of size_of(T)"
// element model: once created, its length never changes, mirroring the
// fixed-capacity contract of the byte-slab component.
type Slab[T any] struct {
	data []T
}

// Create allocates a zero-filled Slab of the given length. length must be
// at least 1. Returns gocontainers.ErrAlloc if length*sizeof(T) would
// overflow int — the one precondition Go's allocator lets us check ahead
// of actual exhaustion (spec.md §4.A's AllocError, "underlying allocator
// returned failure").
func Create[T any](length int) (*Slab[T], error) {
	if length < 1 {
		return nil, gc.ErrBadArg
	}
	var zero T
	if elemSize := unsafe.Sizeof(zero); elemSize != 0 && uint64(length) > uint64(math.MaxInt)/uint64(elemSize) {
		return nil, gc.ErrAlloc
	}
	return &Slab[T]{data: make([]T, length)}, nil
}

// Destroy releases the slab's backing array. It does not invoke any
// destructor on the elements.
func (s *Slab[T]) Destroy() {
	s.data = nil
}

// DestroyWith invokes destroy on every element before releasing the slab.
func (s *Slab[T]) DestroyWith(destroy gc.DestroyFunc[T]) {
	if destroy != nil {
		for i := range s.data {
			destroy(s.data[i])
		}
	}
	s.data = nil
}

// Len returns the slab's fixed length.
func (s *Slab[T]) Len() int { return len(s.data) }

// Raw exposes the underlying slice directly; callers sharing it across a
// resizing operation take on the aliasing risk spec.md §5 calls out.
func (s *Slab[T]) Raw() []T { return s.data }

// Copy copies src into dst, which must be non-overlapping (spec.md §4.A's
// "non-overlapping byte-wise copy"); it is the generic translation of the
// original's memcpy-based copy primitive, dropping the size-dispatched
// assignment macro per spec.md §9 ("keep the contract, drop the macro").
func Copy[T any](dst, src []T) {
	copy(dst, src)
}

// Move copies src into dst, which may overlap (spec.md §4.A's "move").
// Go's copy() already tolerates overlap in either direction, so the
// memcpy/memmove distinction the original draws collapses into this one
// function here; that collapse is documented, not hidden.
func Move[T any](dst, src []T) {
	copy(dst, src)
}

// Clone returns a new slice holding an independent copy of src's elements.
func Clone[T any](src []T) []T {
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

// Zero overwrites every element of s with T's zero value.
func Zero[T any](s []T) {
	var zero T
	for i := range s {
		s[i] = zero
	}
}
