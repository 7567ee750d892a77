// Package stack implements a LIFO façade over darray: push, pop, peek,
// is-empty, and size, with no comparator required (spec.md §4.E).
package stack

import (
	gc "github.com/TomTonic/gocontainers"
	"github.com/TomTonic/gocontainers/darray"
)

// Stack is a last-in-first-out sequence of elements of type T.
type Stack[T any] struct {
	seq *darray.DArray[T]
}

// Create returns a new, empty Stack.
func Create[T any]() *Stack[T] {
	seq, _ := darray.Create[T](darray.Unsorted, 0, nil, nil)
	return &Stack[T]{seq: seq}
}

// Destroy releases the stack's backing storage.
func (s *Stack[T]) Destroy() {
	s.seq.Destroy()
}

// Push adds entry to the top of the stack.
func (s *Stack[T]) Push(entry T) error {
	return s.seq.Insert(entry)
}

// Pop removes and returns the top element into *out. Returns
// gocontainers.ErrEmpty if the stack has no elements.
func (s *Stack[T]) Pop(out *T) error {
	if s.seq.NumEntries() == 0 {
		return gc.ErrEmpty
	}
	return s.seq.Delete(out)
}

// Peek writes the top element into *out without removing it. Returns
// gocontainers.ErrEmpty if the stack has no elements.
func (s *Stack[T]) Peek(out *T) error {
	n := s.seq.NumEntries()
	if n == 0 {
		return gc.ErrEmpty
	}
	return s.seq.Get(out, n-1)
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return s.seq.NumEntries() == 0 }

// Size returns the number of elements on the stack. Unlike darray's Size,
// which reports allocated capacity, a stack has no capacity of its own to
// expose as a separate notion from its population, so Size here means
// population, matching NumEntries.
func (s *Stack[T]) Size() int { return s.seq.NumEntries() }

// NumEntries is an alias for Size matching spec.md's naming for the other
// containers.
func (s *Stack[T]) NumEntries() int { return s.seq.NumEntries() }

// DataSize returns the stack's current allocated capacity, forwarded from
// the underlying darray.
func (s *Stack[T]) DataSize() int { return s.seq.DataSize() }

// RawArray exposes the live elements bottom-to-top. Callers must not retain
// it across a mutating call.
func (s *Stack[T]) RawArray() []T { return s.seq.RawArray() }
