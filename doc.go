// Package gocontainers provides generic, single-threaded in-memory
// containers: a fixed-capacity slab of elements, an amortised growable
// sequence built on it, a sorted singly-linked list, a self-balancing
// red-black tree, and a stack façade. Every container is parameterised over
// an element type T and a three-way comparator; an optional destructor and
// printer round out the collaborator interface each sub-package consumes.
//
// None of these containers are safe for concurrent use. Callers that share
// one across goroutines must provide their own synchronisation.
package gocontainers

// CompareFunc reports the three-way ordering of a and b: negative if
// a < b, zero if a == b, positive if a > b. Implementations must be a pure
// total order (antisymmetric, transitive, reflexive on equality); calling
// back into the owning container from within the comparator is undefined.
type CompareFunc[T any] func(a, b T) int

// DestroyFunc releases any resources an element transitively owns. A
// container invokes it at most once per live element.
type DestroyFunc[T any] func(v T)

// PrintFunc renders one element for diagnostic output.
type PrintFunc[T any] func(v T)
