package gocontainers

import "errors"

// Sentinel errors shared by every container in this module. Comparing with
// errors.Is is the intended way to branch on them; none of them carry
// dynamic state.
var (
	// ErrBadArg is returned when a precondition on an argument is violated:
	// a nil pointer where one is required, a zero/negative size, or a
	// position outside the valid range.
	ErrBadArg = errors.New("gocontainers: invalid argument")

	// ErrAlloc is returned when a requested allocation cannot be satisfied
	// for a reason detectable ahead of time (e.g. length*size overflowing
	// int). Go's allocator panics rather than returning an error on actual
	// exhaustion, so this is reachable only from precondition checks.
	ErrAlloc = errors.New("gocontainers: allocation failed")

	// ErrEmpty is returned by operations that require at least one element
	// (darray Delete, stack Pop/Peek, list DeleteAll/DeleteAllWithEntry)
	// when the container is empty. The tree does not return it: its Min and
	// Max report an empty tree through their ok result, and its ToArray
	// returns an empty slice.
	ErrEmpty = errors.New("gocontainers: container is empty")

	// ErrDuplicate is returned by an insert that found an existing element
	// comparing equal to the one being inserted. It is a distinguished
	// outcome, not a failure: the container's state is unchanged.
	ErrDuplicate = errors.New("gocontainers: key already present")

	// ErrAbsent is returned by a search/delete that found no element
	// comparing equal to the requested key.
	ErrAbsent = errors.New("gocontainers: key not present")
)
