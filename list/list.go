// Package list implements a sorted singly-linked list. Every mutating
// operation uses a transient guard node spliced onto the tail so its hot
// loop never needs a nil check (spec.md §4.C): the guard's payload equals
// the caller's key, so a "advance while cmp(node, key) < 0" loop always
// terminates at either the first node >= key or at the guard itself.
package list

import (
	gc "github.com/TomTonic/gocontainers"
)

type node[T any] struct {
	payload T
	next    *node[T]
}

// List is a singly-linked list kept in non-decreasing order by cmp.
type List[T any] struct {
	head    *node[T]
	tail    *node[T]
	length  int
	cmp     gc.CompareFunc[T]
	destroy gc.DestroyFunc[T]
}

// Create returns a new, empty List. cmp is required; destroy is optional
// and is only consulted by DeleteWithEntry, DeleteAllWithEntry and
// DestroyWithEntries.
func Create[T any](cmp gc.CompareFunc[T], destroy gc.DestroyFunc[T]) (*List[T], error) {
	if cmp == nil {
		return nil, gc.ErrBadArg
	}
	return &List[T]{cmp: cmp, destroy: destroy}, nil
}

// NumEntries returns the number of nodes in the list.
func (l *List[T]) NumEntries() int { return l.length }

// DataSize is an alias of NumEntries, matching the original library's
// list_get_data_size getter. Like rbtree.Tree, a list has no separate
// allocated-capacity concept distinct from its population (each node is
// allocated individually on insert and freed individually on delete), so
// DataSize here reports the same quantity as NumEntries rather than a
// distinct capacity.
func (l *List[T]) DataSize() int { return l.length }

// withGuard splices a transient node whose payload is key onto the tail
// (so the scan always has a non-nil node to land on), runs fn with the
// traversal's starting point and the guard itself, then detaches the
// guard again. fn must not retain any pointer to the guard past its
// return. On an empty list there is no tail to splice onto, so the guard
// itself becomes the starting point.
func (l *List[T]) withGuard(key T, fn func(start, guard *node[T])) {
	guard := &node[T]{payload: key}
	if l.tail != nil {
		l.tail.next = guard
	}
	start := l.head
	if start == nil {
		start = guard
	}
	fn(start, guard)
	if l.tail != nil {
		l.tail.next = nil
	}
}

// Insert adds entry in sorted position. Equal keys are appended after any
// existing equal keys (first skip strictly-less nodes, then skip
// equal ones), matching the "stable w.r.t. insertion order among equal
// keys" contract spec.md §4.C describes.
func (l *List[T]) Insert(entry T) error {
	newNode := &node[T]{payload: entry}
	var prev, cur, guardRef *node[T]
	l.withGuard(entry, func(start, guard *node[T]) {
		guardRef = guard
		cur = start
		for l.cmp(cur.payload, entry) < 0 {
			prev = cur
			cur = cur.next
		}
		for cur != guard && l.cmp(cur.payload, entry) == 0 {
			prev = cur
			cur = cur.next
		}
	})
	// cur is either the guard (insertion point is the new tail) or a real
	// node whose payload is > entry (insertion point is just before it).
	if cur == guardRef {
		newNode.next = nil
		l.tail = newNode
	} else {
		newNode.next = cur
	}
	if prev == nil {
		l.head = newNode
	} else {
		prev.next = newNode
	}
	l.length++
	return nil
}

// findFirstEqual runs the guard-node scan for the first node equal to key
// and returns it along with its predecessor (nil if it is the head).
func (l *List[T]) findFirstEqual(key T) (prev, match *node[T]) {
	l.withGuard(key, func(start, guard *node[T]) {
		cur := start
		for cur != guard && l.cmp(cur.payload, key) < 0 {
			prev = cur
			cur = cur.next
		}
		if cur != guard && l.cmp(cur.payload, key) == 0 {
			match = cur
		}
	})
	return prev, match
}

// unlink removes node n (whose predecessor is prev, nil if n is the head)
// from the list and fixes up head/tail/length.
func (l *List[T]) unlink(prev, n *node[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if n == l.tail {
		l.tail = prev
	}
	l.length--
	if l.length == 0 {
		l.head, l.tail = nil, nil
	}
}

// Delete removes the first node equal to entry. Returns gocontainers.ErrAbsent
// if no such node exists.
func (l *List[T]) Delete(entry T) error {
	prev, match := l.findFirstEqual(entry)
	if match == nil {
		return gc.ErrAbsent
	}
	l.unlink(prev, match)
	return nil
}

// DeleteWithEntry is Delete, but first invokes the list's destructor (if
// any) on the removed node's payload.
func (l *List[T]) DeleteWithEntry(entry T) error {
	prev, match := l.findFirstEqual(entry)
	if match == nil {
		return gc.ErrAbsent
	}
	if l.destroy != nil {
		l.destroy(match.payload)
	}
	l.unlink(prev, match)
	return nil
}

// deleteAll removes every node equal to entry, optionally invoking destroy
// on each payload first, and returns the count removed. The guard-node scan
// locates the first equal node; the list is sorted, so every other equal
// node follows it directly.
func (l *List[T]) deleteAll(entry T, invokeDestroy bool) int {
	removed := 0
	prev, cur := l.findFirstEqual(entry)
	for cur != nil && l.cmp(cur.payload, entry) == 0 {
		if invokeDestroy && l.destroy != nil {
			l.destroy(cur.payload)
		}
		next := cur.next
		l.unlink(prev, cur)
		cur = next
		removed++
	}
	return removed
}

// DeleteAll removes every node equal to entry and returns the count
// removed. Returns (0, gocontainers.ErrEmpty) if the list was already empty.
func (l *List[T]) DeleteAll(entry T) (int, error) {
	if l.length == 0 {
		return 0, gc.ErrEmpty
	}
	return l.deleteAll(entry, false), nil
}

// DeleteAllWithEntry is DeleteAll, invoking the destructor on each removed
// payload first.
func (l *List[T]) DeleteAllWithEntry(entry T) (int, error) {
	if l.length == 0 {
		return 0, gc.ErrEmpty
	}
	return l.deleteAll(entry, true), nil
}

// Search copies the payload of the first node equal to key into out (if
// out is non-nil) and reports whether a match was found.
func (l *List[T]) Search(key T, out *T) bool {
	_, match := l.findFirstEqual(key)
	if match == nil {
		return false
	}
	if out != nil {
		*out = match.payload
	}
	return true
}

// ToArray copies every payload, in list order, into a freshly allocated
// slice of length NumEntries.
func (l *List[T]) ToArray() []T {
	out := make([]T, l.length)
	i := 0
	for n := l.head; n != nil; n = n.next {
		out[i] = n.payload
		i++
	}
	return out
}

// Destroy clears the list without invoking the destructor on any payload.
func (l *List[T]) Destroy() {
	l.head, l.tail = nil, nil
	l.length = 0
}

// DestroyWithEntries invokes the destructor (if any) on every payload, in
// list order, then clears the list.
func (l *List[T]) DestroyWithEntries() {
	if l.destroy != nil {
		for n := l.head; n != nil; n = n.next {
			l.destroy(n.payload)
		}
	}
	l.head, l.tail = nil, nil
	l.length = 0
}
