// Package setcheck provides round-trip comparison helpers used by the
// list and rbtree test suites: checking that a container's
// to-array output has the same elements as what went in, either as a set
// (duplicates collapsed) or as a multiset (duplicates counted). The
// set comparison is grounded on the teacher's own use of Set3 for exactly
// this kind of "same elements regardless of order" check.
package setcheck

import (
	set3 "github.com/TomTonic/Set3"
)

// EqualAsSet reports whether a and b contain the same distinct elements,
// ignoring order and duplicate count.
func EqualAsSet[T comparable](a, b []T) bool {
	return set3.From(a...).Equals(set3.From(b...))
}

// EqualAsMultiset reports whether a and b contain the same elements the
// same number of times each, ignoring order.
func EqualAsMultiset[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[T]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
