// Package stringkey provides a comparator-friendly string key type for use
// as the element or key type of the containers in this module. It
// normalizes to Unicode NFC at construction, the same normalization the
// teacher's Key type applies, so that Compare/Equal give byte-wise results
// consistent across equivalent but differently-composed input (e.g. an
// accented letter written as one codepoint versus as a base letter plus a
// combining mark).
package stringkey

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StringKey is an NFC-normalized string, safe to compare lexicographically
// byte-wise. The zero value is the empty key.
type StringKey string

// New normalizes s to Unicode NFC and returns the resulting StringKey.
func New(s string) StringKey {
	return StringKey(norm.NFC.String(s))
}

// Compare returns a three-way comparison of a and b, suitable as the
// CompareFunc the darray/list/rbtree packages require: negative if a < b,
// zero if equal, positive if a > b.
func Compare(a, b StringKey) int {
	return strings.Compare(string(a), string(b))
}

// Equal reports whether a and b are the same normalized string.
func Equal(a, b StringKey) bool {
	return a == b
}

// String returns the underlying normalized string.
func (k StringKey) String() string { return string(k) }
