// SPDX-License-Identifier: MIT
// Package: weaver/builder
//
// hamming.go - the one-letter-difference relation.
//
// Words are compared byte by byte. Dictionary words are lowercase ASCII, so
// a byte is a letter.

package builder

// HammingDistance returns the number of positions at which a and b differ.
// ok is false (and d is 0) when the lengths differ, since the distance is
// undefined there.
// Complexity: O(L).
func HammingDistance(a, b string) (d int, ok bool) {
	if len(a) != len(b) {
		return 0, false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d, true
}

// OneLetterApart reports whether a and b have equal length and differ in
// exactly one position. It stops at the second mismatch.
// Symmetric: OneLetterApart(a, b) == OneLetterApart(b, a).
// Complexity: O(L).
func OneLetterApart(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	oneOff := false
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if oneOff {
			return false
		}
		oneOff = true
	}
	return oneOff
}
