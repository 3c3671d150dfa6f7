package cbc

import "golang.org/x/exp/constraints"

// Equal reports whether x and y are equal, in time independent of where they
// first differ. Length is not treated as secret: a length mismatch returns
// false immediately. Works over any integer element type (bytes, runes,
// ints).
func Equal[E constraints.Integer](x, y []E) bool {
	eq, _ := foldDiff(x, y)

	return eq
}

// foldDiff accumulates element differences with OR over the full length, no
// early exit, and reports how many elements were examined. Tests use the
// count to verify the work done is independent of mismatch position.
func foldDiff[E constraints.Integer](x, y []E) (bool, int) {
	if len(x) != len(y) {
		return false, 0
	}

	var diff E
	for i := range x {
		diff |= x[i] ^ y[i]
	}

	return diff == 0, len(x)
}
