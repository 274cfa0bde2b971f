package graph

import (
	"cmp"
	"strconv"
)

// CompareNatural orders string node IDs the way a person reading them would:
// IDs that parse as numbers are compared by value and sort before all other
// IDs, which are compared lexicographically. Numerically equal IDs with
// different spellings ("1" and "1.0") fall back to byte order so the result
// stays a total order.
func CompareNatural(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	numA, numB := errA == nil, errB == nil

	switch {
	case numA && numB:
		if c := cmp.Compare(fa, fb); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case numA:
		return -1
	case numB:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
