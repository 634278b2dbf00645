package interpolate

import (
	"fmt"
	"sort"
)

// table holds the shared state of the margin-limited interpolators: a
// strictly increasing domain slice, its values, and the margin beyond the
// first and last domain points inside which queries are still answered.
//
// The covered interval is the half-open [xs[0]-margin, xs[n-1]+margin).
// Queries beyond either end of the data but inside the margin evaluate to
// the nearest end value; queries outside the margin report no coverage.
type table struct {
	xs, vs []float64
	margin float64
}

func makeTable(xs, vs []float64, margin float64) table {
	if len(xs) != len(vs) {
		panic(fmt.Sprintf(
			"Table given len(xs) = %d, but len(vs) = %d.", len(xs), len(vs),
		))
	}
	for i := 0; i+1 < len(xs); i++ {
		if xs[i] >= xs[i+1] {
			panic(fmt.Sprintf(
				"Table xs not strictly increasing at index %d.", i,
			))
		}
	}
	return table{xs, vs, margin}
}

// covers reports whether x lies inside the covered interval.
func (t *table) covers(x float64) bool {
	if len(t.xs) == 0 {
		return false
	}
	return x >= t.xs[0]-t.margin && x < t.xs[len(t.xs)-1]+t.margin
}

// bracket returns the index i such that xs[i] <= x < xs[i+1], clamped to the
// valid range. It must only be called on non-empty tables.
func (t *table) bracket(x float64) int {
	i := sort.SearchFloat64s(t.xs, x)
	// SearchFloat64s returns the insertion point, so step back onto the
	// lower bracketing sample unless x sits exactly on one.
	if i == len(t.xs) || (i > 0 && t.xs[i] != x) {
		i--
	}
	if i == len(t.xs)-1 && i > 0 {
		i--
	}
	return i
}
