package field

import (
	"fmt"
	"sort"
)

// Trace is a sampled 1-D function: a domain sequence Xs paired with range
// values Vs. NewTrace sorts the pair so that Xs is strictly increasing,
// which the interpolation routines require.
type Trace struct {
	Xs, Vs []float64
}

type tracePoints Trace

func (t tracePoints) Len() int { return len(t.Xs) }
func (t tracePoints) Less(i, j int) bool { return t.Xs[i] < t.Xs[j] }
func (t tracePoints) Swap(i, j int) {
	t.Xs[i], t.Xs[j] = t.Xs[j], t.Xs[i]
	t.Vs[i], t.Vs[j] = t.Vs[j], t.Vs[i]
}

// NewTrace creates a Trace from a table of x and y values, sorting both
// slices jointly by x. The slices are not copied.
func NewTrace(xs, vs []float64) Trace {
	if len(xs) != len(vs) {
		panic(fmt.Sprintf(
			"Trace given len(xs) = %d, but len(vs) = %d.", len(xs), len(vs),
		))
	}
	t := Trace{xs, vs}
	sort.Sort(tracePoints(t))
	return t
}

// Len returns the number of samples in the trace.
func (t Trace) Len() int { return len(t.Xs) }

// Append adds a sample to the trace, keeping Xs sorted. It is used when
// traces are assembled in radius order, where the common case is appending
// at the end.
func (t Trace) Append(x, v float64) Trace {
	t.Xs = append(t.Xs, x)
	t.Vs = append(t.Vs, v)
	if n := len(t.Xs); n > 1 && t.Xs[n-2] > x {
		sort.Sort(tracePoints(t))
	}
	return t
}
