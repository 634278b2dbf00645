package interpolate

// Linear is a margin-limited linear interpolator. Between bracketing samples
// it evaluates the straight line through them; past either end of the data,
// but within the margin, it holds the end value rather than extrapolating.
type Linear struct {
	t table
}

// NewLinear creates a linear interpolator for the strictly increasing domain
// xs taking the values vs. Lookups are O(log |xs|).
func NewLinear(xs, vs []float64, margin float64) *Linear {
	return &Linear{makeTable(xs, vs, margin)}
}

// Eval returns the interpolated value at x. The second return is false when
// x is outside the covered interval of the data.
func (lin *Linear) Eval(x float64) (float64, bool) {
	t := &lin.t
	if !t.covers(x) {
		return 0, false
	}
	n := len(t.xs)
	if n == 1 || x <= t.xs[0] {
		return t.vs[0], true
	}
	if x >= t.xs[n-1] {
		return t.vs[n-1], true
	}

	i := t.bracket(x)
	x0, x1 := t.xs[i], t.xs[i+1]
	v0, v1 := t.vs[i], t.vs[i+1]
	return v0 + (v1-v0)*(x-x0)/(x1-x0), true
}
