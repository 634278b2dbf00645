package interpolate

// Nearest is a margin-limited nearest-neighbor interpolator. It renders
// blocky "mosaic" sections: every query inside the covered interval takes
// the value of the closest sample, with no smoothing between samples.
type Nearest struct {
	t table
}

// NewNearest creates a nearest-neighbor interpolator for the strictly
// increasing domain xs taking the values vs.
func NewNearest(xs, vs []float64, margin float64) *Nearest {
	return &Nearest{makeTable(xs, vs, margin)}
}

// Eval returns the value of the sample closest to x. The second return is
// false when x is outside the covered interval of the data.
func (nr *Nearest) Eval(x float64) (float64, bool) {
	t := &nr.t
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
	if x-t.xs[i] <= t.xs[i+1]-x {
		return t.vs[i], true
	}
	return t.vs[i+1], true
}
