package interpolate

// Interpolator evaluates a 1-D function sampled at strictly increasing
// domain points.
type Interpolator interface {
	// Eval returns the interpolated value at x and reports whether x was
	// within the interpolator's margin of the data. Queries outside the
	// margin have no usable coverage and must be skipped by the caller.
	Eval(x float64) (float64, bool)
}

var (
	_ Interpolator = &Linear{}
	_ Interpolator = &Nearest{}
)

// New creates a margin-limited interpolator over the table (xs, vs). With
// mosaic set it returns a nearest-neighbor (blocky, unsmoothed) interpolator,
// otherwise a linear one.
func New(xs, vs []float64, margin float64, mosaic bool) Interpolator {
	if mosaic {
		return NewNearest(xs, vs, margin)
	}
	return NewLinear(xs, vs, margin)
}
