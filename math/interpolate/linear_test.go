package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearInterior(t *testing.T) {
	lin := NewLinear([]float64{0, 1, 3}, []float64{10, 20, 60}, 0.5)

	v, ok := lin.Eval(0.25)
	assert.True(t, ok)
	assert.InDelta(t, 12.5, v, 1e-12)

	v, ok = lin.Eval(2)
	assert.True(t, ok)
	assert.InDelta(t, 40.0, v, 1e-12)

	// Exactly on a sample.
	v, ok = lin.Eval(1)
	assert.True(t, ok)
	assert.InDelta(t, 20.0, v, 1e-12)
}

// Interpolated values must lie between the two bounding samples; the margin
// zones hold the end values instead of extrapolating.
func TestLinearBounded(t *testing.T) {
	xs := []float64{0, 1}
	vs := []float64{10, 20}
	lin := NewLinear(xs, vs, 1)

	for _, x := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		v, ok := lin.Eval(x)
		assert.True(t, ok)
		assert.True(t, v >= 10 && v <= 20, "value %g out of bounds at %g", v, x)
	}

	v, ok := lin.Eval(-0.5)
	assert.True(t, ok)
	assert.Equal(t, 10.0, v, "margin zone holds the end value")

	v, ok = lin.Eval(1.5)
	assert.True(t, ok)
	assert.Equal(t, 20.0, v, "margin zone holds the end value")
}

func TestMarginHalfOpen(t *testing.T) {
	lin := NewLinear([]float64{0, 1}, []float64{10, 20}, 1)

	_, ok := lin.Eval(-1)
	assert.True(t, ok, "lower margin bound is closed")

	_, ok = lin.Eval(2)
	assert.False(t, ok, "upper margin bound is open")

	_, ok = lin.Eval(-1.1)
	assert.False(t, ok)
	_, ok = lin.Eval(2.1)
	assert.False(t, ok)
}

// Mosaic output must exactly equal one of the two nearest input values.
func TestNearestIsMosaic(t *testing.T) {
	nr := NewNearest([]float64{0, 1}, []float64{10, 20}, 1)

	table := []struct{ x, v float64 }{
		{0.25, 10},
		{0.5, 10}, // ties take the lower sample
		{0.75, 20},
		{-0.5, 10},
		{1.5, 20},
	}
	for i, line := range table {
		v, ok := nr.Eval(line.x)
		assert.True(t, ok, "case %d", i+1)
		assert.Equal(t, line.v, v, "case %d", i+1)
	}
}

func TestSinglePointTable(t *testing.T) {
	for _, mosaic := range []bool{false, true} {
		itp := New([]float64{5}, []float64{42}, 1, mosaic)

		v, ok := itp.Eval(4.5)
		assert.True(t, ok, "mosaic=%v", mosaic)
		assert.Equal(t, 42.0, v, "mosaic=%v", mosaic)

		_, ok = itp.Eval(6.5)
		assert.False(t, ok, "mosaic=%v", mosaic)
	}
}

func TestEmptyTable(t *testing.T) {
	_, ok := NewLinear(nil, nil, 1).Eval(0)
	assert.False(t, ok)
}

// Interpolating a constant table must reproduce the constant in both modes.
func TestConstantPreserved(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	vs := []float64{1, 1, 1, 1}

	for _, mosaic := range []bool{false, true} {
		itp := New(xs, vs, 0.5, mosaic)
		for _, x := range []float64{-0.4, 0, 0.7, 1.5, 2.01, 3, 3.4} {
			v, ok := itp.Eval(x)
			assert.True(t, ok, "mosaic=%v x=%g", mosaic, x)
			assert.Equal(t, 1.0, v, "mosaic=%v x=%g", mosaic, x)
		}
	}
}
