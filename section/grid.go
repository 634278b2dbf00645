package section

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// NiceInterval rounds a raw grid interval to the closest "nice" value,
// 1, 2, or 5 times a power of ten, comparing in log space. A non-positive
// interval means the field's radial layering is degenerate, which the
// pipeline cannot recover from, so it panics.
func NiceInterval(x float64) float64 {
	if x <= 0 {
		panic(fmt.Sprintf("Cannot compute a grid interval from spacing %g.", x))
	}

	mag := math.Pow(10, math.Floor(math.Log10(x)))
	c := x / mag

	best, bestDist := 1.0, math.Inf(1)
	for _, cand := range []float64{1, 2, 5, 10} {
		if d := math.Abs(math.Log10(c / cand)); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best * mag
}

// RadialGrid returns the regular radial grid spanning [rMin-margin,
// rMax+margin] with the given interval. The first point sits exactly on
// rMin-margin; the last is the largest on-grid radius not beyond
// rMax+margin.
func RadialGrid(rMin, rMax, margin, interval float64) []float64 {
	if interval <= 0 {
		panic(fmt.Sprintf("Non-positive radial grid interval %g.", interval))
	}

	start, end := rMin-margin, rMax+margin
	// The tolerance keeps an exact-multiple span from rounding down a count.
	n := int(math.Floor((end-start)/interval+1e-9)) + 1
	if n < 1 {
		n = 1
	}

	grid := make([]float64, n)
	if n == 1 {
		grid[0] = start
		return grid
	}
	return floats.Span(grid, start, start+float64(n-1)*interval)
}
