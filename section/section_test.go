package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismolab/tomoviz/field"
	"github.com/seismolab/tomoviz/geo"
)

func constantField(lats, lons, rs []float64, v float64) field.ScalarField {
	f := field.ScalarField{}
	for _, lat := range lats {
		for _, lon := range lons {
			for _, r := range rs {
				f[field.Position{Lat: lat, Lon: lon, R: r}] = v
			}
		}
	}
	return f
}

func span(x0, dx float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
	}
	return xs
}

// A constant field must come through the whole pipeline unchanged, in both
// interpolation modes.
func TestConstantFieldEndToEnd(t *testing.T) {
	f := constantField(
		span(10, 2.5, 5),   // 5 latitudes
		span(130, 2.5, 3),  // 3 longitudes
		span(3480, 50, 4), // 4 radii
		1.0,
	)

	par := Params{
		Start:       geo.Point{Lat: 12, Lon: 131},
		End:         geo.Point{Lat: 18, Lon: 134},
		Smoothing:   1,
		Enlargement: 1,
		LatMargin:   Margin{Deg: 1.25},
		LonMargin:   Margin{Deg: 1.25},
		RMargin:     Margin{Km: 25},
	}

	for _, mosaic := range []bool{false, true} {
		par.Mosaic = mosaic
		rows := NewWorker(par, f, false).Run()
		require.NotEmpty(t, rows, "mosaic=%v", mosaic)

		for _, row := range rows {
			assert.Equal(t, 1.0, row.Value, "mosaic=%v row=%+v", mosaic, row)
		}

		// Every sample point lies inside the covered region, so each one
		// contributes a full radial trace: grid [3455, 3655) at 50 km.
		arcSpan := geo.Distance(par.Start, par.End)
		samples := int(math.Floor(arcSpan/2.5)) + 1
		assert.Equal(t, 4*samples, len(rows), "mosaic=%v", mosaic)
	}
}

func TestPipelineDeterministic(t *testing.T) {
	f := constantField(span(10, 2.5, 5), span(130, 2.5, 3), span(3480, 50, 4), 1)
	for p := range f {
		// Make the field non-trivial but still deterministic.
		f[p] = p.Lat + p.Lon/10 + p.R/1000
	}

	par := Params{
		Start:       geo.Point{Lat: 12, Lon: 131},
		End:         geo.Point{Lat: 18, Lon: 134},
		Smoothing:   2,
		Enlargement: 1,
		LatMargin:   Margin{Deg: 1.25},
		LonMargin:   Margin{Deg: 1.25},
		RMargin:     Margin{Km: 25},
	}

	rows1 := NewWorker(par, f, false).Run()
	rows2 := NewWorker(par, f, false).Run()
	require.Equal(t, rows1, rows2)
	require.NotEmpty(t, rows1)
}

// The radial grid interval for 50 km native layering and enlargement 2 must
// be 25 km: 50 rounds to the nice coefficient 5e1, halved by the factor.
func TestEnlargedRadialInterval(t *testing.T) {
	f := constantField(span(9, 1, 3), span(129, 1, 3), span(3480, 50, 9), 1)

	par := Params{
		Start:       geo.Point{Lat: 10, Lon: 130},
		End:         geo.Point{Lat: 10, Lon: 130},
		Smoothing:   1,
		Enlargement: 2,
		LatMargin:   Margin{Deg: 1.25},
		LonMargin:   Margin{Deg: 1.25},
		RMargin:     Margin{Km: 25},
	}

	rows := NewWorker(par, f, false).Run()
	require.NotEmpty(t, rows)

	for i := 1; i < len(rows); i++ {
		assert.InDelta(t, 25, rows[i].R-rows[i-1].R, 1e-9)
	}
}

func TestUncoveredSamplesSkipped(t *testing.T) {
	// Two latitude islands with a hole between them; a section crossing the
	// hole keeps running and just emits nothing there.
	f := field.ScalarField{}
	for _, lat := range []float64{0, 1, 20, 21} {
		for _, lon := range span(129, 1, 3) {
			for _, r := range span(3480, 50, 3) {
				f[field.Position{Lat: lat, Lon: lon, R: r}] = 1
			}
		}
	}

	par := Params{
		Start:       geo.Point{Lat: 0, Lon: 130},
		End:         geo.Point{Lat: 21, Lon: 130},
		Smoothing:   1,
		Enlargement: 1,
		LatMargin:   Margin{Deg: 1.25},
		LonMargin:   Margin{Deg: 1.25},
		RMargin:     Margin{Km: 25},
	}

	rows := NewWorker(par, f, false).Run()
	require.NotEmpty(t, rows)

	for _, row := range rows {
		inIsland := row.Lat < 1+1.25 || row.Lat >= 20-1.25
		assert.True(t, inIsland, "row in the coverage hole: %+v", row)
	}
}

func TestNiceInterval(t *testing.T) {
	table := []struct{ raw, nice float64 }{
		{50, 50},
		{47, 50},
		{30, 20},
		{1, 1},
		{0.12, 0.1},
		{3.5, 5},
		{700, 500},
	}
	for i, line := range table {
		assert.InDelta(t, line.nice, NiceInterval(line.raw), 1e-12,
			"case %d: %g", i+1, line.raw)
	}

	assert.Panics(t, func() { NiceInterval(0) })
}

func TestRadialGrid(t *testing.T) {
	grid := RadialGrid(3480, 3880, 25, 25)
	require.Equal(t, 19, len(grid))
	assert.Equal(t, 3455.0, grid[0])
	assert.InDelta(t, 3905, grid[len(grid)-1], 1e-9)

	grid = RadialGrid(3480, 3480, 0, 50)
	require.Equal(t, 1, len(grid))
	assert.Equal(t, 3480.0, grid[0])
}

func TestMaskRows(t *testing.T) {
	rows := []Row{
		{Distance: 0, R: 3480, Value: 1},
		{Distance: 0, R: 3530, Value: 2},
		{Distance: 1, R: 3480, Value: 3},
	}
	mask := []Row{
		{Distance: 0, R: 3480, Value: 0.9},
		{Distance: 0, R: 3530, Value: 0.1},
		// No mask point for (1, 3480).
	}

	kept, err := MaskRows(rows, mask, 0.5)
	require.NoError(t, err)
	require.Equal(t, 1, len(kept))
	assert.Equal(t, 1.0, kept[0].Value)
}

func TestMaskRowsRejectsMismatchedGrid(t *testing.T) {
	rows := []Row{
		{Distance: 0, R: 3480, Value: 1},
		{Distance: 1, R: 3480, Value: 2},
	}
	mask := []Row{
		{Distance: 0.5, R: 3490, Value: 0.9},
		{Distance: 1.5, R: 3490, Value: 0.9},
	}

	_, err := MaskRows(rows, mask, 0.5)
	assert.Error(t, err)

	// An empty mask is not a grid mismatch, just full no-coverage.
	kept, err := MaskRows(rows, nil, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, len(kept))
}
