package field

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Position is a discretized geographic sample position. Lat and Lon are in
// degrees, R is the radius in km. Positions read from the same list file
// compare exactly, so Position can be used as a map key.
type Position struct {
	Lat, Lon, R float64
}

// ScalarField maps discretized positions to scalar values. It is built once
// from a list file and never mutated afterwards.
type ScalarField map[Position]float64

// Lats returns the distinct latitudes present in the field, sorted.
func (f ScalarField) Lats() []float64 {
	return f.distinct(func(p Position) float64 { return p.Lat })
}

// Lons returns the distinct longitudes present in the field, sorted.
func (f ScalarField) Lons() []float64 {
	return f.distinct(func(p Position) float64 { return p.Lon })
}

// Radii returns the distinct radii present in the field, sorted.
func (f ScalarField) Radii() []float64 {
	return f.distinct(func(p Position) float64 { return p.R })
}

func (f ScalarField) distinct(key func(Position) float64) []float64 {
	seen := map[float64]bool{}
	for p := range f {
		seen[key(p)] = true
	}
	xs := make([]float64, 0, len(seen))
	for x := range seen {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	return xs
}

// MeanRadius returns the mean of the distinct radii in the field. It is used
// to convert km margins to degrees.
func (f ScalarField) MeanRadius() float64 {
	rs := f.Radii()
	if len(rs) == 0 {
		return 0
	}
	return stat.Mean(rs, nil)
}

// HorizontalInterval estimates the native horizontal grid spacing of the
// field in degrees as the mean gap between consecutive distinct longitudes.
// If the field has fewer than two distinct longitudes, the latitude spacing
// is used instead.
func (f ScalarField) HorizontalInterval() float64 {
	if dl := meanGap(f.Lons()); dl > 0 {
		return dl
	}
	return meanGap(f.Lats())
}

// RadialInterval estimates the native radial layering interval in km.
func (f ScalarField) RadialInterval() float64 {
	return meanGap(f.Radii())
}

func meanGap(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
}

// LonLine returns the west-east trace of the field at a given latitude and
// radius: the distinct longitudes with data there, paired with their values.
func (f ScalarField) LonLine(lat, r float64) Trace {
	var xs, vs []float64
	for p, v := range f {
		if p.Lat == lat && p.R == r {
			xs = append(xs, p.Lon)
			vs = append(vs, v)
		}
	}
	return NewTrace(xs, vs)
}

// LatLine returns the south-north trace of the field at a given longitude
// and radius.
func (f ScalarField) LatLine(lon, r float64) Trace {
	var xs, vs []float64
	for p, v := range f {
		if p.Lon == lon && p.R == r {
			xs = append(xs, p.Lat)
			vs = append(vs, v)
		}
	}
	return NewTrace(xs, vs)
}

// LatRadiusPairs returns the distinct (lat, r) pairs present in the field.
// Ordering is by radius, then latitude.
func (f ScalarField) LatRadiusPairs() [][2]float64 {
	seen := map[[2]float64]bool{}
	for p := range f {
		seen[[2]float64{p.Lat, p.R}] = true
	}
	pairs := make([][2]float64, 0, len(seen))
	for pair := range seen {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][1] != pairs[j][1] {
			return pairs[i][1] < pairs[j][1]
		}
		return pairs[i][0] < pairs[j][0]
	})
	return pairs
}

// Bounds returns the geographic bounding box of the field. It is only used
// for script annotation, so NaNs are returned for an empty field.
func (f ScalarField) Bounds() (minLat, maxLat, minLon, maxLon float64) {
	minLat, maxLat = math.NaN(), math.NaN()
	minLon, maxLon = math.NaN(), math.NaN()
	for p := range f {
		if math.IsNaN(minLat) {
			minLat, maxLat = p.Lat, p.Lat
			minLon, maxLon = p.Lon, p.Lon
			continue
		}
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
	}
	return minLat, maxLat, minLon, maxLon
}
