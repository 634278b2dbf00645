package geo

import (
	"math"
)

// Arc is a directed great-circle arc between two geographic endpoints.
// Positions along the arc are measured in degrees from the start point;
// negative distances walk backwards past the start.
type Arc struct {
	start Point
	u, w  vec // start unit vector and the unit vector 90 degrees ahead of it
	span  float64
}

// SamplePoint is a point along a sampled arc, keyed by its cumulative
// distance in degrees from the first sample.
type SamplePoint struct {
	Distance float64
	Point    Point
}

// NewArc creates the arc from start to end. A degenerate arc (coincident or
// antipodal endpoints) is still usable: PointAt walks along an arbitrary
// great circle through the start point.
func NewArc(start, end Point) Arc {
	u := start.vec()
	pole, ok := u.cross(end.vec()).unit()
	if !ok {
		// Coincident or antipodal endpoints leave the circle underdetermined.
		pole, ok = u.cross(vec{0, 0, 1}).unit()
		if !ok {
			pole = vec{0, 1, 0}
		}
	}
	return Arc{
		start: start,
		u:     u,
		w:     pole.cross(u),
		span:  Distance(start, end),
	}
}

// Span returns the start-to-end distance of the arc in degrees.
func (a Arc) Span() float64 { return a.span }

// PointAt returns the point d degrees from the start along the arc.
func (a Arc) PointAt(d float64) Point {
	th := d * math.Pi / 180
	sin, cos := math.Sin(th), math.Cos(th)
	p := vec{
		a.u[0]*cos + a.w[0]*sin,
		a.u[1]*cos + a.w[1]*sin,
		a.u[2]*cos + a.w[2]*sin,
	}
	return p.point()
}

// Sample extends the arc by before degrees behind the start and after
// degrees past the end, then samples it every step degrees. The first sample
// sits on the extended start at distance 0 and the sample count is exactly
// floor(total/step) + 1. A zero-length extended arc yields a single sample.
func (a Arc) Sample(before, after, step float64) []SamplePoint {
	total := before + a.span + after
	if total <= 0 || step <= 0 {
		return []SamplePoint{{0, a.PointAt(-before)}}
	}

	// The tolerance keeps an exact-multiple span from rounding down a count.
	n := int(math.Floor(total/step+1e-9)) + 1
	pts := make([]SamplePoint, n)
	for i := range pts {
		d := float64(i) * step
		pts[i] = SamplePoint{d, a.PointAt(d - before)}
	}
	return pts
}
