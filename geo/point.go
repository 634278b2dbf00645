package geo

import (
	"math"
)

// EarthRadius is the mean radius of the Earth in km.
const EarthRadius = 6371.0

// Point is a geographic point. Lat and Lon are in degrees.
type Point struct {
	Lat, Lon float64
}

type vec [3]float64

func (p Point) vec() vec {
	lat := p.Lat * math.Pi / 180
	lon := p.Lon * math.Pi / 180
	return vec{
		math.Cos(lat) * math.Cos(lon),
		math.Cos(lat) * math.Sin(lon),
		math.Sin(lat),
	}
}

func (v vec) point() Point {
	lat := math.Asin(v[2]) * 180 / math.Pi
	lon := math.Atan2(v[1], v[0]) * 180 / math.Pi
	return Point{lat, lon}
}

func (v vec) cross(u vec) vec {
	return vec{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

func (v vec) dot(u vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

func (v vec) norm() float64 {
	return math.Sqrt(v.dot(v))
}

func (v vec) unit() (vec, bool) {
	n := v.norm()
	if n == 0 {
		return vec{}, false
	}
	return vec{v[0] / n, v[1] / n, v[2] / n}, true
}

// Distance returns the great-circle distance between two points in degrees.
// The atan2 form stays accurate where acos of the dot product loses digits.
func Distance(p1, p2 Point) float64 {
	u, v := p1.vec(), p2.vec()
	return math.Atan2(u.cross(v).norm(), u.dot(v)) * 180 / math.Pi
}

// KmToDeg converts an arc length in km at radius r to degrees.
func KmToDeg(km, r float64) float64 {
	return km / r * 180 / math.Pi
}

// DegToKm converts an arc length in degrees at radius r to km.
func DegToKm(deg, r float64) float64 {
	return deg * r * math.Pi / 180
}
