package tomoviz

import (
	"math"
	"testing"

	"github.com/seismolab/tomoviz/geo"
)

func pathOf(pts ...geo.Point) []geo.SamplePoint {
	ps := make([]geo.SamplePoint, len(pts))
	for i, p := range pts {
		ps[i] = geo.SamplePoint{Distance: float64(i), Point: p}
	}
	return ps
}

func TestPathExtent(t *testing.T) {
	paths := [][]geo.SamplePoint{
		pathOf(geo.Point{Lat: 10, Lon: 20}, geo.Point{Lat: 30, Lon: 40}),
		pathOf(geo.Point{Lat: -5, Lon: 25}),
	}

	minLat, maxLat, minLon, maxLon := pathExtent(paths)
	if minLat != -10 || maxLat != 35 || minLon != 15 || maxLon != 45 {
		t.Errorf(
			"pathExtent = (%g, %g, %g, %g), expected (-10, 35, 15, 45).",
			minLat, maxLat, minLon, maxLon,
		)
	}
}

func TestPathExtentAntimeridian(t *testing.T) {
	// A path hopping the antimeridian must frame the narrow strip around
	// 180, not the whole globe.
	paths := [][]geo.SamplePoint{
		pathOf(geo.Point{Lat: 0, Lon: 170}, geo.Point{Lat: 0, Lon: -170}),
	}

	_, _, minLon, maxLon := pathExtent(paths)
	if maxLon-minLon > 30 {
		t.Errorf(
			"pathExtent framed lon [%g, %g], expected a narrow strip at 180.",
			minLon, maxLon,
		)
	}
	if math.Mod(minLon+360, 360) != 165 || math.Mod(maxLon+360, 360) != 195 {
		t.Errorf(
			"pathExtent framed lon [%g, %g], expected [165, 195].",
			minLon, maxLon,
		)
	}
}

func TestPathExtentEmpty(t *testing.T) {
	minLat, maxLat, minLon, maxLon := pathExtent(nil)
	if minLat != -90 || maxLat != 90 || minLon != -180 || maxLon != 180 {
		t.Errorf(
			"pathExtent(nil) = (%g, %g, %g, %g), expected the whole globe.",
			minLat, maxLat, minLon, maxLon,
		)
	}
}
