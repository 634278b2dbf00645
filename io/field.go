package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/seismolab/tomoviz/field"
	"github.com/seismolab/tomoviz/geo"
)

// readTable reads the given columns of a list file as float64s. Current
// upstream table only exposes a panic-on-failure Reader API, so failures are
// recovered back into the returned error.
func readTable(file string, idxs []int) (cols [][]float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	cols = table.TextFile(file).ReadFloat64s(idxs)
	return cols, nil
}

// ReadScalarField reads a scattered-field list file with "latitude longitude
// radius value" rows into a ScalarField. Duplicate positions are an input
// error: the field must key each position uniquely.
func ReadScalarField(file string) (field.ScalarField, error) {
	cols, err := readTable(file, []int{0, 1, 2, 3})
	if err != nil {
		return nil, err
	}
	lats, lons, rs, vs := cols[0], cols[1], cols[2], cols[3]

	f := make(field.ScalarField, len(vs))
	for i := range vs {
		p := field.Position{Lat: lats[i], Lon: lons[i], R: rs[i]}
		if _, dup := f[p]; dup {
			return nil, fmt.Errorf(
				"Duplicate position (%g, %g, %g) in %s.",
				p.Lat, p.Lon, p.R, file,
			)
		}
		f[p] = vs[i]
	}
	return f, nil
}

// ReadColumn reads a single numeric column of a feature list file.
func ReadColumn(file string, col int) ([]float64, error) {
	cols, err := readTable(file, []int{col})
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// Raypath is one event-to-station pair of a raypath list file.
type Raypath struct {
	Event, Station geo.Point
}

// ReadRaypaths reads a raypath list file with "evtLat evtLon staLat staLon"
// rows.
func ReadRaypaths(file string) ([]Raypath, error) {
	cols, err := readTable(file, []int{0, 1, 2, 3})
	if err != nil {
		return nil, err
	}

	paths := make([]Raypath, len(cols[0]))
	for i := range paths {
		paths[i] = Raypath{
			Event:   geo.Point{Lat: cols[0][i], Lon: cols[1][i]},
			Station: geo.Point{Lat: cols[2][i], Lon: cols[3][i]},
		}
	}
	return paths, nil
}
