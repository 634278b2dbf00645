package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/seismolab/tomoviz/geo"
	"github.com/seismolab/tomoviz/section"
)

// WriteSectionRows writes the flattened cross-section grid as text, one
// "distance latitude longitude radius value" row per grid point. The file is
// written even when rows is empty; downstream scripts rely on it existing.
func WriteSectionRows(file string, rows []section.Row) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		fmt.Fprintf(
			w, "%.4f %.4f %.4f %.2f %.6e\n",
			row.Distance, row.Lat, row.Lon, row.R, row.Value,
		)
	}
	return w.Flush()
}

// WriteHistogram writes "binCenter count" rows.
func WriteHistogram(file string, centers, counts []float64) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := range centers {
		fmt.Fprintf(w, "%.6g %g\n", centers[i], counts[i])
	}
	return w.Flush()
}

// WriteRaypathSegments writes sampled raypaths as a GMT multi-segment file:
// "lon lat" rows with a ">" header line starting each path.
func WriteRaypathSegments(file string, paths [][]geo.SamplePoint) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, path := range paths {
		fmt.Fprintln(w, ">")
		for _, sp := range path {
			fmt.Fprintf(w, "%.4f %.4f\n", sp.Point.Lon, sp.Point.Lat)
		}
	}
	return w.Flush()
}
