// Package tomoviz post-processes seismic-waveform-inversion results into
// plottable products: cross-sections through 3-D scalar fields, raypath
// maps, and histograms of fit statistics. Each mode reads list files,
// performs the numerical reduction in memory, and writes text files plus a
// shell script that an external plotting tool renders.
package tomoviz

import (
	"log"
	"math"
	"os"
	"path"

	"github.com/seismolab/tomoviz/geo"
	"github.com/seismolab/tomoviz/hist"
	"github.com/seismolab/tomoviz/io"
	"github.com/seismolab/tomoviz/script"
	"github.com/seismolab/tomoviz/section"
)

// CrossSection runs the cross-section mode end to end: read the scattered
// field, run the sampling/interpolation pipeline, write the flattened grid
// (and its masked companion), and emit + run the GMT script.
func CrossSection(con *io.CrossSectionConfig, logFlag bool) error {
	f, err := io.ReadScalarField(con.Input)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(con.Output, 0777); err != nil {
		return err
	}

	if logFlag {
		minLat, maxLat, minLon, maxLon := f.Bounds()
		log.Printf(
			"Read %d field points spanning lat [%g, %g], lon [%g, %g]",
			len(f), minLat, maxLat, minLon, maxLon,
		)
	}

	par := con.Params()
	rows := section.NewWorker(par, f, logFlag).Run()

	dataName := "crossSection.lst"
	if err := io.WriteSectionRows(path.Join(con.Output, dataName), rows); err != nil {
		return err
	}

	maskedName := ""
	if con.MaskInput != "" {
		// The mask pipeline reproduces the same sample distances and radii,
		// and MaskRows matches rows on those keys; a mask list on a
		// different grid fails there.
		mask, err := io.ReadScalarField(con.MaskInput)
		if err != nil {
			return err
		}
		maskRows := section.NewWorker(par, mask, logFlag).Run()
		masked, err := section.MaskRows(rows, maskRows, con.MaskThreshold)
		if err != nil {
			return err
		}

		maskedName = "crossSectionMasked.lst"
		err = io.WriteSectionRows(path.Join(con.Output, maskedName), masked)
		if err != nil {
			return err
		}
	}

	info := script.SectionInfo{
		DataFile:        dataName,
		MaskedFile:      maskedName,
		ZeroPointRadius: con.ZeroPointRadius,
		ZeroPointName:   con.ZeroPointName,
		Flip:            con.FlipVerticalAxis,
		Scale:           con.Scale,
	}
	info.MaxDistance, info.MinR, info.MaxR = rowExtent(rows)

	scriptName := "crossSection.sh"
	err = script.Write(path.Join(con.Output, scriptName), script.CrossSection(info))
	if err != nil {
		return err
	}
	script.Run(con.Output, scriptName)
	return nil
}

// rowExtent returns the distance and radius extent of the written rows.
// Empty output still gets a script, framed with placeholder extents.
func rowExtent(rows []section.Row) (maxDist, minR, maxR float64) {
	if len(rows) == 0 {
		return 1, 0, 1
	}
	minR, maxR = rows[0].R, rows[0].R
	for _, row := range rows {
		if row.Distance > maxDist {
			maxDist = row.Distance
		}
		if row.R < minR {
			minR = row.R
		}
		if row.R > maxR {
			maxR = row.R
		}
	}
	return maxDist, minR, maxR
}

// Histogram runs the histogram mode: bin one statistic column of a feature
// list, write the counts and a gnuplot script, and optionally render a
// matplotlib quick-look.
func Histogram(con *io.HistogramConfig, logFlag bool) error {
	vals, err := io.ReadColumn(con.Input, con.Column)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(con.Output, 0777); err != nil {
		return err
	}
	if logFlag {
		log.Printf("Read %d values from column %d of %s",
			len(vals), con.Column, con.Input)
	}

	info := hist.Info{
		Min:  con.HistMin,
		Max:  con.HistMax,
		Bins: con.HistBins,
		Log:  con.HistScale == "Log",
	}
	centers, counts := info.Compute(vals)

	dataName := "histogram.lst"
	if err := io.WriteHistogram(path.Join(con.Output, dataName), centers, counts); err != nil {
		return err
	}

	pltName := "histogram.plt"
	err = script.Write(
		path.Join(con.Output, pltName),
		script.Histogram(dataName, con.Name, info.Log),
	)
	if err != nil {
		return err
	}
	script.RunTool(con.Output, "gnuplot", pltName)

	if con.QuickLook {
		hist.QuickLook(
			path.Join(con.Output, "quicklook.png"),
			con.Name, info, centers, counts,
		)
	}
	return nil
}

// RaypathMap runs the raypath-map mode: sample each event-station great
// circle, write the multi-segment path file, and emit + run the map script.
func RaypathMap(con *io.RaypathMapConfig, logFlag bool) error {
	paths, err := io.ReadRaypaths(con.Input)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(con.Output, 0777); err != nil {
		return err
	}

	sampled := make([][]geo.SamplePoint, len(paths))
	for i, p := range paths {
		sampled[i] = geo.NewArc(p.Event, p.Station).Sample(0, 0, con.StepDeg)
	}
	if logFlag {
		log.Printf("Sampled %d raypaths at %g deg", len(paths), con.StepDeg)
	}

	segName := "raypath.lst"
	if err := io.WriteRaypathSegments(path.Join(con.Output, segName), sampled); err != nil {
		return err
	}

	minLat, maxLat, minLon, maxLon := pathExtent(sampled)
	scriptName := "raypathMap.sh"
	err = script.Write(
		path.Join(con.Output, scriptName),
		script.RaypathMap(segName, minLat, maxLat, minLon, maxLon),
	)
	if err != nil {
		return err
	}
	script.Run(con.Output, scriptName)
	return nil
}

func pathExtent(paths [][]geo.SamplePoint) (minLat, maxLat, minLon, maxLon float64) {
	lons := []float64{}
	minLat, maxLat = 90, -90
	for _, ps := range paths {
		for _, sp := range ps {
			if sp.Point.Lat < minLat {
				minLat = sp.Point.Lat
			}
			if sp.Point.Lat > maxLat {
				maxLat = sp.Point.Lat
			}
			lons = append(lons, sp.Point.Lon)
		}
	}
	if len(lons) == 0 {
		// No paths at all; frame the whole globe.
		return -90, 90, -180, 180
	}
	minLon, maxLon = lonExtent(lons)

	// Pad the frame a little past the caught extent.
	const pad = 5
	minLat, maxLat = clampLat(minLat-pad), clampLat(maxLat+pad)
	minLon, maxLon = minLon-pad, maxLon+pad
	return minLat, maxLat, minLon, maxLon
}

// lonExtent frames the longitudes in whichever of the [-180, 180) and
// [0, 360) branch cuts gives the narrower span, so a path crossing the
// antimeridian does not inflate the frame to near-global. Values in the
// second framing can exceed 180, which the plotting tool accepts.
func lonExtent(lons []float64) (minLon, maxLon float64) {
	minLon, maxLon = lons[0], lons[0]
	minShift, maxShift := math.Mod(lons[0]+360, 360), math.Mod(lons[0]+360, 360)
	for _, lon := range lons {
		minLon = math.Min(minLon, lon)
		maxLon = math.Max(maxLon, lon)
		shift := math.Mod(lon+360, 360)
		minShift = math.Min(minShift, shift)
		maxShift = math.Max(maxShift, shift)
	}
	if maxShift-minShift < maxLon-minLon {
		return minShift, maxShift
	}
	return minLon, maxLon
}

func clampLat(lat float64) float64 {
	if lat < -90 {
		return -90
	}
	if lat > 90 {
		return 90
	}
	return lat
}
