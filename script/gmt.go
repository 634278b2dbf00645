// Package script generates the shell scripts that hand the written text
// files to external plotting tools (GMT, gnuplot). It is a thin string
// templating layer: the numeric work is done before any of this runs.
package script

import (
	"fmt"
	"strings"
)

// SectionInfo carries everything the cross-section script needs to frame
// the plot around the already-written data files.
type SectionInfo struct {
	DataFile, MaskedFile string

	MaxDistance float64
	MinR, MaxR  float64

	// The vertical axis shows r - ZeroPointRadius, or ZeroPointRadius - r
	// when flipped, labeled ZeroPointName.
	ZeroPointRadius float64
	ZeroPointName   string
	Flip            bool

	// Half-range of the symmetric color scale.
	Scale float64
}

func (info SectionInfo) vertical(r float64) float64 {
	if info.Flip {
		return info.ZeroPointRadius - r
	}
	return r - info.ZeroPointRadius
}

// CrossSection returns the shell script text that renders one written
// cross-section file (and its masked companion, if present) with GMT.
func CrossSection(info SectionInfo) string {
	v0, v1 := info.vertical(info.MinR), info.vertical(info.MaxR)
	if v0 > v1 {
		v0, v1 = v1, v0
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "#!/bin/sh\n# Generated cross-section plot script.\n\n")
	fmt.Fprintf(b, "R='-R0/%.4f/%.4f/%.4f'\n", info.MaxDistance, v0, v1)
	fmt.Fprintf(b, "J='-JX15/10'\n\n")
	fmt.Fprintf(b,
		"gmt makecpt -Cpolar -T-%g/%g -I > section.cpt\n\n",
		info.Scale, info.Scale,
	)

	sign := "-"
	if info.Flip {
		sign = "+"
	}
	// Column layout of the data files: distance lat lon radius value.
	fmt.Fprintf(b,
		"awk '{print $1, %s($4 - %g), $5}' %s |\n"+
			"    gmt xyz2grd -Gsection.grd $R -I%.4f/%.4f\n",
		sign, info.ZeroPointRadius, info.DataFile,
		gridEstimate(info.MaxDistance), gridEstimate(v1-v0),
	)
	fmt.Fprintf(b,
		"gmt grdimage section.grd $R $J -Csection.cpt "+
			"-Bxa+l'distance (deg)' -Bya+l'%s (km)' -BWSne -K > section.ps\n",
		info.ZeroPointName,
	)

	if info.MaskedFile != "" {
		fmt.Fprintf(b,
			"\nawk '{print $1, %s($4 - %g), $5}' %s |\n"+
				"    gmt xyz2grd -Gmasked.grd $R -I%.4f/%.4f\n",
			sign, info.ZeroPointRadius, info.MaskedFile,
			gridEstimate(info.MaxDistance), gridEstimate(v1-v0),
		)
		fmt.Fprintf(b,
			"gmt grdimage masked.grd $R $J -Csection.cpt -O -K >> section.ps\n",
		)
	}

	fmt.Fprintf(b,
		"\ngmt psscale -Csection.cpt -Dx16/0+w10/0.5 -Bxa -O >> section.ps\n",
	)
	return b.String()
}

// gridEstimate picks a plausible grid spacing for xyz2grd from the axis
// span; the plotting tool resamples anyway, so only the order of magnitude
// matters.
func gridEstimate(span float64) float64 {
	if span <= 0 {
		return 1
	}
	return span / 200
}

// RaypathMap returns the shell script text that draws the sampled raypath
// segment file on a coastline map.
func RaypathMap(segmentFile string, minLat, maxLat, minLon, maxLon float64) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "#!/bin/sh\n# Generated raypath map script.\n\n")
	fmt.Fprintf(b, "R='-R%.1f/%.1f/%.1f/%.1f'\n", minLon, maxLon, minLat, maxLat)
	fmt.Fprintf(b, "J='-JQ15'\n\n")
	fmt.Fprintf(b,
		"gmt pscoast $R $J -Ba -W0.3 -Ggray90 -K > raypaths.ps\n",
	)
	fmt.Fprintf(b,
		"gmt psxy %s $R $J -W0.4,red -O >> raypaths.ps\n", segmentFile,
	)
	return b.String()
}

// Histogram returns the gnuplot script text for a written histogram file.
func Histogram(dataFile, name string, logScale bool) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "set terminal pngcairo\nset output 'histogram.png'\n")
	fmt.Fprintf(b, "set xlabel '%s'\nset ylabel 'count'\n", name)
	if logScale {
		fmt.Fprintf(b, "set logscale x\n")
	}
	fmt.Fprintf(b, "set style fill solid 0.6\n")
	fmt.Fprintf(b,
		"plot '%s' using 1:2 with boxes notitle\n", dataFile,
	)
	return b.String()
}
