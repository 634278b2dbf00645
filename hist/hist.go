// Package hist bins fit-statistic columns from data-feature lists.
package hist

import (
	"fmt"
	"math"
	"sort"

	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Info describes one histogram: the bin range, bin count, and whether the
// bins are spaced logarithmically.
type Info struct {
	Min, Max float64
	Bins     int
	Log      bool
}

// Compute bins the given values and returns the bin centers paired with the
// counts. Values outside the half-open [Min, Max) are dropped, matching how
// the plotting range clips them anyway.
func (info Info) Compute(values []float64) (centers, counts []float64) {
	if info.Bins <= 0 || !(info.Min < info.Max) {
		panic(fmt.Sprintf(
			"Malformed histogram range [%g, %g] with %d bins.",
			info.Min, info.Max, info.Bins,
		))
	}

	dividers := info.dividers()

	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= dividers[0] && v < dividers[len(dividers)-1] {
			kept = append(kept, v)
		}
	}
	sort.Float64s(kept)

	counts = stat.Histogram(nil, dividers, kept, nil)

	centers = make([]float64, info.Bins)
	for i := range centers {
		if info.Log {
			centers[i] = math.Sqrt(dividers[i] * dividers[i+1])
		} else {
			centers[i] = (dividers[i] + dividers[i+1]) / 2
		}
	}
	return centers, counts
}

func (info Info) dividers() []float64 {
	dividers := make([]float64, info.Bins+1)
	if info.Log {
		floats.Span(dividers, math.Log10(info.Min), math.Log10(info.Max))
		for i, d := range dividers {
			dividers[i] = math.Pow(10, d)
		}
		// Span rounding must not clip the extreme values.
		dividers[0], dividers[info.Bins] = info.Min, info.Max
		return dividers
	}
	return floats.Span(dividers, info.Min, info.Max)
}

// QuickLook renders the histogram to a PNG through matplotlib. It is a
// convenience for interactive runs; the gnuplot script written alongside the
// text output is the canonical renderer.
func QuickLook(fname, name string, info Info, centers, counts []float64) {
	plt.Figure()
	plt.Plot(centers, counts, "k", plt.LW(2))
	plt.XLabel(name, plt.FontSize(16))
	plt.YLabel("count", plt.FontSize(16))
	if info.Log {
		plt.XScale("log")
	}
	plt.SaveFig(fname)
	plt.Execute()
}
