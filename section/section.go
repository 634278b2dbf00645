package section

import (
	"fmt"
	"log"
	"sort"

	"github.com/seismolab/tomoviz/field"
	"github.com/seismolab/tomoviz/geo"
	"github.com/seismolab/tomoviz/math/interpolate"
)

// Margin is an extrapolation allowance that can be given either as an angle
// in degrees or as a length in km. Exactly one of the two is set; km values
// are converted to degrees at the radius of the data being interpolated.
type Margin struct {
	Deg, Km float64
}

// deg resolves the margin to degrees at radius r.
func (m Margin) deg(r float64) float64 {
	if m.Km != 0 {
		return geo.KmToDeg(m.Km, r)
	}
	return m.Deg
}

// km resolves the margin to km at radius r.
func (m Margin) km(r float64) float64 {
	if m.Deg != 0 {
		return geo.DegToKm(m.Deg, r)
	}
	return m.Km
}

// Params is the immutable configuration of one cross-section run. It is
// built from the parsed config file before the pipeline starts; no stage
// mutates it.
type Params struct {
	Start, End geo.Point

	// Extensions of the arc beyond its endpoints, in degrees.
	BeforeDeg, AfterDeg float64

	// Smoothing subdivides the native horizontal grid spacing to set the
	// sample step; Enlargement subdivides the nice radial interval so that
	// vertical resolution can differ from horizontal on purpose.
	Smoothing, Enlargement int

	LatMargin, LonMargin, RMargin Margin

	// Mosaic selects nearest-neighbor interpolation instead of linear.
	Mosaic bool
}

// Row is one flattened output sample: a point of the cross-section grid.
type Row struct {
	Distance, Lat, Lon, R, Value float64
}

// Worker runs the cross-section pipeline over one scalar field. Every stage
// is a function of the previous stage's output; a sample point without
// coverage is skipped, never an error.
type Worker struct {
	par Params
	f   field.ScalarField
	log bool

	arc       geo.Arc
	step      float64
	rInterval float64
	samples   []geo.SamplePoint
	resampled field.ScalarField
	traces    []field.Trace
	rows      []Row
}

// NewWorker creates a Worker for the given parameters and field.
func NewWorker(par Params, f field.ScalarField, logFlag bool) *Worker {
	return &Worker{par: par, f: f, log: logFlag}
}

// Run executes the pipeline and returns the flattened output rows. The
// result is deterministic: identical field and parameters give identical
// rows, in identical order.
func (w *Worker) Run() []Row {
	w.resolveEndpoints()
	w.generateSamples()
	w.resampleLongitudes()
	w.interpolateSamples()
	w.resampleRadially()
	return w.rows
}

func (w *Worker) resolveEndpoints() {
	w.arc = geo.NewArc(w.par.Start, w.par.End)

	smoothing := w.par.Smoothing
	if smoothing < 1 {
		smoothing = 1
	}
	w.step = w.f.HorizontalInterval() / float64(smoothing)
	if w.step <= 0 {
		// A field with a single horizontal position has no native spacing.
		w.step = 1
	}

	w.rInterval = NiceInterval(w.f.RadialInterval())
	enlargement := w.par.Enlargement
	if enlargement > 1 {
		w.rInterval /= float64(enlargement)
	}

	if w.log {
		log.Printf(
			"Arc span %.3f deg, sample step %.4f deg, radial interval %.4g km",
			w.arc.Span(), w.step, w.rInterval,
		)
	}
}

func (w *Worker) generateSamples() {
	w.samples = w.arc.Sample(w.par.BeforeDeg, w.par.AfterDeg, w.step)
	if w.log {
		log.Printf("Generated %d sample points", len(w.samples))
	}
}

// sampleLons returns the distinct longitudes of the generated sample points,
// sorted. These are the target longitudes of the west-east resampling stage.
func (w *Worker) sampleLons() []float64 {
	seen := map[float64]bool{}
	for _, sp := range w.samples {
		seen[sp.Point.Lon] = true
	}
	lons := make([]float64, 0, len(seen))
	for lon := range seen {
		lons = append(lons, lon)
	}
	sort.Float64s(lons)
	return lons
}

// resampleLongitudes builds a new field defined only at the sample
// longitudes by interpolating each west-east line of the source field.
// Target longitudes further than the margin from a line's data are left
// absent; that policy keeps extrapolation artifacts out of uncovered
// regions.
func (w *Worker) resampleLongitudes() {
	lons := w.sampleLons()
	w.resampled = field.ScalarField{}

	for _, pair := range w.f.LatRadiusPairs() {
		lat, r := pair[0], pair[1]
		line := w.f.LonLine(lat, r)
		if line.Len() == 0 {
			continue
		}

		margin := w.par.LonMargin.deg(r)
		itp := interpolate.New(line.Xs, line.Vs, margin, w.par.Mosaic)
		for _, lon := range lons {
			if v, ok := itp.Eval(lon); ok {
				w.resampled[field.Position{Lat: lat, Lon: lon, R: r}] = v
			}
		}
	}

	if w.log {
		log.Printf(
			"Resampled %d of %d field points onto %d longitudes",
			len(w.resampled), len(w.f), len(lons),
		)
	}
}

// interpolateSamples builds, for every sample point, a radius-indexed trace
// by interpolating the resampled field along the meridian through the
// sample. The latitude sequence is gap-split first so the interpolation
// never spans a real hole in the data.
func (w *Worker) interpolateSamples() {
	radii := w.f.Radii()
	w.traces = make([]field.Trace, len(w.samples))

	for si, sp := range w.samples {
		for _, r := range radii {
			line := w.resampled.LatLine(sp.Point.Lon, r)
			if line.Len() == 0 {
				continue
			}

			margin := w.par.LatMargin.deg(r)
			run, ok := interpolate.FindRun(line.Xs, sp.Point.Lat, margin)
			if !ok {
				continue
			}
			trimmed := trimToRun(line, run)

			itp := interpolate.New(
				trimmed.Xs, trimmed.Vs, margin, w.par.Mosaic,
			)
			if v, ok := itp.Eval(sp.Point.Lat); ok {
				w.traces[si] = w.traces[si].Append(r, v)
			}
		}
	}
}

// trimToRun restricts a sorted trace to the domain sub-slice run, which
// FindRun returned from the trace's own domain.
func trimToRun(t field.Trace, run []float64) field.Trace {
	lo := 0
	for lo < len(t.Xs) && t.Xs[lo] < run[0] {
		lo++
	}
	return field.Trace{
		Xs: t.Xs[lo : lo+len(run)],
		Vs: t.Vs[lo : lo+len(run)],
	}
}

// resampleRadially maps each sample's radius trace onto the regular radial
// grid and flattens the result into output rows. Samples whose trace came
// out empty are skipped; the row slice may legitimately end up empty.
func (w *Worker) resampleRadially() {
	w.rows = w.rows[:0]
	skipped := 0
	margin := w.par.RMargin.km(w.f.MeanRadius())

	for si, sp := range w.samples {
		t := w.traces[si]
		if t.Len() == 0 {
			skipped++
			continue
		}

		grid := RadialGrid(t.Xs[0], t.Xs[len(t.Xs)-1], margin, w.rInterval)
		itp := interpolate.New(t.Xs, t.Vs, margin, w.par.Mosaic)

		for _, r := range grid {
			if v, ok := itp.Eval(r); ok {
				w.rows = append(w.rows, Row{
					Distance: sp.Distance,
					Lat:      sp.Point.Lat,
					Lon:      sp.Point.Lon,
					R:        r,
					Value:    v,
				})
			}
		}
	}

	if w.log {
		log.Printf(
			"Wrote %d rows; %d of %d samples had no coverage",
			len(w.rows), skipped, len(w.samples),
		)
	}
}

// MaskRows filters rows by a mask run of the same section geometry: a row
// survives when the mask value at its (distance, radius) grid point is at or
// above threshold. Rows with no matching mask point are dropped as uncovered,
// but a mask that shares no grid points at all with rows is an error: it means
// the mask list does not sit on the same grid as the input list.
func MaskRows(rows, mask []Row, threshold float64) ([]Row, error) {
	vals := make(map[[2]float64]float64, len(mask))
	for _, m := range mask {
		vals[[2]float64{m.Distance, m.R}] = m.Value
	}

	matched := 0
	out := []Row{}
	for _, row := range rows {
		v, ok := vals[[2]float64{row.Distance, row.R}]
		if !ok {
			continue
		}
		matched++
		if v >= threshold {
			out = append(out, row)
		}
	}

	if matched == 0 && len(rows) > 0 && len(mask) > 0 {
		return nil, fmt.Errorf(
			"None of the %d mask rows land on the section grid. The mask "+
				"input must lie on the same grid as the value input.",
			len(mask),
		)
	}
	return out, nil
}
