package io

import (
	"github.com/seismolab/tomoviz/geo"
	"github.com/seismolab/tomoviz/section"
)

const (
	ExampleCrossSectionFile = `[CrossSection]

#######################
# Required Parameters #
#######################

# List file giving the scattered field as "latitude longitude radius value"
# rows. Latitudes and longitudes are in degrees, radii in km.
Input = path/to/value/list.lst

# Directory which output files will be written to.
Output = path/to/output/dir

# Geographic endpoints of the cross-section arc.
StartLatitude  = 10
StartLongitude = 130
EndLatitude    = 35
EndLongitude   = 155

#######################
# Optional Parameters #
#######################

# Extensions of the arc beyond its endpoints. Each can be given in degrees
# or in km (converted at the Earth's surface), but not both.
# BeforeExtensionDeg = 2
# AfterExtensionDeg  = 2
# BeforeExtensionKm = 200
# AfterExtensionKm  = 200

# Margins limit how far beyond the data the interpolation may reach before a
# query point is considered uncovered. Each margin can be given in degrees
# or in km, but not both. Defaults are 0.5 degrees (200 km for the radius).
# LatitudeMarginDeg  = 0.5
# LongitudeMarginDeg = 0.5
# RadiusMarginKm     = 200

# Mosaic renders nearest-neighbor (blocky) sections instead of linear ones.
# Mosaic = false

# Smoothing subdivides the native horizontal grid spacing to set the sample
# step along the arc. Enlargement subdivides the radial grid interval so
# that vertical resolution differs from horizontal.
# Smoothing   = 1
# Enlargement = 1

# Radius subtracted from the vertical axis, and the name the axis gets in
# the generated script (e.g. 3480 and "height above CMB"). FlipVerticalAxis
# turns the axis into depth.
# ZeroPointRadius = 0
# ZeroPointName   = radius
# FlipVerticalAxis = false

# Half-range of the color scale used by the generated script.
# Scale = 2

# A second list file with the same layout used as a mask: output rows whose
# interpolated mask value falls below MaskThreshold are dropped from the
# companion masked file.
# MaskInput = path/to/mask/list.lst
# MaskThreshold = 0.3

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleHistogramFile = `[Histogram]

#######################
# Required Parameters #
#######################

# List file of data features; one row per record.
Input = path/to/feature/list.lst

# Directory which output files will be written to.
Output = path/to/output/dir

# Zero-based column of the statistic to histogram.
Column = 2

HistMin  = -5
HistMax  = 5
HistBins = 100

# Must be "Log" or "Linear".
HistScale = Linear

#######################
# Optional Parameters #
#######################

# Axis label used in the generated scripts.
# Name = amplitude ratio

# Also render a quick-look PNG through matplotlib.
# QuickLook = false

# ProfileFile = prof.out
# LogFile = log.out`

	ExampleRaypathMapFile = `[RaypathMap]

#######################
# Required Parameters #
#######################

# List file of raypaths as "evtLatitude evtLongitude staLatitude
# staLongitude" rows, in degrees.
Input = path/to/raypath/list.lst

# Directory which output files will be written to.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Sample step along each path in degrees.
# StepDeg = 1

# ProfileFile = prof.out
# LogFile = log.out`
)

type SharedConfig struct {
	// Required
	Input, Output string
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}

type CrossSectionConfig struct {
	SharedConfig

	// Required
	StartLatitude, StartLongitude float64
	EndLatitude, EndLongitude     float64

	// Optional
	BeforeExtensionDeg, BeforeExtensionKm float64
	AfterExtensionDeg, AfterExtensionKm   float64

	LatitudeMarginDeg, LatitudeMarginKm   float64
	LongitudeMarginDeg, LongitudeMarginKm float64
	RadiusMarginDeg, RadiusMarginKm       float64

	Mosaic                 bool
	Smoothing, Enlargement int

	ZeroPointRadius  float64
	ZeroPointName    string
	FlipVerticalAxis bool
	Scale            float64

	MaskInput     string
	MaskThreshold float64
}

type CrossSectionWrapper struct {
	CrossSection CrossSectionConfig
}

func DefaultCrossSectionWrapper() *CrossSectionWrapper {
	con := CrossSectionConfig{}
	con.LatitudeMarginDeg = 0.5
	con.LongitudeMarginDeg = 0.5
	con.RadiusMarginKm = 200
	con.Smoothing = 1
	con.Enlargement = 1
	con.ZeroPointName = "radius"
	con.Scale = 2
	con.MaskThreshold = 0.3
	return &CrossSectionWrapper{con}
}

func validLat(lat float64) bool { return lat >= -90 && lat <= 90 }
func validLon(lon float64) bool { return lon >= -180 && lon < 360 }

// validMargin reports whether exactly one of the deg/km pair is set, and to
// a positive value.
func validMargin(deg, km float64) bool {
	if deg != 0 && km != 0 {
		return false
	}
	return deg > 0 || km > 0
}

func (con *CrossSectionConfig) ValidStart() bool {
	return validLat(con.StartLatitude) && validLon(con.StartLongitude)
}
func (con *CrossSectionConfig) ValidEnd() bool {
	return validLat(con.EndLatitude) && validLon(con.EndLongitude)
}
func (con *CrossSectionConfig) ValidExtensions() bool {
	return con.BeforeExtensionDeg >= 0 && con.BeforeExtensionKm >= 0 &&
		con.AfterExtensionDeg >= 0 && con.AfterExtensionKm >= 0 &&
		!(con.BeforeExtensionDeg != 0 && con.BeforeExtensionKm != 0) &&
		!(con.AfterExtensionDeg != 0 && con.AfterExtensionKm != 0)
}
func (con *CrossSectionConfig) ValidLatitudeMargin() bool {
	return validMargin(con.LatitudeMarginDeg, con.LatitudeMarginKm)
}
func (con *CrossSectionConfig) ValidLongitudeMargin() bool {
	return validMargin(con.LongitudeMarginDeg, con.LongitudeMarginKm)
}
func (con *CrossSectionConfig) ValidRadiusMargin() bool {
	return validMargin(con.RadiusMarginDeg, con.RadiusMarginKm)
}
func (con *CrossSectionConfig) ValidSmoothing() bool {
	return con.Smoothing > 0
}
func (con *CrossSectionConfig) ValidEnlargement() bool {
	return con.Enlargement > 0
}
func (con *CrossSectionConfig) ValidZeroPointRadius() bool {
	return con.ZeroPointRadius >= 0
}
func (con *CrossSectionConfig) ValidScale() bool {
	return con.Scale > 0
}
func (con *CrossSectionConfig) ValidMaskThreshold() bool {
	return con.MaskThreshold >= 0
}

// Params converts the validated configuration into the immutable pipeline
// parameters. Surface km extensions are converted to degrees here; km
// margins are kept as km because their conversion depends on the radius of
// the data being interpolated.
func (con *CrossSectionConfig) Params() section.Params {
	before := con.BeforeExtensionDeg
	if con.BeforeExtensionKm != 0 {
		before = geo.KmToDeg(con.BeforeExtensionKm, geo.EarthRadius)
	}
	after := con.AfterExtensionDeg
	if con.AfterExtensionKm != 0 {
		after = geo.KmToDeg(con.AfterExtensionKm, geo.EarthRadius)
	}

	return section.Params{
		Start:       geo.Point{Lat: con.StartLatitude, Lon: con.StartLongitude},
		End:         geo.Point{Lat: con.EndLatitude, Lon: con.EndLongitude},
		BeforeDeg:   before,
		AfterDeg:    after,
		Smoothing:   con.Smoothing,
		Enlargement: con.Enlargement,
		LatMargin: section.Margin{
			Deg: con.LatitudeMarginDeg, Km: con.LatitudeMarginKm,
		},
		LonMargin: section.Margin{
			Deg: con.LongitudeMarginDeg, Km: con.LongitudeMarginKm,
		},
		RMargin: section.Margin{
			Deg: con.RadiusMarginDeg, Km: con.RadiusMarginKm,
		},
		Mosaic: con.Mosaic,
	}
}

type HistogramConfig struct {
	SharedConfig

	Column int

	HistMin, HistMax float64
	HistBins         int
	HistScale        string

	Name      string
	QuickLook bool
}

type HistogramWrapper struct {
	Histogram HistogramConfig
}

func DefaultHistogramWrapper() *HistogramWrapper {
	con := HistogramConfig{}
	con.HistScale = "Linear"
	con.Name = "value"
	return &HistogramWrapper{con}
}

func (con *HistogramConfig) ValidColumn() bool {
	return con.Column >= 0
}
func (con *HistogramConfig) ValidHistMin() bool {
	return (con.HistScale == "Linear" ||
		(con.HistScale == "Log" && con.HistMin > 0)) &&
		con.HistMin < con.HistMax
}
func (con *HistogramConfig) ValidHistMax() bool {
	return (con.HistScale == "Linear" ||
		(con.HistScale == "Log" && con.HistMax > 0)) &&
		con.HistMin < con.HistMax
}
func (con *HistogramConfig) ValidHistBins() bool {
	return con.HistBins > 0
}
func (con *HistogramConfig) ValidHistScale() bool {
	return con.HistScale == "Linear" || con.HistScale == "Log"
}

type RaypathMapConfig struct {
	SharedConfig

	StepDeg float64
}

type RaypathMapWrapper struct {
	RaypathMap RaypathMapConfig
}

func DefaultRaypathMapWrapper() *RaypathMapWrapper {
	con := RaypathMapConfig{}
	con.StepDeg = 1
	return &RaypathMapWrapper{con}
}

func (con *RaypathMapConfig) ValidStepDeg() bool {
	return con.StepDeg > 0
}
