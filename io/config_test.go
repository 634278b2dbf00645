package io

import (
	"testing"
)

func validCrossSection() *CrossSectionConfig {
	con := &DefaultCrossSectionWrapper().CrossSection
	con.Input = "in.lst"
	con.Output = "out"
	con.StartLatitude, con.StartLongitude = 10, 130
	con.EndLatitude, con.EndLongitude = 35, 155
	return con
}

func TestCrossSectionDefaultsValid(t *testing.T) {
	con := validCrossSection()

	checks := []struct {
		name string
		ok   bool
	}{
		{"Input", con.ValidInput()},
		{"Output", con.ValidOutput()},
		{"Start", con.ValidStart()},
		{"End", con.ValidEnd()},
		{"Extensions", con.ValidExtensions()},
		{"LatitudeMargin", con.ValidLatitudeMargin()},
		{"LongitudeMargin", con.ValidLongitudeMargin()},
		{"RadiusMargin", con.ValidRadiusMargin()},
		{"Smoothing", con.ValidSmoothing()},
		{"Enlargement", con.ValidEnlargement()},
		{"Scale", con.ValidScale()},
		{"MaskThreshold", con.ValidMaskThreshold()},
	}
	for _, c := range checks {
		if !c.ok {
			t.Errorf("Default config fails the %s check.", c.name)
		}
	}
}

func TestCrossSectionRejections(t *testing.T) {
	con := validCrossSection()
	con.StartLatitude = 91
	if con.ValidStart() {
		t.Error("Latitude 91 accepted.")
	}

	con = validCrossSection()
	con.LatitudeMarginDeg = -0.5
	con.LatitudeMarginKm = 0
	if con.ValidLatitudeMargin() {
		t.Error("Negative margin accepted.")
	}

	con = validCrossSection()
	con.LatitudeMarginKm = 100 // both deg and km now set
	if con.ValidLatitudeMargin() {
		t.Error("Margin in both units accepted.")
	}

	con = validCrossSection()
	con.BeforeExtensionDeg = 2
	con.BeforeExtensionKm = 200
	if con.ValidExtensions() {
		t.Error("Extension in both units accepted.")
	}

	con = validCrossSection()
	con.Smoothing = 0
	if con.ValidSmoothing() {
		t.Error("Zero smoothing accepted.")
	}
}

func TestParamsConversion(t *testing.T) {
	con := validCrossSection()
	con.BeforeExtensionKm = 222.3897 // about 2 degrees at the surface
	con.AfterExtensionDeg = 3

	par := con.Params()
	if par.BeforeDeg < 1.99 || par.BeforeDeg > 2.01 {
		t.Errorf("BeforeDeg = %g, expected about 2.", par.BeforeDeg)
	}
	if par.AfterDeg != 3 {
		t.Errorf("AfterDeg = %g, expected 3.", par.AfterDeg)
	}
	if par.LatMargin.Deg != 0.5 || par.RMargin.Km != 200 {
		t.Errorf("Margins not carried over: %+v", par)
	}
}

func TestHistogramValidation(t *testing.T) {
	con := &DefaultHistogramWrapper().Histogram
	con.HistMin, con.HistMax, con.HistBins = -5, 5, 100

	if !con.ValidHistMin() || !con.ValidHistMax() || !con.ValidHistBins() {
		t.Error("Linear histogram config rejected.")
	}

	con.HistScale = "Log"
	if con.ValidHistMin() {
		t.Error("Log scale with non-positive HistMin accepted.")
	}
	con.HistScale = "sqrt"
	if con.ValidHistScale() {
		t.Error("Unknown HistScale accepted.")
	}
}
