package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/seismolab/tomoviz"
	"github.com/seismolab/tomoviz/io"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	// The main function manages input sanitization and calls the secondary
	// main functions for each mode. Configuration errors fail hard here,
	// before any pipeline work starts.

	var (
		crossSection, histogram, raypathMap string
		exampleConfig                       string
		logPath, pprofPath                  string
	)
	vars := map[string]*string{
		"CrossSection":  &crossSection,
		"Histogram":     &histogram,
		"RaypathMap":    &raypathMap,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&crossSection, "CrossSection", "",
		"Configuration file for [CrossSection] mode.",
	)
	flag.StringVar(
		&histogram, "Histogram", "",
		"Configuration file for [Histogram] mode.",
	)
	flag.StringVar(
		&raypathMap, "RaypathMap", "",
		"Configuration file for [RaypathMap] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'CrossSection', 'Histogram', "+
			"and 'RaypathMap'.",
	)
	flag.StringVar(
		&logPath, "Log", "",
		"Location to write log statements to. Default is stderr.",
	)
	flag.StringVar(
		&pprofPath, "PProf", "",
		"Location to write profile to. Default is no profiling.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	fg := &FileGroup{}
	defer fg.Close()

	if logPath != "" {
		lf, err := os.Create(logPath)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(lf)
		fg.log = lf
	}
	if pprofPath != "" {
		pf, err := os.Create(pprofPath)
		if err != nil {
			log.Fatal(err.Error())
		}
		pprof.StartCPUProfile(pf)
		fg.prof = pf
	}

	switch modeName {
	case "CrossSection":
		wrap := io.DefaultCrossSectionWrapper()
		if err := gcfg.ReadFileInto(wrap, crossSection); err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.CrossSection

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidStart() {
			log.Fatal("Invalid 'StartLatitude'/'StartLongitude' values.")
		} else if !con.ValidEnd() {
			log.Fatal("Invalid 'EndLatitude'/'EndLongitude' values.")
		} else if !con.ValidExtensions() {
			log.Fatal(
				"Invalid extensions: each must be non-negative and given " +
					"in degrees or km, not both.",
			)
		} else if !con.ValidLatitudeMargin() {
			log.Fatal("Invalid latitude margin.")
		} else if !con.ValidLongitudeMargin() {
			log.Fatal("Invalid longitude margin.")
		} else if !con.ValidRadiusMargin() {
			log.Fatal("Invalid radius margin.")
		} else if !con.ValidSmoothing() {
			log.Fatal("Invalid 'Smoothing' value.")
		} else if !con.ValidEnlargement() {
			log.Fatal("Invalid 'Enlargement' value.")
		} else if !con.ValidZeroPointRadius() {
			log.Fatal("Invalid 'ZeroPointRadius' value.")
		} else if !con.ValidScale() {
			log.Fatal("Invalid 'Scale' value.")
		} else if !con.ValidMaskThreshold() {
			log.Fatal("Invalid 'MaskThreshold' value.")
		}

		if err := tomoviz.CrossSection(con, true); err != nil {
			log.Fatal(err.Error())
		}

	case "Histogram":
		wrap := io.DefaultHistogramWrapper()
		if err := gcfg.ReadFileInto(wrap, histogram); err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Histogram

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidColumn() {
			log.Fatal("Invalid 'Column' value.")
		} else if !con.ValidHistScale() {
			log.Fatal("Invalid 'HistScale' value.")
		} else if !con.ValidHistMin() || !con.ValidHistMax() {
			log.Fatal("Invalid 'HistMin'/'HistMax' values.")
		} else if !con.ValidHistBins() {
			log.Fatal("Invalid 'HistBins' value.")
		}

		if err := tomoviz.Histogram(con, true); err != nil {
			log.Fatal(err.Error())
		}

	case "RaypathMap":
		wrap := io.DefaultRaypathMapWrapper()
		if err := gcfg.ReadFileInto(wrap, raypathMap); err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.RaypathMap

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidStepDeg() {
			log.Fatal("Invalid 'StepDeg' value.")
		}

		if err := tomoviz.RaypathMap(con, true); err != nil {
			log.Fatal(err.Error())
		}

	case "ExampleConfig":
		switch exampleConfig {
		case "CrossSection":
			fmt.Println(io.ExampleCrossSectionFile)
		case "Histogram":
			fmt.Println(io.ExampleHistogramFile)
		case "RaypathMap":
			fmt.Println(io.ExampleRaypathMapFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'CrossSection', 'Histogram', and " +
					"'RaypathMap'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive
// error if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but tomoviz only accepts "+
				"one mode flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
