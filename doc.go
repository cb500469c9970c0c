// Package censusviz renders the charts of the census-income classification
// exercise in Go.
//
// The charts are built with gonum/plot and written to any format it supports
// (PNG, JPEG, TIFF, SVG, PDF, EPS), either inline to a writer or as files.
//
// # Packages
//
//   - viz: the chart renderer (Distribution, Evaluate, FeaturePlot) and its
//     presentation configuration
//   - frame: named numeric columns backed by a gonum matrix, with CSV input
//   - pkg/errors: structured errors and the chart warning system
//   - pkg/log: structured logging over zerolog and log/slog
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/censusviz/frame"
//	    "github.com/YuminosukeSato/censusviz/viz"
//	)
//
//	func main() {
//	    f, err := os.Open("census.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer f.Close()
//
//	    data, err := frame.ReadCSV(f)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    cfg := viz.DefaultConfig()
//	    cfg.DisplayMode = viz.DisplayFile
//	    r, err := viz.Init(cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if _, err := r.Distribution(context.Background(), data, false); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Command line
//
// The censusviz command wraps the same renderer:
//
//	censusviz distribution --data census.csv
//	censusviz evaluate --results results.yaml --accuracy 0.2478 --f1 0.2917
//	censusviz features --data features.csv --importances importances.yaml
//
// # Error Handling
//
// Invalid input is reported with typed errors from pkg/errors, for example
// MissingColumnError, MissingMetricError or TooManySeriesError, all carrying
// a stack trace. Values clipped by a fixed axis range raise a
// ClippedRangeWarning through errors.Warn instead of failing.
package censusviz
