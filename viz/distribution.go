package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/censusviz/frame"
	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

// SkewedFeatures are the columns drawn by Distribution, in panel order.
var SkewedFeatures = []string{"capital-gain", "capital-loss"}

const (
	// DistributionBins is the number of histogram bins per panel.
	DistributionBins = 25
	distributionYMax = 2000

	skewedTitle      = "Skewed Distributions of Continuous Census Data Features"
	transformedTitle = "Log-transformed Distributions of Continuous Census Data Features"
)

var (
	distributionTickValues = []float64{0, 500, 1000, 1500, 2000}
	distributionTickLabels = []string{"0", "500", "1000", "1500", ">2000"}
)

// Distribution draws side-by-side histograms of the capital-gain and
// capital-loss columns with the count axis fixed to [0, 2000]. transformed
// only changes the suptitle. Bins taller than 2000 are clipped and reported
// through errors.Warn.
func Distribution(data *frame.Frame, transformed bool) (fig *Figure, err error) {
	defer errors.Recover(&err, "distribution")

	if data == nil {
		return nil, errors.NewValueError("distribution", "dataset is nil")
	}
	for _, name := range SkewedFeatures {
		if !data.Has(name) {
			return nil, errors.NewMissingColumnError("distribution", name, data.Columns())
		}
	}

	fig = &Figure{
		Name:   "distribution",
		Title:  skewedTitle,
		Width:  11 * vg.Inch,
		Height: 5 * vg.Inch,
	}
	if transformed {
		fig.Name = "distribution_transformed"
		fig.Title = transformedTitle
	}

	row := make([]*plot.Plot, 0, len(SkewedFeatures))
	for _, name := range SkewedFeatures {
		p, err := histogramPanel(data, name)
		if err != nil {
			return nil, err
		}
		row = append(row, p)
	}
	fig.Panels = [][]*plot.Plot{row}
	return fig, nil
}

func histogramPanel(data *frame.Frame, name string) (*plot.Plot, error) {
	col, err := data.Column(name)
	if err != nil {
		return nil, err
	}
	values, err := plotter.CopyValues(plotter.Values(col))
	if err != nil {
		return nil, errors.Wrapf(err, "distribution: column %q", name)
	}
	h, err := plotter.NewHist(values, DistributionBins)
	if err != nil {
		return nil, errors.Wrapf(err, "distribution: column %q", name)
	}
	h.FillColor = distributionFill
	h.LineStyle.Width = vg.Points(1)

	title := fmt.Sprintf("'%s' Feature Distribution", name)
	p := newPanel(title, "Value", "Number of Records", panelTitleSize)
	p.Add(horizontalGrid(vg.Points(0.25)), h)

	// 範囲はAddの後で固定する
	p.Y.Min = 0
	p.Y.Max = distributionYMax
	p.Y.Tick.Marker = labelledTicks(distributionTickValues, distributionTickLabels)

	weights := make([]float64, len(h.Bins))
	for i, b := range h.Bins {
		weights[i] = b.Weight
	}
	errors.CheckRange(title, "y", 0, distributionYMax, weights...)
	return p, nil
}
