package viz

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/censusviz/frame"
	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

const (
	// TopFeatureCount is the number of features shown by FeaturePlot.
	TopFeatureCount = 5

	featuresTitle     = "Normalized Weights for First Five Most Predictive Features"
	weightBarWidth    = 0.6
	cumulativeWidth   = 0.2
	cumulativeOffset  = -0.3
	featureLabelAngle = math.Pi / 6
)

// RankedFeature is one entry of an importance ranking.
type RankedFeature struct {
	Name string
	// Index is the feature's column position.
	Index  int
	Weight float64
	// Cumulative is the running sum of weights up to and including this rank.
	Cumulative float64
}

// TopFeatures ranks features by importance, highest first, and returns the
// first n with their cumulative weight. Equal importances keep column order.
func TopFeatures(importances []float64, names []string, n int) ([]RankedFeature, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", "must be positive", n)
	}
	if len(importances) != len(names) {
		return nil, errors.NewDimensionError("feature_plot", len(names), len(importances), 1)
	}
	if len(importances) < n {
		return nil, errors.NewDimensionError("feature_plot", n, len(importances), 1)
	}
	if err := errors.CheckNumericalStability("feature_plot", importances); err != nil {
		return nil, err
	}

	// 降順かつ同値は列順を保つため、符号を反転して安定ソートする
	negated := make([]float64, len(importances))
	floats.ScaleTo(negated, -1, importances)
	indices := make([]int, len(importances))
	floats.ArgsortStable(negated, indices)
	indices = indices[:n]

	weights := make([]float64, n)
	for i, idx := range indices {
		weights[i] = importances[idx]
	}
	cumulative := floats.CumSum(make([]float64, n), weights)

	ranked := make([]RankedFeature, n)
	for i, idx := range indices {
		ranked[i] = RankedFeature{
			Name:       names[idx],
			Index:      idx,
			Weight:     weights[i],
			Cumulative: cumulative[i],
		}
	}
	return ranked, nil
}

// FeaturePlot draws the five most important features of xTrain as bars,
// alongside narrower bars of their cumulative weight. yTrain is accepted to
// mirror the training call and is not used; it may be nil.
func FeaturePlot(importances []float64, xTrain *frame.Frame, yTrain mat.Vector) (fig *Figure, err error) {
	defer errors.Recover(&err, "feature_plot")

	if xTrain == nil {
		return nil, errors.NewValueError("feature_plot", "training features are nil")
	}
	ranked, err := TopFeatures(importances, xTrain.Columns(), TopFeatureCount)
	if err != nil {
		return nil, err
	}

	weights := make(plotter.XYs, len(ranked))
	cumulative := make(plotter.XYs, len(ranked))
	positions := make([]float64, len(ranked))
	labels := make([]string, len(ranked))
	for i, f := range ranked {
		x := float64(i)
		weights[i] = plotter.XY{X: x, Y: f.Weight}
		cumulative[i] = plotter.XY{X: x + cumulativeOffset, Y: f.Cumulative}
		positions[i] = x
		labels[i] = f.Name
	}

	wb, err := NewBars(weights, weightBarWidth)
	if err != nil {
		return nil, err
	}
	wb.FillColor = weightFill
	cb, err := NewBars(cumulative, cumulativeWidth)
	if err != nil {
		return nil, err
	}
	cb.FillColor = cumulativeFill

	p := newPanel(featuresTitle, "Feature", "Weight", suptitleSize)
	p.X.Label.TextStyle.Font.Size = axisLabelSize
	p.Y.Label.TextStyle.Font.Size = axisLabelSize
	p.Add(wb, cb)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Add("Feature Weight", wb)
	p.Legend.Add("Cumulative Feature Weight", cb)

	p.X.Min = -0.5
	p.X.Max = 4.5
	p.X.Tick.Marker = labelledTicks(positions, labels)
	p.X.Tick.Label.Rotation = featureLabelAngle
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return &Figure{
		Name:   "feature_importance",
		Width:  9 * vg.Inch,
		Height: 5 * vg.Inch,
		Panels: [][]*plot.Plot{{p}},
	}, nil
}
