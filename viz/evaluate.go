package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

const (
	// BarWidth is the width of one learner's bar, in training-size units.
	BarWidth = 0.3

	evaluateTitle = "Performance Metrics for Three Supervised Learning Models"
)

var (
	evaluateTickValues = []float64{0.45, 1.45, 2.45}

	evaluateTitles = map[string]string{
		MetricTrainTime: "Model Training",
		MetricAccTrain:  "Accuracy Score on Training Subset",
		MetricFTrain:    "F-score on Training Subset",
		MetricPredTime:  "Model Predicting",
		MetricAccTest:   "Accuracy Score on Testing Set",
		MetricFTest:     "F-score on Testing Set",
	}

	evaluateYLabels = map[string]string{
		MetricTrainTime: "Time (in seconds)",
		MetricAccTrain:  "Accuracy Score",
		MetricFTrain:    "F-score",
		MetricPredTime:  "Time (in seconds)",
		MetricAccTest:   "Accuracy Score",
		MetricFTest:     "F-score",
	}
)

// Evaluate draws a 2x3 grid of bar charts comparing up to three learners
// over the three training sizes. accuracy and f1 are the naive predictor's
// scores, drawn as dashed reference lines on the score panels.
func Evaluate(results Results, accuracy, f1 float64) (fig *Figure, err error) {
	defer errors.Recover(&err, "evaluate")

	if err := results.Validate(); err != nil {
		return nil, err
	}
	if err := errors.CheckNumericalStability("evaluate", []float64{accuracy, f1}); err != nil {
		return nil, err
	}
	names := results.Names()
	colors, err := DefaultPalette.Assign("evaluate", names)
	if err != nil {
		return nil, err
	}

	fig = &Figure{
		Name:   "evaluate",
		Title:  evaluateTitle,
		Width:  11 * vg.Inch,
		Height: 7 * vg.Inch,
		Panels: [][]*plot.Plot{make([]*plot.Plot, 3), make([]*plot.Plot, 3)},
	}
	for j, metric := range Metrics {
		p, err := metricPanel(results, colors, metric, accuracy, f1)
		if err != nil {
			return nil, err
		}
		fig.Panels[j/3][j%3] = p
	}
	for _, name := range names {
		fig.Legend = append(fig.Legend, LegendEntry{Label: name, Color: colors[name]})
	}
	return fig, nil
}

func metricPanel(results Results, colors map[string]color.Color, metric string, accuracy, f1 float64) (*plot.Plot, error) {
	title := evaluateTitles[metric]
	p := newPanel(title, "Training Set Size", evaluateYLabels[metric], subpanelTitleSize)

	var scores []float64
	for k, learner := range results {
		ys := results.Series(k, metric)
		if err := errors.CheckNumericalStability("evaluate", ys); err != nil {
			return nil, err
		}
		xys := make(plotter.XYs, len(ys))
		for i, y := range ys {
			xys[i].X = float64(i) + float64(k)*BarWidth
			xys[i].Y = y
		}
		b, err := NewBars(xys, BarWidth)
		if err != nil {
			return nil, err
		}
		b.FillColor = colors[learner.Name]
		p.Add(b)
		scores = append(scores, ys...)
	}

	var baseline float64
	score := true
	switch metric {
	case MetricAccTrain, MetricAccTest:
		baseline = accuracy
	case MetricFTrain, MetricFTest:
		baseline = f1
	default:
		score = false
	}
	if score {
		p.Add(hline(baseline, vg.Points(1)))
		p.Y.Min = 0
		p.Y.Max = 1
		errors.CheckRange(title, "y", 0, 1, append(scores, baseline)...)
	}

	p.X.Min = -0.1
	p.X.Max = 3.0
	p.X.Tick.Marker = labelledTicks(evaluateTickValues, TrainingSizes)
	return p, nil
}
