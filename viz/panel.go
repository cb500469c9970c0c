package viz

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	panelTitleSize    = 14
	subpanelTitleSize = 12
	axisLabelSize     = 12
)

// newPanel returns an empty plot with its title and axis labels set.
func newPanel(title, xLabel, yLabel string, titleSize vg.Length) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = titleSize
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// horizontalGrid returns dashed horizontal grid lines at the major y ticks.
func horizontalGrid(width vg.Length) *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = nil
	g.Horizontal = draw.LineStyle{
		Color:  color.Black,
		Width:  width,
		Dashes: []vg.Length{vg.Points(3), vg.Points(3)},
	}
	return g
}

// hline returns a dashed line at y spanning the panel's x range.
func hline(y float64, width vg.Length) *plotter.Function {
	f := plotter.NewFunction(func(float64) float64 { return y })
	f.Samples = 2
	f.LineStyle = draw.LineStyle{
		Color:  color.Black,
		Width:  width,
		Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
	}
	return f
}

// labelledTicks places one major tick per value with the matching label.
func labelledTicks(values []float64, labels []string) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		label := strconv.FormatFloat(v, 'g', -1, 64)
		if i < len(labels) {
			label = labels[i]
		}
		ticks[i] = plot.Tick{Value: v, Label: label}
	}
	return ticks
}
