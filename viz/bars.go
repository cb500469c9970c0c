package viz

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

// Bars draws one bar per point, centred on its X value and rising from zero
// to its Y value. Unlike plotter.BarChart the width is in data units, so
// bars of several series can be offset against each other on a shared axis.
type Bars struct {
	plotter.XYs

	// Width is the bar width in data units.
	Width float64

	FillColor color.Color

	// LineStyle outlines each bar. A nil colour or zero width disables it.
	LineStyle draw.LineStyle
}

// NewBars returns bars at the given centres and heights.
func NewBars(xys plotter.XYer, width float64) (*Bars, error) {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return nil, errors.NewValidationError("width", "bar width must be positive", width)
	}
	data, err := plotter.CopyXYs(xys)
	if err != nil {
		return nil, errors.Wrap(err, "bars")
	}
	return &Bars{
		XYs:       data,
		Width:     width,
		FillColor: color.Black,
	}, nil
}

// Plot implements plot.Plotter.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, xy := range b.XYs {
		xmin := trX(xy.X - b.Width/2)
		xmax := trX(xy.X + b.Width/2)
		ymin := trY(0)
		ymax := trY(xy.Y)
		pts := []vg.Point{
			{X: xmin, Y: ymin},
			{X: xmax, Y: ymin},
			{X: xmax, Y: ymax},
			{X: xmin, Y: ymax},
		}
		if b.FillColor != nil {
			c.FillPolygon(b.FillColor, c.ClipPolygonXY(pts))
		}
		if b.LineStyle.Color != nil && b.LineStyle.Width > 0 {
			pts = append(pts, pts[0])
			c.StrokeLines(b.LineStyle, c.ClipLinesXY(pts)...)
		}
	}
}

// DataRange implements plot.DataRanger. The Y range always includes zero.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, xy := range b.XYs {
		xmin = math.Min(xmin, xy.X-b.Width/2)
		xmax = math.Max(xmax, xy.X+b.Width/2)
		ymin = math.Min(ymin, xy.Y)
		ymax = math.Max(ymax, xy.Y)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer.
func (b *Bars) Thumbnail(c *draw.Canvas) {
	patch{Color: b.FillColor}.Thumbnail(c)
}
