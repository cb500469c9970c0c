package viz

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

const (
	suptitleSize   = 16
	legendFontSize = 14
	figurePadding  = vg.Length(6)
	panelPadX      = vg.Length(18)
	panelPadY      = vg.Length(18)
)

// LegendEntry is one coloured patch of a figure-level legend.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Figure is a grid of plot panels with an optional suptitle and an optional
// legend laid out in a single row above the grid.
type Figure struct {
	// Name is used as the file stem when the figure is shown on a FileSurface.
	Name string
	// Title is the suptitle. Empty for single-panel figures that carry
	// their own plot title.
	Title  string
	Width  vg.Length
	Height vg.Length
	// Panels is row-major; every row has the same length.
	Panels [][]*plot.Plot
	Legend []LegendEntry
}

// Rows returns the number of panel rows.
func (f *Figure) Rows() int { return len(f.Panels) }

// Cols returns the number of panel columns.
func (f *Figure) Cols() int {
	if len(f.Panels) == 0 {
		return 0
	}
	return len(f.Panels[0])
}

// NumPanels returns the total number of panels.
func (f *Figure) NumPanels() int { return f.Rows() * f.Cols() }

// Panel returns the panel at row, col, or nil when out of range.
func (f *Figure) Panel(row, col int) *plot.Plot {
	if row < 0 || row >= f.Rows() || col < 0 || col >= f.Cols() {
		return nil
	}
	return f.Panels[row][col]
}

// Draw draws the whole figure onto c.
func (f *Figure) Draw(c draw.Canvas) {
	c = draw.Crop(c, figurePadding, -figurePadding, figurePadding, -figurePadding)

	if f.Title != "" {
		sty := headerStyle(suptitleSize)
		c.FillText(sty, vg.Point{X: c.Center().X, Y: c.Max.Y}, f.Title)
		c = draw.Crop(c, 0, 0, 0, -(sty.Height(f.Title) + figurePadding))
	}

	if len(f.Legend) > 0 {
		h := f.drawLegend(c)
		c = draw.Crop(c, 0, 0, 0, -(h + figurePadding))
	}

	if f.NumPanels() == 0 {
		return
	}
	tiles := draw.Tiles{
		Rows: f.Rows(),
		Cols: f.Cols(),
		PadX: panelPadX,
		PadY: panelPadY,
	}
	canvases := plot.Align(f.Panels, tiles, c)
	for j, row := range f.Panels {
		for i, p := range row {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
}

// drawLegend draws the legend entries side by side, centred at the top of c,
// and returns the height it used.
func (f *Figure) drawLegend(c draw.Canvas) vg.Length {
	legends := make([]plot.Legend, len(f.Legend))
	var width, height vg.Length
	for i, e := range f.Legend {
		l := plot.NewLegend()
		l.Top = true
		l.Left = true
		l.TextStyle.Font = font.From(plot.DefaultFont, legendFontSize)
		l.Add(e.Label, patch{Color: e.Color})
		r := l.Rectangle(c)
		width += r.Size().X + 2*figurePadding
		if h := r.Size().Y; h > height {
			height = h
		}
		legends[i] = l
	}

	x := c.Center().X - width/2
	for i := range legends {
		w := legends[i].Rectangle(c).Size().X + 2*figurePadding
		cell := draw.Canvas{
			Canvas: c.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: x + figurePadding, Y: c.Max.Y - height},
				Max: vg.Point{X: x + w - figurePadding, Y: c.Max.Y},
			},
		}
		legends[i].Draw(cell)
		x += w
	}
	return height
}

// WriteTo encodes the figure in the given format. scale multiplies the
// raster resolution and is ignored by vector formats.
func (f *Figure) WriteTo(w io.Writer, format string, scale float64) (n int64, err error) {
	defer errors.Recover(&err, "Figure.WriteTo")

	cw, err := newCanvas(f.Width, f.Height, format, scale)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(cw))
	n, err = cw.WriteTo(w)
	if err != nil {
		return n, errors.Wrapf(err, "write %s figure %q", format, f.Name)
	}
	return n, nil
}

// Save writes the figure to path, inferring the format from its extension.
func (f *Figure) Save(path string, scale float64) (err error) {
	format := formatFromPath(path)
	if !isSupportedFormat(format) {
		return errors.Wrapf(errors.ErrUnknownFormat, "save %q", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %q", path)
		}
	}()

	_, err = f.WriteTo(file, format, scale)
	return err
}

func formatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

var supportedFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
	"svg": true, "pdf": true, "eps": true, "tex": true,
}

func isSupportedFormat(format string) bool {
	return supportedFormats[format]
}

// newCanvas returns a canvas for format. Raster formats are rendered at
// vgimg.DefaultDPI*scale.
func newCanvas(w, h vg.Length, format string, scale float64) (vg.CanvasWriterTo, error) {
	if !isSupportedFormat(format) {
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "format %q", format)
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, errors.NewValidationError("scale", "must be a positive finite number", scale)
	}

	raster := func() *vgimg.Canvas {
		dpi := int(math.Round(vgimg.DefaultDPI * scale))
		if dpi < 1 {
			dpi = 1
		}
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	}
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: raster()}, nil
	}

	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "%v", err)
	}
	return c, nil
}

func headerStyle(size vg.Length) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
}
