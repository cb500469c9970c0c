package viz

import (
	"image/color"

	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

// Palette is an ordered list of series colours.
type Palette []color.Color

// DefaultPalette holds the three learner colours of the evaluate chart.
var DefaultPalette = Palette{
	color.RGBA{R: 0x33, G: 0xCC, B: 0xFF, A: 0xFF},
	color.RGBA{R: 0xFF, G: 0xE6, B: 0x33, A: 0xFF},
	color.RGBA{R: 0xFF, G: 0x33, B: 0x5B, A: 0xFF},
}

var (
	distributionFill = color.RGBA{R: 0x00, G: 0xA0, B: 0xA0, A: 0xFF}
	weightFill       = DefaultPalette[0]
	cumulativeFill   = DefaultPalette[1]
)

// Assign maps each series name to a colour in order. It fails with a
// TooManySeriesError when there are more names than colours, and with a
// ValidationError on duplicate or empty names.
func (p Palette) Assign(op string, names []string) (map[string]color.Color, error) {
	if len(names) > len(p) {
		return nil, errors.NewTooManySeriesError(op, len(names), len(p))
	}
	colors := make(map[string]color.Color, len(names))
	for i, name := range names {
		if name == "" {
			return nil, errors.NewValidationError("series", "name must not be empty", i)
		}
		if _, dup := colors[name]; dup {
			return nil, errors.NewValidationError("series", "duplicate series name", name)
		}
		colors[name] = p[i]
	}
	return colors, nil
}
