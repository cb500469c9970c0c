package viz

import (
	"io"
	"os"
	"strings"

	"github.com/YuminosukeSato/censusviz/pkg/errors"
	"github.com/YuminosukeSato/censusviz/pkg/log"
)

// DisplayMode selects the output surface figures are shown on.
type DisplayMode string

const (
	// DisplayInline writes each encoded figure to an io.Writer (stdout by
	// default), the way a notebook shows plots inline.
	DisplayInline DisplayMode = "inline"
	// DisplayFile writes each figure to OutputDir/<name>.<Format>.
	DisplayFile DisplayMode = "file"
)

// Config holds the process-wide presentation settings.
type Config struct {
	DisplayMode DisplayMode `yaml:"display_mode"`
	// ScaleFactor multiplies the 96 DPI raster resolution; 2 is retina.
	ScaleFactor      float64 `yaml:"scale_factor"`
	SuppressWarnings bool    `yaml:"suppress_warnings"`
	OutputDir        string  `yaml:"output_dir"`
	Format           string  `yaml:"format"`
}

// DefaultConfig returns inline display at retina scale with warnings
// suppressed, encoded as PNG.
func DefaultConfig() Config {
	return Config{
		DisplayMode:      DisplayInline,
		ScaleFactor:      2,
		SuppressWarnings: true,
		OutputDir:        ".",
		Format:           "png",
	}
}

// Validate checks the configuration and normalises the format name.
func (c *Config) Validate() error {
	switch c.DisplayMode {
	case DisplayInline, DisplayFile:
	default:
		return errors.NewValidationError("display_mode", "must be inline or file", c.DisplayMode)
	}
	if c.ScaleFactor <= 0 {
		return errors.NewValidationError("scale_factor", "must be positive", c.ScaleFactor)
	}
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if !isSupportedFormat(c.Format) {
		return errors.NewValidationError("format", "unsupported image format", c.Format)
	}
	if c.DisplayMode == DisplayFile && c.OutputDir == "" {
		c.OutputDir = "."
	}
	return nil
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used by the renderer and, unless warnings are
// suppressed, for chart warnings.
func WithLogger(l log.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithSurface replaces the surface derived from Config.DisplayMode.
func WithSurface(s Surface) Option {
	return func(r *Renderer) {
		r.surface = s
	}
}

// WithWriter sets the destination of inline display.
func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		r.inline = w
	}
}

// applyWarnings routes chart warnings according to the configuration.
func applyWarnings(cfg Config, logger log.Logger) {
	if cfg.SuppressWarnings {
		errors.SetZerologWarnFunc(nil)
		errors.SetWarningHandler(func(error) {})
		return
	}
	if zl, ok := logger.(*log.ZerologLogger); ok {
		errors.SetZerologWarnFunc(zl.WarnFunc())
		return
	}
	errors.SetZerologWarnFunc(nil)
	errors.SetWarningHandler(func(w error) {
		logger.Warn("chart warning", "warning", w.Error())
	})
}

func defaultInline() io.Writer {
	return os.Stdout
}
