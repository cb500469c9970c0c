package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/censusviz/pkg/errors"
	"github.com/YuminosukeSato/censusviz/pkg/log"
	"github.com/YuminosukeSato/censusviz/viz"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath       string
	displayMode      string
	scale            float64
	format           string
	outputDir        string
	logLevel         string
	suppressWarnings bool
	jsonLogs         bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "censusviz",
		Short: "Render census-income exploration and model evaluation charts",
		Long: `censusviz draws the three charts of the census-income exercise:

  distribution  histograms of capital-gain and capital-loss
  evaluate      training/prediction time, accuracy and F-score of up to three learners
  features      the five most important features and their cumulative weight

Figures are written to stdout (display mode "inline") or to files under
--output-dir (display mode "file").`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.displayMode, "display-mode", string(viz.DisplayInline), "where figures go: inline or file")
	flags.Float64Var(&opts.scale, "scale", 2, "raster scale factor over 96 DPI")
	flags.StringVar(&opts.format, "format", "png", "image format: png, jpg, tif, svg, pdf, eps or tex")
	flags.StringVar(&opts.outputDir, "output-dir", ".", "directory for figures in file mode")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.suppressWarnings, "suppress-warnings", true, "discard chart warnings such as clipped values")
	flags.BoolVar(&opts.jsonLogs, "json-logs", false, "write logs as JSON lines instead of console text")

	cmd.AddCommand(
		newDistributionCmd(opts),
		newEvaluateCmd(opts),
		newFeaturesCmd(opts),
	)
	return cmd
}

// loadConfig reads the optional YAML file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, opts *options) (viz.Config, error) {
	cfg := viz.DefaultConfig()
	if opts.configPath != "" {
		data, err := os.ReadFile(opts.configPath)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %q", opts.configPath)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %q", opts.configPath)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("display-mode") {
		cfg.DisplayMode = viz.DisplayMode(opts.displayMode)
	}
	if flags.Changed("scale") {
		cfg.ScaleFactor = opts.scale
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("suppress-warnings") {
		cfg.SuppressWarnings = opts.suppressWarnings
	}
	return cfg, cfg.Validate()
}

// newRenderer builds the logger and renderer for one command run. Inline
// figures go to the command's output stream, logs to its error stream.
func newRenderer(cmd *cobra.Command, opts *options) (*viz.Renderer, log.Logger, error) {
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, nil, err
	}
	base := log.NewZerologLogger(cmd.ErrOrStderr(), level, !opts.jsonLogs)
	log.SetLogger(base)
	logger := base.With(log.ComponentKey, "cli")

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, logger, err
	}
	r, err := viz.Init(cfg, viz.WithLogger(base), viz.WithWriter(cmd.OutOrStdout()))
	if err != nil {
		return nil, logger, err
	}
	return r, logger, nil
}
