package viz

import (
	"context"
	"io"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/censusviz/frame"
	"github.com/YuminosukeSato/censusviz/pkg/log"
)

// Renderer builds the census charts and shows them on its surface.
type Renderer struct {
	cfg     Config
	logger  log.Logger
	surface Surface
	inline  io.Writer
}

// Init validates cfg, applies the process-wide warning routing and returns a
// renderer. Calling Init again replaces the warning routing.
func Init(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.GetLoggerWithName("viz")
	}
	if r.surface == nil {
		r.surface = r.defaultSurface()
	}
	applyWarnings(cfg, r.logger)

	r.logger.Debug("renderer initialised",
		log.DisplayModeKey, string(cfg.DisplayMode),
		log.FormatKey, cfg.Format,
		log.ScaleKey, cfg.ScaleFactor,
	)
	return r, nil
}

func (r *Renderer) defaultSurface() Surface {
	if r.cfg.DisplayMode == DisplayFile {
		return &FileSurface{Dir: r.cfg.OutputDir, Format: r.cfg.Format, Scale: r.cfg.ScaleFactor}
	}
	w := r.inline
	if w == nil {
		w = defaultInline()
	}
	return &WriterSurface{W: w, Format: r.cfg.Format, Scale: r.cfg.ScaleFactor}
}

// Config returns the validated configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Distribution builds the distribution figure and shows it.
func (r *Renderer) Distribution(ctx context.Context, data *frame.Frame, transformed bool) (*Figure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.logger.With(log.ChartKindKey, log.ChartDistribution)
	if data != nil {
		rows, cols := data.Dims()
		logger.Debug("building figure", log.SamplesKey, rows, log.FeaturesKey, cols, log.BinsKey, DistributionBins)
	}
	fig, err := Distribution(data, transformed)
	if err != nil {
		logger.Error("failed to build figure", err)
		return nil, err
	}
	return fig, r.show(ctx, logger, fig)
}

// Evaluate builds the learner comparison figure and shows it.
func (r *Renderer) Evaluate(ctx context.Context, results Results, accuracy, f1 float64) (*Figure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.logger.With(log.ChartKindKey, log.ChartEvaluate)
	logger.Debug("building figure", log.SeriesKey, len(results))
	fig, err := Evaluate(results, accuracy, f1)
	if err != nil {
		logger.Error("failed to build figure", err)
		return nil, err
	}
	return fig, r.show(ctx, logger, fig)
}

// FeaturePlot builds the feature importance figure and shows it.
func (r *Renderer) FeaturePlot(ctx context.Context, importances []float64, xTrain *frame.Frame, yTrain mat.Vector) (*Figure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.logger.With(log.ChartKindKey, log.ChartFeatures)
	logger.Debug("building figure", log.FeaturesKey, len(importances))
	fig, err := FeaturePlot(importances, xTrain, yTrain)
	if err != nil {
		logger.Error("failed to build figure", err)
		return nil, err
	}
	return fig, r.show(ctx, logger, fig)
}

// Show shows an already built figure on the renderer's surface.
func (r *Renderer) Show(ctx context.Context, fig *Figure) error {
	return r.show(ctx, r.logger, fig)
}

func (r *Renderer) show(ctx context.Context, logger log.Logger, fig *Figure) error {
	start := time.Now()
	location, err := r.surface.Show(ctx, fig.Name, fig)
	if err != nil {
		logger.Error("failed to show figure", err, log.OperationKey, log.OperationShow)
		return err
	}
	logger.Info("figure shown",
		log.OperationKey, log.OperationShow,
		log.ChartTitleKey, figureTitle(fig),
		log.PanelsKey, fig.NumPanels(),
		log.OutputLocationKey, location,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

func figureTitle(fig *Figure) string {
	if fig.Title != "" {
		return fig.Title
	}
	if p := fig.Panel(0, 0); p != nil {
		return p.Title.Text
	}
	return fig.Name
}
