// Package log defines standard attribute keys for chart rendering.
//
// Using these keys keeps log lines from the library, the CLI, and the demo
// consistent, following a hierarchical naming convention ("chart.kind",
// "data.samples") so they can be filtered by prefix.

package log

// Chart and Operation Context
const (
	// ComponentKey identifies which package is logging.
	// Examples: "viz", "frame", "cli"
	ComponentKey = "component"

	// ChartKindKey identifies which of the three charts is being built.
	ChartKindKey = "chart.kind"

	// ChartTitleKey records the suptitle or single-panel title of a figure.
	ChartTitleKey = "chart.title"

	// PanelsKey records the number of sub-panels in a figure.
	PanelsKey = "chart.panels"

	// SeriesKey records the number of coloured series (learners) in a figure.
	SeriesKey = "chart.series"

	// OperationKey specifies the operation being performed.
	OperationKey = "operation"
)

// Data Shape
const (
	// SamplesKey indicates the number of rows in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of feature columns.
	FeaturesKey = "data.features"

	// ColumnKey names a dataset column.
	ColumnKey = "data.column"

	// BinsKey records the number of histogram bins.
	BinsKey = "data.bins"
)

// Output
const (
	// DisplayModeKey records where figures go: "inline" or "file".
	DisplayModeKey = "output.display_mode"

	// FormatKey records the image encoding, e.g. "png" or "svg".
	FormatKey = "output.format"

	// ScaleKey records the raster scale factor.
	ScaleKey = "output.scale"

	// OutputLocationKey records where a figure was written.
	OutputLocationKey = "output.location"

	// BytesKey records the encoded figure size in bytes.
	BytesKey = "output.bytes"
)

// Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// SuggestionKey provides a hint for resolving the issue.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	// Chart kinds
	ChartDistribution = "distribution"
	ChartEvaluate     = "evaluate"
	ChartFeatures     = "feature_plot"

	// Operations
	OperationBuild = "build"
	OperationShow  = "show"
	OperationLoad  = "load"

	// Error codes
	ErrorMissingColumn     = "MISSING_COLUMN"
	ErrorMissingMetric     = "MISSING_METRIC"
	ErrorTooManySeries     = "TOO_MANY_SERIES"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorInvalidInput      = "INVALID_INPUT"
)
