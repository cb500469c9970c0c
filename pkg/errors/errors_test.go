package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMissingColumnError(t *testing.T) {
	err := NewMissingColumnError("distribution", "capital-loss", []string{"age", "capital-gain"})

	want := `censusviz: distribution: column "capital-loss" not found (available: age, capital-gain)`
	assert.Equal(t, want, err.Error())

	// スタックトレースの存在確認
	formatted := fmt.Sprintf("%+v", err)
	assert.Contains(t, formatted, "errors_test.go")

	var colErr *MissingColumnError
	require.True(t, As(err, &colErr))
	assert.Equal(t, "capital-loss", colErr.Column)
}

func TestNewMissingMetricError(t *testing.T) {
	err := NewMissingMetricError("SVC", 2, "f_test")

	assert.Equal(t, `censusviz: evaluate: learner "SVC" record 2 has no metric "f_test"`, err.Error())

	var metricErr *MissingMetricError
	require.True(t, As(err, &metricErr))
	assert.Equal(t, 2, metricErr.Index)
}

func TestNewTooManySeriesError(t *testing.T) {
	err := NewTooManySeriesError("evaluate", 4, 3)

	assert.Equal(t, "censusviz: evaluate: too many series: 4 series but only 3 colors available", err.Error())

	var seriesErr *TooManySeriesError
	require.True(t, As(err, &seriesErr))
	assert.Equal(t, 4, seriesErr.Series)
	assert.Equal(t, 3, seriesErr.Available)
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("feature_plot", 5, 3, 1)

	want := "censusviz: feature_plot: dimension mismatch on axis 1 (features). Expected 5, got 3"
	assert.Equal(t, want, err.Error())

	var dimErr *DimensionError
	assert.True(t, As(err, &dimErr))
}

func TestNewValueError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		message string
		want    string
	}{
		{
			name:    "empty results",
			op:      "evaluate",
			message: "results table is empty",
			want:    "censusviz: evaluate: results table is empty",
		},
		{
			name:    "bad scale",
			op:      "Init",
			message: "scale factor must be positive",
			want:    "censusviz: Init: scale factor must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValueError(tt.op, tt.message)
			assert.Equal(t, tt.want, err.Error())

			var valErr *ValueError
			assert.True(t, As(err, &valErr))
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("display_mode", "must be inline or file", "window")
	assert.Equal(t, "censusviz: validation failed for parameter 'display_mode': must be inline or file (got: window)", err.Error())
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "reading census.csv")

	assert.True(t, Is(wrapped, ErrEmptyData))
	assert.Contains(t, wrapped.Error(), "reading census.csv")
	assert.Contains(t, wrapped.Error(), "empty data")
}

func TestWrapf(t *testing.T) {
	base := NewDimensionError("frame.New", 3, 2, 1)
	wrapped := Wrapf(base, "loading %s", "features.csv")

	assert.True(t, strings.HasPrefix(wrapped.Error(), "loading features.csv: "))

	var dimErr *DimensionError
	require.True(t, As(wrapped, &dimErr))
	assert.Equal(t, 3, dimErr.Expected)
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Error().EmbedObject(&TooManySeriesError{Op: "evaluate", Series: 5, Available: 3}).Msg("failed")

	out := buf.String()
	assert.Contains(t, out, `"type":"TooManySeriesError"`)
	assert.Contains(t, out, `"series":5`)
	assert.Contains(t, out, `"available":3`)
}

func TestWarnRouting(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(error) {})

	Warn(NewClippedRangeWarning("Accuracy Score on Testing Set", "y", 0, 1, 1.2))

	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error(), "outside the fixed y range [0, 1]")

	// zerologが設定されている場合はそちらが優先される
	var zl []error
	SetZerologWarnFunc(func(w error) { zl = append(zl, w) })
	defer SetZerologWarnFunc(nil)

	Warn(NewClippedRangeWarning("p", "y", 0, 2000, 2500))
	assert.Len(t, got, 1)
	assert.Len(t, zl, 1)
}

func TestCheckNumericalStability(t *testing.T) {
	assert.NoError(t, CheckNumericalStability("feature_plot", []float64{0.1, 0.2, 0.3}))

	err := CheckNumericalStability("feature_plot", []float64{0.1, math.NaN(), 0.3})
	require.Error(t, err)

	var numErr *NumericalInstabilityError
	require.True(t, As(err, &numErr))
	assert.Equal(t, "feature_plot", numErr.Operation)
	assert.Len(t, numErr.Values, 1)

	assert.Error(t, CheckScalar("evaluate", math.Inf(1)))
	assert.NoError(t, CheckScalar("evaluate", 0.5))
}

func TestCheckRange(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(error) {})

	n := CheckRange("F-score on Training Subset", "y", 0, 1, 0.2, 1.5, -0.1, 1)
	assert.Equal(t, 2, n)
	assert.Len(t, got, 2)
}
