package viz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/censusviz/frame"
	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

var featureNames = []string{
	"age", "education-num", "capital-gain", "capital-loss",
	"hours-per-week", "marital-status", "relationship",
}

func featureFrame(t *testing.T, names []string) *frame.Frame {
	t.Helper()
	f, err := frame.New(names, mat.NewDense(2, len(names), nil))
	require.NoError(t, err)
	return f
}

func TestTopFeatures(t *testing.T) {
	importances := []float64{0.10, 0.05, 0.30, 0.02, 0.08, 0.25, 0.20}

	ranked, err := TopFeatures(importances, featureNames, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 5)

	names := make([]string, len(ranked))
	for i, f := range ranked {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"capital-gain", "marital-status", "relationship", "age", "hours-per-week"}, names)
	assert.Equal(t, 2, ranked[0].Index)

	want := []float64{0.30, 0.55, 0.75, 0.85, 0.93}
	for i := range ranked {
		assert.InDelta(t, want[i], ranked[i].Cumulative, 1e-12)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Weight, ranked[i].Weight)
			assert.GreaterOrEqual(t, ranked[i].Cumulative, ranked[i-1].Cumulative)
		}
	}
}

func TestTopFeaturesTiesKeepColumnOrder(t *testing.T) {
	importances := []float64{0.1, 0.2, 0.1, 0.2, 0.1, 0.1, 0.2}

	ranked, err := TopFeatures(importances, featureNames, 5)
	require.NoError(t, err)

	idx := make([]int, len(ranked))
	for i, f := range ranked {
		idx[i] = f.Index
	}
	assert.Equal(t, []int{1, 3, 6, 0, 2}, idx)
}

func TestTopFeaturesErrors(t *testing.T) {
	t.Run("fewer features than requested", func(t *testing.T) {
		_, err := TopFeatures([]float64{0.5, 0.3, 0.2, 0.0}, featureNames[:4], 5)
		var target *errors.DimensionError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, 5, target.Expected)
		assert.Equal(t, 4, target.Got)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := TopFeatures([]float64{0.5, 0.3, 0.2, 0.0, 0.0, 0.0}, featureNames, 5)
		var target *errors.DimensionError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, 7, target.Expected)
		assert.Equal(t, 6, target.Got)
	})

	t.Run("non-finite importance", func(t *testing.T) {
		importances := []float64{0.1, math.NaN(), 0.3, 0.1, 0.1, 0.2, 0.2}
		_, err := TopFeatures(importances, featureNames, 5)
		var target *errors.NumericalInstabilityError
		assert.True(t, errors.As(err, &target))
	})

	t.Run("non-positive n", func(t *testing.T) {
		_, err := TopFeatures([]float64{1}, []string{"a"}, 0)
		var target *errors.ValidationError
		assert.True(t, errors.As(err, &target))
	})
}

func TestFeaturePlot(t *testing.T) {
	importances := []float64{0.10, 0.05, 0.30, 0.02, 0.08, 0.25, 0.20}
	labels := mat.NewVecDense(2, []float64{0, 1})

	fig, err := FeaturePlot(importances, featureFrame(t, featureNames), labels)
	require.NoError(t, err)

	assert.Equal(t, "feature_importance", fig.Name)
	assert.Empty(t, fig.Title)
	assert.Equal(t, 1, fig.NumPanels())

	p := fig.Panel(0, 0)
	require.NotNil(t, p)
	assert.Equal(t, "Normalized Weights for First Five Most Predictive Features", p.Title.Text)
	assert.Equal(t, "Feature", p.X.Label.Text)
	assert.Equal(t, "Weight", p.Y.Label.Text)
	assert.Equal(t, -0.5, p.X.Min)
	assert.Equal(t, 4.5, p.X.Max)
	assert.InDelta(t, math.Pi/6, p.X.Tick.Label.Rotation, 1e-12)
	assert.True(t, p.Legend.Top)
	assert.True(t, p.Legend.Left)

	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	assert.Equal(t,
		[]string{"capital-gain", "marital-status", "relationship", "age", "hours-per-week"},
		tickLabels(ticks))
	assert.GreaterOrEqual(t, p.Y.Max, 0.93)
}

func TestFeaturePlotIgnoresLabels(t *testing.T) {
	importances := []float64{0.3, 0.2, 0.2, 0.1, 0.1, 0.05, 0.05}
	_, err := FeaturePlot(importances, featureFrame(t, featureNames), nil)
	assert.NoError(t, err)
}

func TestFeaturePlotTooFewFeatures(t *testing.T) {
	names := featureNames[:4]
	_, err := FeaturePlot([]float64{0.4, 0.3, 0.2, 0.1}, featureFrame(t, names), nil)

	var target *errors.DimensionError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 5, target.Expected)
}

func TestFeaturePlotNilFrame(t *testing.T) {
	_, err := FeaturePlot([]float64{1, 2, 3, 4, 5}, nil, nil)
	var target *errors.ValueError
	assert.True(t, errors.As(err, &target))
}
