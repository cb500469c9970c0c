package viz

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/YuminosukeSato/censusviz/frame"
	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

// warningRecorder collects warnings raised through errors.Warn during a test.
type warningRecorder struct {
	mu       sync.Mutex
	warnings []error
}

func (w *warningRecorder) all() []error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]error(nil), w.warnings...)
}

func recordWarnings(t *testing.T) *warningRecorder {
	t.Helper()
	rec := &warningRecorder{}
	errors.SetZerologWarnFunc(nil)
	errors.SetWarningHandler(func(w error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.warnings = append(rec.warnings, w)
	})
	t.Cleanup(func() {
		errors.SetWarningHandler(func(error) {})
	})
	return rec
}

func censusFrame(t *testing.T, gain, loss []float64) *frame.Frame {
	t.Helper()
	age := make([]float64, len(gain))
	for i := range age {
		age[i] = float64(20 + i%50)
	}
	f, err := frame.FromColumns(
		[]string{"age", "capital-gain", "capital-loss"},
		[][]float64{age, gain, loss},
	)
	require.NoError(t, err)
	return f
}

// skewed returns n values, mostly zero with a long tail.
func skewed(n int, scale float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		if i%7 == 0 {
			v[i] = scale * math.Pow(float64(i%13+1), 2)
		}
	}
	return v
}

func record(trainTime, accTrain, fTrain, predTime, accTest, fTest float64) Record {
	return Record{
		MetricTrainTime: trainTime,
		MetricAccTrain:  accTrain,
		MetricFTrain:    fTrain,
		MetricPredTime:  predTime,
		MetricAccTest:   accTest,
		MetricFTest:     fTest,
	}
}

func learner(name string, base float64) LearnerResults {
	return LearnerResults{
		Name: name,
		Records: []Record{
			record(0.01*base, 0.70, 0.40, 0.002, 0.68, 0.38),
			record(0.10*base, 0.80, 0.60, 0.010, 0.79, 0.58),
			record(1.00*base, 0.86, 0.72, 0.090, 0.84, 0.69),
		},
	}
}

func threeLearners() Results {
	return Results{
		learner("GaussianNB", 1),
		learner("DecisionTreeClassifier", 3),
		learner("AdaBoostClassifier", 9),
	}
}

func tickLabels(ticks []plot.Tick) []string {
	labels := make([]string, 0, len(ticks))
	for _, tk := range ticks {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	return labels
}
