package viz

import (
	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

// Metric keys of a per-size measurement record.
const (
	MetricTrainTime = "train_time"
	MetricAccTrain  = "acc_train"
	MetricFTrain    = "f_train"
	MetricPredTime  = "pred_time"
	MetricAccTest   = "acc_test"
	MetricFTest     = "f_test"
)

// Metrics lists the six metric keys in evaluate panel order (row-major).
var Metrics = []string{
	MetricTrainTime, MetricAccTrain, MetricFTrain,
	MetricPredTime, MetricAccTest, MetricFTest,
}

// TrainingSizes labels the three training-size buckets.
var TrainingSizes = []string{"1%", "10%", "100%"}

// Record maps metric names to their measured value for one training size.
type Record map[string]float64

// LearnerResults holds one learner's records, one per training-size bucket.
type LearnerResults struct {
	Name    string   `yaml:"name"`
	Records []Record `yaml:"records"`
}

// Results is the ordered results table of the evaluate chart. Order decides
// bar offsets and colour assignment.
type Results []LearnerResults

// Names returns the learner names in order.
func (r Results) Names() []string {
	names := make([]string, len(r))
	for i, l := range r {
		names[i] = l.Name
	}
	return names
}

// Validate checks that the table is non-empty, every learner is named and has
// one record per training size, and every record carries all six metrics.
func (r Results) Validate() error {
	if len(r) == 0 {
		return errors.NewValueError("evaluate", "results table is empty")
	}
	for _, l := range r {
		if l.Name == "" {
			return errors.NewValueError("evaluate", "learner name must not be empty")
		}
		if len(l.Records) != len(TrainingSizes) {
			return errors.NewDimensionError("evaluate", len(TrainingSizes), len(l.Records), 0)
		}
		for i, rec := range l.Records {
			for _, m := range Metrics {
				if _, ok := rec[m]; !ok {
					return errors.NewMissingMetricError(l.Name, i, m)
				}
			}
		}
	}
	return nil
}

// Series returns metric for each training size of the learner at index k.
func (r Results) Series(k int, metric string) []float64 {
	out := make([]float64, len(r[k].Records))
	for i, rec := range r[k].Records {
		out[i] = rec[metric]
	}
	return out
}
