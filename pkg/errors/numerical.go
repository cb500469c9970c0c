package errors

import (
	"math"
)

// maxReportedValues bounds how many offending values an error carries.
const maxReportedValues = 10

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error listing the offending values.
func CheckNumericalStability(operation string, values []float64) error {
	var unstable []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			unstable = append(unstable, v)
			if len(unstable) >= maxReportedValues {
				break
			}
		}
	}
	if len(unstable) > 0 {
		return NewNumericalInstabilityError(operation, unstable)
	}
	return nil
}

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value})
	}
	return nil
}

// CheckRange reports every value outside [min, max] as a ClippedRangeWarning.
// It returns the number of warnings raised.
func CheckRange(panel, axis string, min, max float64, values ...float64) int {
	n := 0
	for _, v := range values {
		if v < min || v > max {
			Warn(NewClippedRangeWarning(panel, axis, min, max, v))
			n++
		}
	}
	return n
}
