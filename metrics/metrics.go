// Package metrics provides point-forecast accuracy metrics over
// aligned slices of predicted and actual values.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	errs "github.com/mailstat/smgp/internal/errors"
)

func checkAligned(pred, actual []float64) error {
	if len(actual) == 0 {
		return errs.Data("no held-out observations")
	}
	if len(pred) != len(actual) {
		return errs.Data("got %d predictions for %d actuals",
			len(pred), len(actual))
	}
	return nil
}

// RMSE is the root-mean-squared error. It is non-negative and zero
// exactly when every prediction matches its actual.
func RMSE(pred, actual []float64) (float64, error) {
	if err := checkAligned(pred, actual); err != nil {
		return 0, err
	}
	return floats.Distance(pred, actual, 2) /
		math.Sqrt(float64(len(pred))), nil
}

// MAPE is the mean absolute percentage error, in percent. An actual
// value of exactly zero makes the metric undefined and is reported as
// a data error rather than propagated as NaN or Inf.
func MAPE(pred, actual []float64) (float64, error) {
	if err := checkAligned(pred, actual); err != nil {
		return 0, err
	}
	sum := 0.
	for i := range actual {
		if actual[i] == 0 {
			return 0, errs.Data(
				"MAPE undefined: actual value at %d is zero", i)
		}
		sum += math.Abs((pred[i] - actual[i]) / actual[i])
	}
	return sum / float64(len(actual)) * 100, nil
}

// NLPD is the negative log predictive density of y under the Gaussian
// predictive distribution N(mean, std²).
func NLPD(y, mean, std float64) float64 {
	vari := std * std
	d := y - mean
	return 0.5 * (math.Log(2*math.Pi) + math.Log(vari) + d*d/vari)
}
