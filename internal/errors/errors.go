// Package errors defines the failure kinds of the forecasting pipeline.
//
// Every failure is wrapped around exactly one of the three sentinel kinds,
// so callers can dispatch with errors.Is without inspecting messages.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel kinds.
var (
	// ErrData marks malformed or unusable input: an empty log,
	// unparseable records, a filter matching nothing, or held-out
	// values a metric is undefined for.
	ErrData = errors.New("data error")

	// ErrNumerical marks a failure of the linear algebra, typically a
	// covariance matrix that is not positive definite under degenerate
	// hyperparameters.
	ErrNumerical = errors.New("numerical error")

	// ErrConfiguration marks an invalid experiment setup, rejected
	// before any numerical work begins.
	ErrConfiguration = errors.New("configuration error")
)

// Data creates a data error with a formatted message.
func Data(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrData, fmt.Sprintf(format, args...))
}

// Numerical creates a numerical error with a formatted message.
func Numerical(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNumerical, fmt.Sprintf(format, args...))
}

// Configuration creates a configuration error with a formatted message.
func Configuration(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// IsData reports whether err is a data error.
func IsData(err error) bool { return errors.Is(err, ErrData) }

// IsNumerical reports whether err is a numerical error.
func IsNumerical(err error) bool { return errors.Is(err, ErrNumerical) }

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }
