package dataset

import (
	"gonum.org/v1/gonum/stat"
)

// Summary describes a series, for logging.
type Summary struct {
	N            int
	Mean, StdDev float64
}

func Summarize(series []Observation) Summary {
	y := Values(series)
	mean, std := stat.MeanStdDev(y, nil)
	return Summary{N: len(y), Mean: mean, StdDev: std}
}
