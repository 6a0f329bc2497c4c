// Package output renders the terminal report of a completed run.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Report is everything the fit command shows the user at the end.
type Report struct {
	TrainSize, TestSize int

	// Log marginal likelihood before and after optimization, and the
	// major iterations spent.
	LML0, LML  float64
	Iterations int

	RMSE, MAPE float64

	// Fitted hyperparameters, in their transformed representations.
	Frequencies   []float64
	Lengthscales  []float64
	NoiseVariance float64
}

var (
	heading = color.New(color.Bold)
	metric  = color.New(color.FgGreen)
	param   = color.New(color.FgCyan)
)

// Render writes the report to w.
func (r *Report) Render(w io.Writer) {
	heading.Fprintln(w, "fit")
	fmt.Fprintf(w, "  train/test:      %d/%d months\n", r.TrainSize, r.TestSize)
	fmt.Fprintf(w, "  log likelihood:  %.4f -> %.4f (%d iterations)\n",
		r.LML0, r.LML, r.Iterations)

	heading.Fprintln(w, "held-out accuracy")
	fmt.Fprint(w, "  RMSE: ")
	metric.Fprintf(w, "%.4f\n", r.RMSE)
	fmt.Fprint(w, "  MAPE: ")
	metric.Fprintf(w, "%.2f%%\n", r.MAPE)

	heading.Fprintln(w, "hyperparameters")
	for i := range r.Frequencies {
		fmt.Fprintf(w, "  term %2d: ", i+1)
		param.Fprintf(w, "frequency %8.4f  lengthscale %8.4f\n",
			r.Frequencies[i], r.Lengthscales[i])
	}
	fmt.Fprint(w, "  noise variance: ")
	param.Fprintf(w, "%.6f\n", r.NoiseVariance)
}
