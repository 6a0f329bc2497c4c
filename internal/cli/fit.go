package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mailstat/smgp/dataset"
	"github.com/mailstat/smgp/gp"
	"github.com/mailstat/smgp/internal/config"
	errs "github.com/mailstat/smgp/internal/errors"
	"github.com/mailstat/smgp/internal/output"
	"github.com/mailstat/smgp/kernel"
	"github.com/mailstat/smgp/metrics"
	"github.com/mailstat/smgp/model"
	"github.com/mailstat/smgp/priors"
)

var fitFlags = struct {
	Input     string
	Out       string
	Horizon   int
	Selfcheck bool
}{}

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit the model and forecast",
	Long: `fit runs the whole pipeline: load the event log, filter to the
flagged sender's traffic towards the external address, aggregate to
monthly volume, fit the spectral-mixture GP on the training months,
score the held-out months, and write the forecast with a 95% credible
band as CSV.

In selfcheck mode the event log embedded in the binary is used, to
demonstrate basic functionality without any input.`,
	RunE: runFit,
}

func init() {
	fitCmd.Flags().StringVarP(&fitFlags.Input,
		"input", "i", "-", "event log CSV, - for stdin")
	fitCmd.Flags().StringVarP(&fitFlags.Out,
		"out", "o", "-", "forecast CSV, - for stdout")
	fitCmd.Flags().IntVar(&fitFlags.Horizon,
		"horizon", 6, "future months to extrapolate")
	fitCmd.Flags().BoolVar(&fitFlags.Selfcheck,
		"selfcheck", false, "run on the embedded event log")
}

func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(globalFlags.ConfigFile); err != nil {
		if os.IsNotExist(err) &&
			!rootCmd.PersistentFlags().Changed("config") {
			// No config file next to the invocation; run on
			// defaults.
			return config.Default(), nil
		}
		return nil, err
	}
	return config.Load(globalFlags.ConfigFile)
}

func openInput() (io.ReadCloser, error) {
	switch {
	case fitFlags.Selfcheck:
		return io.NopCloser(strings.NewReader(selfCheckLog)), nil
	case fitFlags.Input == "" || fitFlags.Input == "-":
		return io.NopCloser(os.Stdin), nil
	default:
		return os.Open(fitFlags.Input)
	}
}

func openOutput() (io.WriteCloser, error) {
	if fitFlags.Out == "" || fitFlags.Out == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(fitFlags.Out)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func runFit(_ *cobra.Command, _ []string) error {
	if fitFlags.Horizon < 0 {
		return errs.Configuration("horizon must be non-negative, got %d",
			fitFlags.Horizon)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if fitFlags.Selfcheck {
		cfg.Filter.Sender = selfCheckSender
		cfg.Filter.Recipient = selfCheckRecipient
	}
	log := logrus.WithField("command", "fit")

	in, err := openInput()
	if err != nil {
		return err
	}
	defer in.Close()

	events, err := dataset.Load(in, dataset.Columns{
		Time:      cfg.Input.TimeColumn,
		Sender:    cfg.Input.SenderColumn,
		Recipient: cfg.Input.RecipientColumn,
		Size:      cfg.Input.SizeColumn,
	})
	if err != nil {
		return err
	}
	kept, err := dataset.Filter(events, cfg.Filter.Sender, cfg.Filter.Recipient)
	if err != nil {
		return err
	}
	series, err := dataset.Monthly(kept, cfg.Input.Scale)
	if err != nil {
		return err
	}
	split, err := dataset.NewSplit(series, cfg.Split.TrainSize, cfg.Split.DropTail)
	if err != nil {
		return err
	}
	if len(split.Test) == 0 {
		return errs.Data("no held-out months to score against")
	}
	sum := dataset.Summarize(series)
	log.WithFields(logrus.Fields{
		"events": len(kept),
		"months": sum.N,
		"train":  len(split.Train),
		"test":   len(split.Test),
		"mean":   fmt.Sprintf("%.3f", sum.Mean),
		"stddev": fmt.Sprintf("%.3f", sum.StdDev),
	}).Info("prepared dataset")

	simil, err := kernel.NewSpectralMixture(cfg.Model.Q)
	if err != nil {
		return err
	}
	m := &model.Model{
		GP: &gp.GP{
			Simil: simil,
			Noise: kernel.UniformNoise,
			X:     dataset.Inputs(split.Train),
			Y:     dataset.Values(split.Train),
		},
	}
	if cfg.Model.Priors {
		m.Priors = &priors.SM{Q: cfg.Model.Q}
	}

	theta := simil.InitialTheta(cfg.Model.InitialFrequency,
		cfg.Model.InitialLengthscale)
	theta = append(theta, kernel.NewPositive(cfg.Model.InitialNoise).Raw())

	log.Info("fitting...")
	res, err := m.Fit(theta, cfg.Model.MaxIterations)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"lml0":       fmt.Sprintf("%.4f", res.LML0),
		"lml":        fmt.Sprintf("%.4f", res.LML),
		"iterations": res.Iterations,
	}).Info("fitted")
	log.Debugf("raw hyperparameters: %v", res.Theta)

	// Query every observed month plus the extrapolation horizon.
	last := split.Test[len(split.Test)-1].Index
	z := make([]float64, 0, last+1+fitFlags.Horizon)
	for i := 0; i <= last+fitFlags.Horizon; i++ {
		z = append(z, float64(i))
	}
	mu, sigma, err := m.Predict(z)
	if err != nil {
		return err
	}

	predTest := make([]float64, len(split.Test))
	for i, o := range split.Test {
		predTest[i] = mu[o.Index]
	}
	rmse, err := metrics.RMSE(predTest, dataset.Values(split.Test))
	if err != nil {
		return err
	}
	mape, err := metrics.MAPE(predTest, dataset.Values(split.Test))
	if err != nil {
		return err
	}

	out, err := openOutput()
	if err != nil {
		return err
	}
	defer out.Close()
	writeForecast(out, split, z, mu, sigma)

	noise, err := m.NoiseVariance()
	if err != nil {
		return err
	}
	report := &output.Report{
		TrainSize:     len(split.Train),
		TestSize:      len(split.Test),
		LML0:          res.LML0,
		LML:           res.LML,
		Iterations:    res.Iterations,
		RMSE:          rmse,
		MAPE:          mape,
		NoiseVariance: noise,
	}
	for i := 0; i != cfg.Model.Q; i++ {
		report.Frequencies = append(report.Frequencies, res.Theta[i])
		report.Lengthscales = append(report.Lengthscales,
			kernel.PositiveFromRaw(res.Theta[cfg.Model.Q+i]).Value())
	}
	report.Render(os.Stderr)
	return nil
}

// writeForecast emits the plotting interface: one row per queried
// month with the actual value where one is known, the predictive mean
// and standard deviation, and the 95% credible band (mean ± 2σ).
func writeForecast(w io.Writer, split *dataset.Split, z, mu, sigma []float64) {
	actual := make(map[int]float64, len(split.Train)+len(split.Test))
	for _, o := range split.Train {
		actual[o.Index] = o.Value
	}
	for _, o := range split.Test {
		actual[o.Index] = o.Value
	}

	fmt.Fprintln(w, "index,actual,mean,std,lo95,hi95")
	for i, x := range z {
		fmt.Fprintf(w, "%d,", int(x))
		if y, ok := actual[int(x)]; ok {
			fmt.Fprintf(w, "%f", y)
		}
		fmt.Fprintf(w, ",%f,%f,%f,%f\n",
			mu[i], sigma[i], mu[i]-2*sigma[i], mu[i]+2*sigma[i])
	}
}
