// Package cli implements the command-line interface of smgp.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var globalFlags = struct {
	ConfigFile string
	LogLevel   string
}{}

var rootCmd = &cobra.Command{
	Use:   "smgp",
	Short: "Forecast monthly email attachment volume with a spectral-mixture GP",
	Long: `smgp fits a Gaussian process with a spectral-mixture kernel to the
monthly attachment volume one flagged sender mails to one external
address, forecasts future months with credible intervals, and scores
the forecast on held-out months.

The forecast is written as CSV for external plotting; the metric and
hyperparameter report goes to stderr.`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigFile,
		"config", "c", "smgp.yaml", "path to the experiment configuration")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel,
		"log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(globalFlags.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
