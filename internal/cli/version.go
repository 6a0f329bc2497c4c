package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "smgp %s (%s)\n", version, commit)
	},
}
