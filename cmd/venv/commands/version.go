package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information - can be set at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of venv",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "venv version %s\n", Version)
			if GitCommit != "unknown" {
				fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
			}
			if BuildDate != "unknown" {
				fmt.Fprintf(out, "  Build date: %s\n", BuildDate)
			}
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
		},
	}
}
