package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display ltsvq version information.`,
		Args:  UsageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ltsvq v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Query tool for LTSV (Labeled Tab-separated Values) files")
		},
	}
}
