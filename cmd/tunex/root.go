package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tunex",
		Short: "Characteristic extraction tables for hyperparameter tuning runs",
		Long: `tunex reads a serialized tuning result (the per-fit outcomes of a
grid-search run with extraction enabled) and assembles the attached model
characteristics into a tidy table: long form, joined with resample-averaged
metrics, or pivoted wide for complexity-versus-error analysis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCollectCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
