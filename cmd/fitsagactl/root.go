package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fitsagactl",
		Short:         "FitSAGA admin maintenance tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newResetCreditsCommand())
	rootCmd.AddCommand(newImportVideosCommand())
	rootCmd.AddCommand(newSASURLCommand())

	return rootCmd
}
