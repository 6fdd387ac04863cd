package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hobbitname",
		Short: "Random hobbit names",
		Long: `hobbitname generates random hobbit names from fixed first name and
surname pools, and reads single parameters out of URL query strings.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newGenerateCmd(), newPoolCmd(), newParamCmd())
	return rootCmd
}
