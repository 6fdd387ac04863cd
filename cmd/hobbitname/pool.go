package main

import (
	"fmt"
	"hobbitname-server/pkg/namepool"

	"github.com/spf13/cobra"
)

func newPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "pool <category>",
		Short:     "Print a name pool (female, male or surnames)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"female", "male", "surnames"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := namepool.ParseCategory(args[0])
			if err != nil {
				return err
			}

			for _, name := range namepool.Pool(c) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}
