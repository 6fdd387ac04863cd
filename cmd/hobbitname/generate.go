package main

import (
	"fmt"
	"hobbitname-server/internal/rng"
	"hobbitname-server/pkg/namegen"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		gender string
		count  int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random names, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := namegen.ParseGender(gender)
			if err != nil {
				return err
			}

			var r rng.Generator = rng.Crypto{}
			if cmd.Flags().Changed("seed") {
				r = rng.NewMath(seed)
			}

			names, err := namegen.New(r).GenerateN(g, count)
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&gender, "gender", "g", "", "male or female (default: random per name)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of names to print")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed a deterministic random source")
	return cmd
}
