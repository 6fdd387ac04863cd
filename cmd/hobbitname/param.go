package main

import (
	"fmt"
	"hobbitname-server/pkg/queryparam"
	"strings"

	"github.com/spf13/cobra"
)

func newParamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "param <url-or-query> <name>",
		Short: "Print the decoded value of a query parameter",
		Example: `  hobbitname param 'https://shire.example/?id=123&name=Bilbo' name
  hobbitname param '?q=a+b' q`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, name := args[0], args[1]

			var (
				val string
				ok  bool
			)
			if strings.Contains(input, "://") {
				val, ok = queryparam.FromURL(input, name)
			} else {
				val, ok = queryparam.Get(input, name)
			}

			if !ok {
				return fmt.Errorf("parameter %q not found", name)
			}

			fmt.Fprintln(cmd.OutOrStdout(), val)
			return nil
		},
	}
}
