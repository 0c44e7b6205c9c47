package cmd

import (
	"fmt"

	"github.com/njchilds90/gopoly"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the polycalc version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "polycalc %s\n", gopoly.Version)
		},
	}
}
