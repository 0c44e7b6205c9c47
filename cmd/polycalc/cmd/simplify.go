package cmd

import (
	"github.com/njchilds90/gopoly"
	"github.com/spf13/cobra"
)

func newSimplifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <expr>",
		Short: "Print the canonical form of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := gopoly.Parse(args[0])
			if err != nil {
				return err
			}
			return opts.printDivision(cmd, d)
		},
	}
}
