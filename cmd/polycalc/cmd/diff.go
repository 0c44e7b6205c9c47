package cmd

import (
	"github.com/njchilds90/gopoly"
	"github.com/spf13/cobra"
)

func newDiffCmd(opts *options) *cobra.Command {
	var (
		by     string
		second bool
	)
	cmd := &cobra.Command{
		Use:   "diff <expr>",
		Short: "Differentiate an expression",
		Long: `Differentiates an expression by one indeterminate.

Examples:
  polycalc diff --by x "x³+2x"
  polycalc diff --by x --second "1/(x+1)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := gopoly.ParseIndeterminate(by)
			if err != nil {
				return err
			}
			d, err := gopoly.Parse(args[0])
			if err != nil {
				return err
			}
			if second {
				return opts.printDivision(cmd, d.SecondDerivativeBy(v))
			}
			return opts.printDivision(cmd, d.DerivativeBy(v))
		},
	}
	cmd.Flags().StringVar(&by, "by", "x", "Indeterminate to differentiate by")
	cmd.Flags().BoolVar(&second, "second", false, "Take the second derivative")
	return cmd
}
