package cmd

import (
	"fmt"

	"github.com/njchilds90/gopoly"
	"github.com/spf13/cobra"
)

func newSubstCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "subst <expr> <var=value>...",
		Short: "Substitute indeterminates with expressions",
		Long: `Replaces indeterminates with expressions, left to right. A
replacement may mention the indeterminate it replaces.

Examples:
  polycalc subst "x²" x=x+1
  polycalc subst "x+y" x=2 y=1/x`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := gopoly.Parse(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				v, raw, err := parseAssignment(arg)
				if err != nil {
					return err
				}
				value, err := gopoly.Parse(raw)
				if err != nil {
					return fmt.Errorf("%s: %w", v, err)
				}
				if p, ok := value.AsPolynomial(); ok {
					d, err = d.Composition(v, p)
				} else {
					d, err = d.CompositionDivision(v, value)
				}
				if err != nil {
					return err
				}
			}
			return opts.printDivision(cmd, d)
		},
	}
}
