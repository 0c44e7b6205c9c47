package cmd

import (
	"fmt"

	"github.com/njchilds90/gopoly"
	"github.com/spf13/cobra"
)

func newReduceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <dividend> <divisor>",
		Short: "Divide two polynomials, printing quotient and remainder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := gopoly.ParsePolynomial(args[0])
			if err != nil {
				return err
			}
			d, err := gopoly.ParsePolynomial(args[1])
			if err != nil {
				return err
			}
			q, r, err := p.ReduceBy(d)
			if err != nil {
				return err
			}
			return opts.print(cmd,
				map[string]gopoly.Polynomial{"quotient": q, "remainder": r},
				fmt.Sprintf("quotient:  %s\nremainder: %s", q.Format(opts.tag), r.Format(opts.tag)))
		},
	}
}
