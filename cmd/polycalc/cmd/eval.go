package cmd

import (
	"fmt"
	"strconv"

	"github.com/njchilds90/gopoly"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr> <var=number>...",
		Short: "Evaluate an expression numerically",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := gopoly.Parse(args[0])
			if err != nil {
				return err
			}
			bindings := make(map[gopoly.Indeterminate]float64, len(args)-1)
			for _, arg := range args[1:] {
				v, raw, err := parseAssignment(arg)
				if err != nil {
					return err
				}
				x, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("%s: %w", v, err)
				}
				bindings[v] = x
			}
			x, err := d.Value(bindings)
			if err != nil {
				return err
			}
			return opts.print(cmd, x, message.NewPrinter(opts.tag).Sprint(x))
		},
	}
}
