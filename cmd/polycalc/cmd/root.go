// Package cmd implements the polycalc command tree.
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/njchilds90/gopoly"
	"github.com/njchilds90/gopoly/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// Config holds settings read from the environment before flags apply.
type Config struct {
	Locale string `env:"GOPOLY_LOCALE"`
}

// options are shared by every subcommand.
type options struct {
	locale  string
	jsonOut bool
	tag     language.Tag
}

// NewRootCmd builds the polycalc command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "polycalc",
		Short: "Symbolic polynomial calculator",
		Long: `polycalc simplifies, differentiates, substitutes and divides
multivariate polynomials and rational expressions.

Expressions use single-letter indeterminates, implicit products,
^n or superscript exponents and parentheses:

  polycalc simplify "(x+1)(x-1)"
  polycalc diff --by c "2.1ac³"
  polycalc subst "x²" x=x+1
  polycalc reduce "x²-1" "x+1"
  polycalc eval "x²+y" x=3 y=1
  polycalc check identities.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.locale, "locale", "", "Locale for rendered numbers, e.g. de (env GOPOLY_LOCALE)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		newSimplifyCmd(opts),
		newDiffCmd(opts),
		newSubstCmd(opts),
		newReduceCmd(opts),
		newEvalCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs polycalc with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) resolve(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("locale") {
		var cfg Config
		if err := config.ParseEnv(&cfg); err != nil {
			return err
		}
		o.locale = cfg.Locale
	}
	o.tag = language.Und
	if o.locale == "" {
		return nil
	}
	tag, err := language.Parse(o.locale)
	if err != nil {
		return fmt.Errorf("locale %q: %w", o.locale, err)
	}
	o.tag = tag
	return nil
}

// print writes v as JSON when --json is set, otherwise text.
func (o *options) print(cmd *cobra.Command, v any, text string) error {
	if o.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func (o *options) printDivision(cmd *cobra.Command, d gopoly.Division) error {
	if p, ok := d.AsPolynomial(); ok {
		return o.print(cmd, p, p.Format(o.tag))
	}
	return o.print(cmd, d, d.Format(o.tag))
}

// parseAssignment splits "x=expr" into its indeterminate and right side.
func parseAssignment(s string) (gopoly.Indeterminate, string, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return gopoly.Indeterminate{}, "", fmt.Errorf("%q: expected var=value", s)
	}
	v, err := gopoly.ParseIndeterminate(strings.TrimSpace(name))
	if err != nil {
		return gopoly.Indeterminate{}, "", err
	}
	return v, strings.TrimSpace(value), nil
}
