package cmd

import (
	"errors"
	"fmt"

	"github.com/njchilds90/gopoly/internal/checkfile"
	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("checks failed")

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.yaml>...",
		Short: "Run symbolic identity checks from YAML files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var all []checkfile.Result
			for _, path := range args {
				f, err := checkfile.Load(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				all = append(all, f.Run()...)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range all {
				switch {
				case r.Err != nil:
					failed++
					fmt.Fprintf(out, "ERROR %s: %v\n", r.Name, r.Err)
				case r.Passed:
					fmt.Fprintf(out, "ok    %s\n", r.Name)
				default:
					failed++
					fmt.Fprintf(out, "FAIL  %s: got %s, want %s\n", r.Name, r.Got, r.Want)
				}
			}
			fmt.Fprintf(out, "%d/%d checks passed\n", len(all)-failed, len(all))
			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(all), errChecksFailed)
			}
			return nil
		},
	}
}
