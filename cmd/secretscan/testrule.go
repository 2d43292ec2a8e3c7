package secretscan

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aoai-workshop/secretscan/internal/detectors"
	"github.com/aoai-workshop/secretscan/internal/report"
	"github.com/aoai-workshop/secretscan/internal/rules"
)

var flagTestPath string

func init() {
	cmd := &cobra.Command{
		Use:   "test-rule [name]",
		Short: "Classify text from stdin with one rule, or the whole table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScan(cmd, nil)
			if err != nil {
				return err
			}
			rs := s.rules
			if len(args) == 1 {
				r, ok := rs.ByName(args[0])
				if !ok {
					return fmt.Errorf("unknown rule %q (available: %s)", args[0], strings.Join(rs.Names(), ", "))
				}
				if rs, err = rules.New(r.Definition); err != nil {
					return err
				}
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			fs := detectors.New(rs).ClassifyFile(flagTestPath, data)
			return report.PrintTable(cmd.OutOrStdout(), fs, report.PrintOptions{NoColor: !colorEnabled(cmd.OutOrStdout(), flagNoColor)})
		},
	}
	cmd.Flags().StringVar(&flagTestPath, "path", "stdin", "file path to classify as (paths containing \"example\" suppress HIGH rules)")
	rootCmd.AddCommand(cmd)
}
