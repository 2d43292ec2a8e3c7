package secretscan

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var flagNamesOnly bool

func init() {
	cmd := &cobra.Command{
		Use:     "rules [path]",
		Aliases: []string{"detectors"},
		Short:   "List the active rule table",
		Long:    "Lists built-in rules plus any from rules_file / --rules, minus disable_rules, in evaluation order.",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScan(cmd, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if flagNamesOnly {
				for _, n := range s.rules.Names() {
					fmt.Fprintln(w, n)
				}
				return nil
			}
			table := tablewriter.NewWriter(w)
			table.Header("NAME", "CONFIDENCE", "DESCRIPTION")
			for _, r := range s.rules.Rules() {
				if err := table.Append([]string{r.Name, string(r.Confidence), r.Description}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
	cmd.Flags().BoolVar(&flagNamesOnly, "names", false, "print rule names only")
	cmd.Flags().StringVar(&flagRules, "rules", "", "YAML file with additional rules")
	rootCmd.AddCommand(cmd)
}
