package secretscan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aoai-workshop/secretscan/internal/cleanup"
	"github.com/aoai-workshop/secretscan/internal/engine"
	"github.com/aoai-workshop/secretscan/internal/files"
	"github.com/aoai-workshop/secretscan/internal/report"
	"github.com/aoai-workshop/secretscan/internal/types"
)

var (
	flagFixGitignore   bool
	flagClearNotebooks bool
	flagStrict         bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Validate the repository is clean enough to publish",
		Long: "check scans for secrets, looks for stray files that should never be committed\n" +
			"(local env files, terraform state, scratch docs) and for notebooks that still carry\n" +
			"cell outputs.",
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().BoolVar(&flagFixGitignore, "fix-gitignore", false, "append matched stray patterns to .gitignore")
	cmd.Flags().BoolVar(&flagClearNotebooks, "clear-notebooks", false, "clear outputs and execution counts of flagged notebooks")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "exit 1 when secrets or stray files are found")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := resolveScan(cmd, args)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "🧹 Repository Cleanup Validation")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	fmt.Fprintln(w, "\n🔐 Checking for exposed secrets...")
	res, err := engine.ScanWithStats(s.engine)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	secrets := reportable(res.Findings, s.highOnly)
	if len(secrets) == 0 {
		fmt.Fprintln(w, "✅ No exposed secrets found")
	} else {
		c := report.Counts(secrets)
		fmt.Fprintf(w, "❌ Found potential secret exposures (HIGH: %d, MEDIUM: %d):\n", c[types.ConfHigh], c[types.ConfMedium])
		for _, f := range secrets {
			fmt.Fprintf(w, "   %s:%d - %s %s (%s)\n", f.FilePath, f.LineNumber, f.Confidence, f.RuleName, f.RedactedValue)
		}
	}

	fmt.Fprintln(w, "\n🗑️  Checking for stray files...")
	patterns := pickList(s.local.StrayFiles, s.global.StrayFiles, cleanup.DefaultStrayPatterns())
	strays, err := cleanup.FindStray(s.root, patterns)
	if err != nil {
		return fmt.Errorf("stray files: %w", err)
	}
	if len(strays) == 0 {
		fmt.Fprintln(w, "✅ No stray files found")
	} else {
		fmt.Fprintln(w, "❌ Found stray files:")
		for _, st := range strays {
			fmt.Fprintf(w, "   %s\n", st.Path)
		}
		if flagFixGitignore {
			added, err := files.AppendIgnore(s.root, cleanup.Patterns(strays)...)
			if err != nil {
				return fmt.Errorf("fix .gitignore: %w", err)
			}
			for _, p := range added {
				fmt.Fprintf(w, "   added %s to .gitignore\n", p)
			}
		}
	}

	fmt.Fprintln(w, "\n📓 Checking notebook outputs...")
	sel, err := engine.NewSelector(s.engine)
	if err != nil {
		return err
	}
	notebooks := cleanup.DirtyNotebooks(s.root, sel.Files(), log)
	if len(notebooks) == 0 {
		fmt.Fprintln(w, "✅ All notebooks have clean outputs")
	} else {
		fmt.Fprintln(w, "⚠️  Found notebooks with outputs (consider clearing):")
		for _, nb := range notebooks {
			fmt.Fprintf(w, "   %s\n", nb)
		}
		if flagClearNotebooks {
			if err := clearNotebooks(w, s.root, notebooks); err != nil {
				return err
			}
		}
	}

	issues := len(secrets) + len(strays)
	fmt.Fprintln(w, "\n📋 Summary:")
	fmt.Fprintf(w, "   Secrets issues: %d\n", len(secrets))
	fmt.Fprintf(w, "   Stray files: %d\n", len(strays))
	fmt.Fprintf(w, "   Notebooks with outputs: %d\n", len(notebooks))
	if issues == 0 {
		fmt.Fprintln(w, "\n✅ Repository is clean and ready for distribution!")
		return nil
	}
	fmt.Fprintf(w, "\n⚠️  Found %d issues that should be addressed\n", issues)
	if flagStrict {
		return &exitError{code: 1, msg: fmt.Sprintf("%d issues found", issues)}
	}
	return nil
}

// reportable keeps HIGH and MEDIUM findings, or only HIGH when highOnly.
func reportable(fs []types.Finding, highOnly bool) []types.Finding {
	if highOnly {
		return report.HighOnly(fs)
	}
	out := report.OnlyConfidence(fs, types.ConfHigh)
	return append(out, report.OnlyConfidence(fs, types.ConfMedium)...)
}

func clearNotebooks(w io.Writer, root string, notebooks []cleanup.NotebookIssue) error {
	for _, nb := range notebooks {
		p := filepath.Join(root, filepath.FromSlash(nb.Path))
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("clear %s: %w", nb.Path, err)
		}
		cleared, err := cleanup.ClearOutputs(data)
		if err != nil {
			return fmt.Errorf("clear %s: %w", nb.Path, err)
		}
		if err := os.WriteFile(p, cleared, 0o644); err != nil {
			return fmt.Errorf("clear %s: %w", nb.Path, err)
		}
		fmt.Fprintf(w, "   cleared %s\n", nb.Path)
	}
	return nil
}
