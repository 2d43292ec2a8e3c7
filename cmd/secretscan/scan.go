package secretscan

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aoai-workshop/secretscan/internal/config"
	"github.com/aoai-workshop/secretscan/internal/engine"
	"github.com/aoai-workshop/secretscan/internal/report"
	"github.com/aoai-workshop/secretscan/internal/rules"
)

var (
	flagFormat   string
	flagOutput   string
	flagHighOnly bool
	flagRules    string
	flagInclude  string
	flagExclude  string
	flagMaxBytes int64
)

var formats = []string{"text", "json", "table", "sarif"}

func init() {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan files for secrets (same as running secretscan with no subcommand)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	bindScanFlags(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

// bindScanFlags registers the scan flags on fs. Root and scan share the same
// variables.
func bindScanFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagFormat, "format", "text", "output format: "+strings.Join(formats, "|"))
	fs.StringVarP(&flagOutput, "output", "o", "", "write the report to this file instead of stdout")
	fs.BoolVar(&flagHighOnly, "high-only", false, "report only HIGH confidence findings")
	fs.StringVar(&flagRules, "rules", "", "YAML file with additional rules")
	fs.StringVar(&flagInclude, "include", "", "comma-separated include globs")
	fs.StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	fs.Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
}

// scanSettings is the resolved CLI > local > global view for one run.
type scanSettings struct {
	root     string
	format   string
	output   string
	highOnly bool
	noColor  bool
	engine   engine.Config
	rules    *rules.RuleSet
	local    config.FileConfig
	global   config.FileConfig
}

func resolveScan(cmd *cobra.Command, args []string) (scanSettings, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return scanSettings{}, fmt.Errorf("resolve path: %w", err)
	}
	lcfg, gcfg, err := loadConfigs(abs)
	if err != nil {
		return scanSettings{}, fmt.Errorf("config: %w", err)
	}

	s := scanSettings{
		root:     abs,
		format:   strings.ToLower(pickString(changedString(cmd, "format", flagFormat), lcfg.Format, gcfg.Format)),
		output:   pickString(flagOutput, lcfg.Output, gcfg.Output),
		highOnly: pickBool(flagHighOnly, lcfg.HighOnly, gcfg.HighOnly),
		noColor:  pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
		local:    lcfg,
		global:   gcfg,
	}
	if s.format == "" {
		s.format = "text"
	}
	if !validFormat(s.format) {
		return scanSettings{}, fmt.Errorf("unknown format %q (want %s)", s.format, strings.Join(formats, ", "))
	}

	s.rules, err = rules.Build(
		pickString(flagRules, lcfg.RulesFile, gcfg.RulesFile),
		pickList(lcfg.DisableRules, gcfg.DisableRules),
	)
	if err != nil {
		return scanSettings{}, fmt.Errorf("rules: %w", err)
	}

	s.engine = engine.Config{
		Root:         abs,
		ExcludePaths: pickList(lcfg.ExcludePaths, gcfg.ExcludePaths),
		Extensions:   pickList(lcfg.Extensions, gcfg.Extensions),
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Rules:        s.rules,
		Logger:       log,
	}
	return s, nil
}

func validFormat(f string) bool {
	for _, v := range formats {
		if f == v {
			return true
		}
	}
	return false
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := resolveScan(cmd, args)
	if err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()

	_, _ = fmt.Fprintf(stderr, "🔍 Scanning %s for secrets and API keys...\n", s.root)
	res, err := engine.ScanWithStats(s.engine)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	log.WithField("files", res.FilesScanned).WithField("skipped", res.FilesSkipped).
		WithField("duration", res.Duration).Debug("scan finished")

	findings := res.Findings
	if s.highOnly {
		findings = report.HighOnly(findings)
	}

	var out io.Writer = cmd.OutOrStdout()
	var buf bytes.Buffer
	if s.output != "" {
		out = &buf
	}
	opts := report.Options{Rules: s.rules}
	switch s.format {
	case "json":
		err = report.WriteJSON(out, findings, opts)
	case "sarif":
		err = report.WriteSARIFWithStats(out, findings, opts, map[string]int{
			"filesScanned": res.FilesScanned,
			"filesSkipped": res.FilesSkipped,
		})
	case "table":
		err = report.PrintTable(out, findings, report.PrintOptions{
			NoColor:      !colorEnabled(out, s.noColor),
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
	default:
		if s.output != "" {
			_, err = io.WriteString(out, report.Text(findings, opts))
		} else {
			err = report.PrintText(out, findings, opts)
		}
	}
	if err != nil {
		return fmt.Errorf("render %s report: %w", s.format, err)
	}

	if s.output != "" {
		if err := os.WriteFile(s.output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		_, _ = fmt.Fprintf(stderr, "Report written to %s\n", s.output)
	}
	return nil
}
