package secretscan

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aoai-workshop/secretscan/internal/config"
	"github.com/aoai-workshop/secretscan/internal/report"
)

var (
	flagNoColor  bool
	flagLogLevel string

	version = "0.1.0"

	// log is shared by every subcommand; PersistentPreRunE points it at the
	// command's stderr.
	log = logrus.New()
)

// exitError carries a non-error exit status, e.g. check --strict with issues.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// rootCmd is the base Cobra command. Run without a subcommand it scans.
var rootCmd = &cobra.Command{
	Use:   "secretscan [path]",
	Short: "Scan a workspace for secrets and API keys",
	Long: "secretscan walks a directory, classifies every line of eligible files against a\n" +
		"table of secret patterns and reports redacted findings as text, JSON, a table or SARIF.",
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	Version:           version,
	PersistentPreRunE: setupLogging,
	RunE:              runScan,
}

// Execute runs the CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	report.ToolVersion = version
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error (default warn)")
	bindScanFlags(rootCmd.Flags())
}

// setupLogging applies --log-level, then log_level from config, then warn.
func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level := flagLogLevel
	if level == "" {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}
		lcfg, gcfg, _ := loadConfigs(root)
		level = pickString("", lcfg.LogLevel, gcfg.LogLevel)
	}
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)
	return nil
}

// loadConfigs returns the local config for root and the global config.
// Missing files are not an error; unreadable or malformed ones are.
func loadConfigs(root string) (local, global config.FileConfig, err error) {
	global, err = config.LoadGlobal()
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return local, global, err
	}
	local, err = config.LoadLocal(root)
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return local, global, err
	}
	return local, global, nil
}
