package secretscan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aoai-workshop/secretscan/internal/cleanup"
	"github.com/aoai-workshop/secretscan/internal/config"
	"github.com/aoai-workshop/secretscan/internal/engine"
)

var (
	cfgOutput string
	cfgForce  bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .secretscan.yml with the built-in defaults spelled out",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".secretscan.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(cfgOutput); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
	}
	fc := config.FileConfig{
		Format:       strPtr("text"),
		HighOnly:     boolPtr(false),
		ExcludePaths: engine.DefaultExcludePaths(),
		Extensions:   engine.DefaultExtensions(),
		StrayFiles:   cleanup.DefaultStrayPatterns(),
		LogLevel:     strPtr("warn"),
	}
	if err := config.Write(cfgOutput, fc); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(v bool) *bool    { return &v }
