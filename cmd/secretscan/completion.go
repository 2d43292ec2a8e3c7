package secretscan

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(w)
			case "zsh":
				return rootCmd.GenZshCompletion(w)
			case "fish":
				return rootCmd.GenFishCompletion(w, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(w)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
		Example: `
# Bash
secretscan completion bash > /etc/bash_completion.d/secretscan

# Zsh
secretscan completion zsh > "${fpath[1]}/_secretscan"

# Fish
secretscan completion fish > ~/.config/fish/completions/secretscan.fish

# PowerShell
secretscan completion powershell > $PROFILE\secretscan.ps1
`,
	}
	rootCmd.AddCommand(cmd)
}
