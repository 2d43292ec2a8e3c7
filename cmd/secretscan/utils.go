package secretscan

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// pickList returns the first non-empty list.
func pickList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

// changedString returns the flag value only if the user set it, so defaults
// do not shadow config files.
func changedString(cmd *cobra.Command, name, val string) string {
	if cmd.Flags().Changed(name) {
		return val
	}
	return ""
}

// colorEnabled reports whether w is a terminal and color is not disabled.
func colorEnabled(w any, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
