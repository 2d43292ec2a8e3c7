package cleanup

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

var defaultStray = []string{
	"test_environment.md",
	"prerequisites/",
	".env.local",
	".env.production",
	"terraform.tfstate",
	"terraform.tfstate.backup",
}

// DefaultStrayPatterns returns the built-in stray file globs. A trailing "/"
// matches directories only.
func DefaultStrayPatterns() []string {
	return append([]string(nil), defaultStray...)
}

// Stray is a path under the root matched by a stray pattern.
type Stray struct {
	Path    string // slash separated, relative to root
	Pattern string
}

// FindStray globs each pattern against root in pattern order. A path
// matched by several patterns is reported once.
func FindStray(root string, patterns []string) ([]Stray, error) {
	fsys := os.DirFS(root)
	seen := map[string]bool{}
	var out []Stray
	for _, pat := range patterns {
		dirOnly := strings.HasSuffix(pat, "/")
		glob := strings.TrimSuffix(pat, "/")
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("invalid stray pattern %q", pat)
		}
		matches, err := doublestar.Glob(fsys, glob)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pat, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			if dirOnly {
				st, err := fs.Stat(fsys, m)
				if err != nil || !st.IsDir() {
					continue
				}
			}
			seen[m] = true
			out = append(out, Stray{Path: m, Pattern: pat})
		}
	}
	return out, nil
}

// Patterns returns the distinct patterns that produced matches, suitable for
// appending to .gitignore.
func Patterns(strays []Stray) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range strays {
		if !seen[s.Pattern] {
			seen[s.Pattern] = true
			out = append(out, s.Pattern)
		}
	}
	return out
}
