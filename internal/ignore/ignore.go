// Package ignore reads .secretscanignore files: one glob per line, '#'
// comments, trailing '/' for directories.
package ignore

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// FileName is the ignore file looked up at the scan root.
const FileName = ".secretscanignore"

// Matcher holds compiled ignore patterns. The zero value matches nothing.
type Matcher struct {
	patterns []string
}

// Load reads patterns from p. A missing file yields an empty matcher and no
// error.
func Load(p string) (Matcher, error) {
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Matcher{}, nil
		}
		return Matcher{}, err
	}
	defer f.Close()

	var m Matcher
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !doublestar.ValidatePattern(strings.TrimSuffix(line, "/")) {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// New builds a matcher from in-memory patterns.
func New(patterns ...string) Matcher {
	return Matcher{patterns: append([]string(nil), patterns...)}
}

// Match reports whether the slash-separated relative path rel is ignored.
func (m Matcher) Match(rel string) bool {
	rel = strings.TrimPrefix(strings.ReplaceAll(rel, "\\", "/"), "./")
	for _, p := range m.patterns {
		if strings.HasSuffix(p, "/") {
			dir := strings.Trim(p, "/")
			if rel == dir || strings.HasPrefix(rel, dir+"/") || strings.Contains(rel, "/"+dir+"/") {
				return true
			}
			continue
		}
		p = strings.TrimPrefix(p, "/")
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, path.Base(rel)); ok {
				return true
			}
		}
	}
	return false
}

// Empty reports whether m has no patterns.
func (m Matcher) Empty() bool { return len(m.patterns) == 0 }
