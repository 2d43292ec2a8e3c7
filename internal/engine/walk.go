package engine

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"github.com/aoai-workshop/secretscan/internal/ignore"
)

// Selector decides which files under a root are eligible for scanning. It is
// built once from Config and never changes afterwards.
type Selector struct {
	root         string
	excludes     []string
	extensions   map[string]bool
	includeGlobs []string
	excludeGlobs []string
	ignore       ignore.Matcher
	maxBytes     int64
	log          logrus.FieldLogger
}

// NewSelector validates the root and loads its ignore file.
func NewSelector(cfg Config) (*Selector, error) {
	st, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("scan root %s: not a directory", cfg.Root)
	}
	if err := readable(cfg.Root); err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	ign, err := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ignore.FileName, err)
	}

	excludes := cfg.ExcludePaths
	if excludes == nil {
		excludes = DefaultExcludePaths()
	}
	exts := cfg.Extensions
	if exts == nil {
		exts = DefaultExtensions()
	}
	allow := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		allow[e] = true
	}

	return &Selector{
		root:         cfg.Root,
		excludes:     excludes,
		extensions:   allow,
		includeGlobs: parseGlobsList(cfg.IncludeGlobs),
		excludeGlobs: parseGlobsList(cfg.ExcludeGlobs),
		ignore:       ign,
		maxBytes:     cfg.MaxBytes,
		log:          loggerOf(cfg),
	}, nil
}

// Root returns the directory the selector walks.
func (s *Selector) Root() string { return s.root }

// Files walks the root lazily and yields slash-separated paths relative to it,
// in lexical walk order. Each range over the sequence walks the tree again.
func (s *Selector) Files() iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
			if p == s.root {
				return nil
			}
			rel, relErr := filepath.Rel(s.root, p)
			if relErr != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)
			if err != nil {
				s.log.WithField("file", rel).WithError(err).Warn("skipping unreadable path")
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if excludedBySubstring(rel+"/", s.excludes) || s.ignore.Match(rel+"/") {
					return filepath.SkipDir
				}
				return nil
			}
			if !s.eligibleFile(p, rel, d) {
				return nil
			}
			if !yield(rel) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// Eligible applies the path-only rules (exclusion substrings, extension
// allow-list, ignore file, globs) to a relative slash path.
func (s *Selector) Eligible(rel string) bool {
	if excludedBySubstring(rel, s.excludes) {
		return false
	}
	if sfx := Suffix(rel); sfx != "" && !s.extensions[sfx] {
		return false
	}
	if s.ignore.Match(rel) {
		return false
	}
	return allowedByGlobs(rel, s.includeGlobs, s.excludeGlobs)
}

func (s *Selector) eligibleFile(p, rel string, d fs.DirEntry) bool {
	if !s.Eligible(rel) {
		return false
	}
	info, err := d.Info()
	if d.Type()&fs.ModeSymlink != 0 {
		info, err = os.Stat(p)
	}
	if err != nil {
		s.log.WithField("file", rel).WithError(err).Warn("skipping unreadable file")
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	if s.maxBytes > 0 && info.Size() > s.maxBytes {
		s.log.WithField("file", rel).WithField("size", info.Size()).Debug("skipping file over max bytes")
		return false
	}
	return true
}

func readable(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// allowedByGlobs reports whether rel passes the include/exclude globs.
// Includes, if any, act as a positive filter; excludes are subtracted last.
func allowedByGlobs(rel string, includes, excludes []string) bool {
	if len(includes) > 0 && !matchAnyGlob(rel, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rel, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(rel string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
