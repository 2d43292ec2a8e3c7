package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aoai-workshop/secretscan/internal/detectors"
	"github.com/aoai-workshop/secretscan/internal/rules"
	"github.com/aoai-workshop/secretscan/internal/types"
)

// Config controls file selection and classification for a scan.
type Config struct {
	Root string
	// ExcludePaths are substrings that exclude any path containing them.
	// Nil means DefaultExcludePaths.
	ExcludePaths []string
	// Extensions is the suffix allow-list. Nil means DefaultExtensions.
	Extensions   []string
	IncludeGlobs string
	ExcludeGlobs string
	// MaxBytes skips larger files; 0 disables the limit.
	MaxBytes int64
	// Rules is the active rule set. Nil means the built-in table.
	Rules  *rules.RuleSet
	Logger logrus.FieldLogger
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesSkipped int
	Duration     time.Duration
}

// Scan runs a scan and returns only findings (without stats).
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats walks cfg.Root and classifies every eligible file. Files that
// cannot be read, or look binary, are logged and skipped; only an unusable
// root or rule table fails the scan.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result

	rs := cfg.Rules
	if rs == nil {
		var err error
		if rs, err = rules.Default(); err != nil {
			return result, fmt.Errorf("building rule table: %w", err)
		}
	}
	sel, err := NewSelector(cfg)
	if err != nil {
		return result, err
	}
	log := loggerOf(cfg)
	cls := detectors.New(rs)

	started := time.Now()
	for rel := range sel.Files() {
		data, err := os.ReadFile(filepath.Join(cfg.Root, filepath.FromSlash(rel)))
		if err != nil {
			log.WithField("file", rel).WithError(err).Warn("skipping unreadable file")
			result.FilesSkipped++
			continue
		}
		if looksBinary(data) {
			log.WithField("file", rel).Warn("skipping file with binary content")
			result.FilesSkipped++
			continue
		}
		result.Findings = append(result.Findings, cls.ClassifyFile(rel, data)...)
		result.FilesScanned++
	}
	result.Duration = time.Since(started)
	log.WithFields(logrus.Fields{
		"files":    result.FilesScanned,
		"skipped":  result.FilesSkipped,
		"findings": len(result.Findings),
	}).Debug("scan complete")
	return result, nil
}

// CountTargets returns how many files the selector would hand to the
// classifier, without reading them.
func CountTargets(cfg Config) (int, error) {
	sel, err := NewSelector(cfg)
	if err != nil {
		return 0, err
	}
	n := 0
	for range sel.Files() {
		n++
	}
	return n, nil
}

func loggerOf(cfg Config) logrus.FieldLogger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return logrus.StandardLogger()
}
