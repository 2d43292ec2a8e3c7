package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for secretscan. Pointer
// fields distinguish "unset" from zero values so CLI > local > global
// precedence can be applied.
type FileConfig struct {
	Format       *string  `yaml:"format,omitempty"`
	Output       *string  `yaml:"output,omitempty"`
	HighOnly     *bool    `yaml:"high_only,omitempty"`
	Include      *string  `yaml:"include,omitempty"`
	Exclude      *string  `yaml:"exclude,omitempty"`
	ExcludePaths []string `yaml:"exclude_paths,omitempty"`
	Extensions   []string `yaml:"extensions,omitempty"`
	MaxBytes     *int64   `yaml:"max_bytes,omitempty"`
	RulesFile    *string  `yaml:"rules_file,omitempty"`
	DisableRules []string `yaml:"disable_rules,omitempty"`
	NoColor      *bool    `yaml:"no_color,omitempty"`
	LogLevel     *string  `yaml:"log_level,omitempty"`

	// Cleanup check
	StrayFiles []string `yaml:"stray_files,omitempty"`
}

// ErrNotFound is returned by LoadLocal and LoadGlobal when no config file
// exists. Parse errors are returned as-is.
var ErrNotFound = errors.New("config not found")

// LocalNames are the repo-local config file names, in lookup order.
var LocalNames = []string{".secretscan.yml", ".secretscan.yaml", "secretscan.yml", "secretscan.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	// rules_file is relative to the config file that names it
	if cfg.RulesFile != nil && *cfg.RulesFile != "" && !filepath.IsAbs(*cfg.RulesFile) {
		p := filepath.Join(filepath.Dir(path), *cfg.RulesFile)
		cfg.RulesFile = &p
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, fmt.Errorf("local config in %s: %w", repoRoot, ErrNotFound)
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, fmt.Errorf("no config dir: %w", ErrNotFound)
	}
	p := filepath.Join(base, "secretscan", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, fmt.Errorf("global config: %w", ErrNotFound)
}

// Write marshals cfg to path as YAML.
func Write(path string, cfg FileConfig) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
