package core

import (
	"github.com/aoai-workshop/secretscan/internal/detectors"
	"github.com/aoai-workshop/secretscan/internal/engine"
	"github.com/aoai-workshop/secretscan/internal/rules"
	"github.com/aoai-workshop/secretscan/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type Config = engine.Config
type Result = engine.Result
type Finding = types.Finding
type RuleDefinition = rules.Definition
type RuleSet = rules.RuleSet

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// ScanWithStats is Scan plus file counts and duration.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// RuleNames returns the built-in rule names in table order.
func RuleNames() []string {
	defs := rules.Builtin()
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Name
	}
	return out
}

// BuildRules returns the built-in table extended with rulesFile (if non-empty)
// and minus the disabled rule names. Pass the result as Config.Rules.
func BuildRules(rulesFile string, disabled ...string) (*RuleSet, error) {
	return rules.Build(rulesFile, disabled)
}

// ClassifyText runs rs (nil means built-in) over data as if it were the file
// at path, without touching the filesystem.
func ClassifyText(rs *RuleSet, path string, data []byte) ([]Finding, error) {
	if rs == nil {
		var err error
		if rs, err = rules.Default(); err != nil {
			return nil, err
		}
	}
	return detectors.New(rs).ClassifyFile(path, data), nil
}
