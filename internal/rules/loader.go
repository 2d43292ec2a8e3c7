package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFile is the top-level shape of a YAML rules file: a single "rules" key
// holding a list of definitions.
type ruleFile struct {
	Rules []Definition `yaml:"rules"`
}

// LoadFile reads custom rule definitions from a YAML file. The definitions
// are returned uncompiled; pass them to New (usually after Builtin()) to
// validate them.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return rf.Rules, nil
}

// Build assembles the active rule set: the built-in table, then any rules
// from rulesFile, minus the disabled names.
func Build(rulesFile string, disabled []string) (*RuleSet, error) {
	defs := Builtin()
	if rulesFile != "" {
		extra, err := LoadFile(rulesFile)
		if err != nil {
			return nil, err
		}
		defs = append(defs, extra...)
	}
	rs, err := New(defs...)
	if err != nil {
		return nil, err
	}
	if len(disabled) == 0 {
		return rs, nil
	}
	return rs.Without(disabled...)
}
