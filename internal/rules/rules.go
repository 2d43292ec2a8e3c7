// Package rules holds the ordered, immutable table of detection rules used by
// the line classifier. Rules are data: a name, an RE2 pattern, a confidence
// level and a description, validated once at construction.
package rules

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/aoai-workshop/secretscan/internal/redact"
	"github.com/aoai-workshop/secretscan/internal/types"
)

// Definition is the declarative, uncompiled form of a rule as it appears in
// the built-in table or a YAML rules file.
type Definition struct {
	Name        string           `yaml:"name"`
	Pattern     string           `yaml:"pattern"`
	Confidence  types.Confidence `yaml:"confidence"`
	Description string           `yaml:"description"`
	Redaction   redact.Mode      `yaml:"redaction,omitempty"`
	// Generic rules are catch-alls: a match is dropped when its secret
	// overlaps one already reported on the line by an earlier rule.
	Generic bool `yaml:"generic,omitempty"`
}

// Rule is a validated Definition with its compiled pattern.
type Rule struct {
	Definition
	re *regexp.Regexp
}

// Match is one non-overlapping occurrence of a rule pattern in a line.
// Start and End are byte offsets of Value within the line.
type Match struct {
	Start, End int
	Value      string
}

// FindAll returns every non-overlapping match in line. The reported value is
// capture group 1 when the pattern has one and it participated, otherwise
// the whole match.
func (r Rule) FindAll(line string) []Match {
	idx := r.re.FindAllStringSubmatchIndex(line, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([]Match, 0, len(idx))
	for _, loc := range idx {
		s, e := loc[0], loc[1]
		if len(loc) >= 4 && loc[2] >= 0 {
			s, e = loc[2], loc[3]
		}
		out = append(out, Match{Start: s, End: e, Value: line[s:e]})
	}
	return out
}

// RuleSet is an ordered collection of rules with lookup by name. It is never
// mutated after New returns.
type RuleSet struct {
	rules  []Rule
	byName map[string]int
}

// New validates and compiles defs in order. Any invalid definition fails the
// whole set.
func New(defs ...Definition) (*RuleSet, error) {
	rs := &RuleSet{
		rules:  make([]Rule, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		if err := validate(d); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if _, dup := rs.byName[d.Name]; dup {
			return nil, fmt.Errorf("rule %d: duplicate rule name %q", i, d.Name)
		}
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: compiling pattern: %w", d.Name, err)
		}
		if d.Redaction == "" {
			d.Redaction = redact.ModePartial
		}
		rs.byName[d.Name] = len(rs.rules)
		rs.rules = append(rs.rules, Rule{Definition: d, re: re})
	}
	return rs, nil
}

func validate(d Definition) error {
	if d.Name == "" {
		return errors.New("rule name must not be empty")
	}
	if d.Pattern == "" {
		return fmt.Errorf("rule %s: pattern must not be empty", d.Name)
	}
	if !d.Confidence.Valid() {
		return fmt.Errorf("rule %s: invalid confidence %q", d.Name, d.Confidence)
	}
	if !d.Redaction.Valid() {
		return fmt.Errorf("rule %s: invalid redaction %q", d.Name, d.Redaction)
	}
	return nil
}

// Rules returns the rules in table order. The slice is a copy.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// ByName looks up a rule by its unique name.
func (rs *RuleSet) ByName(name string) (Rule, bool) {
	idx, ok := rs.byName[name]
	if !ok {
		return Rule{}, false
	}
	return rs.rules[idx], true
}

// Names returns rule names in table order.
func (rs *RuleSet) Names() []string {
	out := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.Name
	}
	return out
}

// Description returns the human label for name, or name itself if unknown.
func (rs *RuleSet) Description(name string) string {
	if r, ok := rs.ByName(name); ok {
		return r.Description
	}
	return name
}

// Definitions returns the declarative form of every rule, in order.
func (rs *RuleSet) Definitions() []Definition {
	out := make([]Definition, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.Definition
	}
	return out
}

// Without returns a new set lacking the named rules. Unknown names are an
// error so typos in configuration surface early.
func (rs *RuleSet) Without(names ...string) (*RuleSet, error) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := rs.byName[n]; !ok {
			return nil, fmt.Errorf("unknown rule %q", n)
		}
		drop[n] = true
	}
	var keep []Definition
	for _, r := range rs.rules {
		if !drop[r.Name] {
			keep = append(keep, r.Definition)
		}
	}
	return New(keep...)
}
