package detectors

import (
	"strings"
	"unicode/utf8"

	"github.com/aoai-workshop/secretscan/internal/redact"
	"github.com/aoai-workshop/secretscan/internal/rules"
	"github.com/aoai-workshop/secretscan/internal/types"
)

// Classifier runs an immutable rule set over lines of text.
type Classifier struct {
	rules *rules.RuleSet
}

// New returns a Classifier for rs.
func New(rs *rules.RuleSet) *Classifier {
	return &Classifier{rules: rs}
}

// Rules returns the rule set the classifier was built with.
func (c *Classifier) Rules() *rules.RuleSet { return c.rules }

// ClassifyFile splits data into lines and classifies each one. Invalid UTF-8
// is dropped and CRLF/CR line endings are treated as LF.
func (c *Classifier) ClassifyFile(path string, data []byte) []types.Finding {
	text := strings.ToValidUTF8(string(data), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []types.Finding
	for i, line := range strings.Split(text, "\n") {
		out = append(out, c.ClassifyLine(path, i+1, line)...)
	}
	return out
}

type span struct{ start, end int }

// ClassifyLine returns the findings for a single line. Empty lines and lines
// starting with '#' produce nothing. Findings are in rule-table order, then
// match order.
func (c *Classifier) ClassifyLine(path string, lineNo int, line string) []types.Finding {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	exampleFile := strings.Contains(strings.ToLower(path), "example")

	var out []types.Finding
	var claimed []span
	for _, r := range c.rules.Rules() {
		if exampleFile && r.Confidence == types.ConfHigh {
			continue
		}
		for _, m := range r.FindAll(trimmed) {
			if IsPlaceholder(m.Value) {
				continue
			}
			s := span{m.Start, m.End}
			if r.Generic && overlaps(s, claimed) {
				continue
			}
			claimed = append(claimed, s)
			out = append(out, types.Finding{
				FilePath:      path,
				LineNumber:    lineNo,
				Column:        utf8.RuneCountInString(trimmed[:m.Start]) + 1,
				LineContent:   trimmed,
				RuleName:      r.Name,
				Confidence:    r.Confidence,
				RedactedValue: redact.Value(m.Value, r.Redaction),
			})
		}
	}
	return out
}

func overlaps(s span, claimed []span) bool {
	for _, c := range claimed {
		if s.start < c.end && c.start < s.end {
			return true
		}
	}
	return false
}
