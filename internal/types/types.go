package types

import (
	"fmt"
	"strings"
)

// Confidence is the qualitative certainty level a rule assigns to its matches.
type Confidence string

const (
	ConfHigh   Confidence = "HIGH"
	ConfMedium Confidence = "MEDIUM"
	ConfLow    Confidence = "LOW"
)

// ParseConfidence accepts HIGH, MEDIUM or LOW in any letter case.
func ParseConfidence(s string) (Confidence, error) {
	switch c := Confidence(strings.ToUpper(strings.TrimSpace(s))); c {
	case ConfHigh, ConfMedium, ConfLow:
		return c, nil
	default:
		return "", fmt.Errorf("invalid confidence %q (want HIGH, MEDIUM or LOW)", s)
	}
}

// Valid reports whether c is one of the known levels.
func (c Confidence) Valid() bool {
	return c == ConfHigh || c == ConfMedium || c == ConfLow
}

// UnmarshalText lets config and rule files spell levels in any case.
func (c *Confidence) UnmarshalText(b []byte) error {
	v, err := ParseConfidence(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Finding describes one rule match at a file and line. The matched value is
// kept only in redacted form; LineContent is the trimmed source line.
type Finding struct {
	FilePath      string     `json:"file_path"`
	LineNumber    int        `json:"line_number"`
	Column        int        `json:"column,omitempty"` // 1-based rune column of the secret
	LineContent   string     `json:"line_content"`
	RuleName      string     `json:"rule_name"`
	Confidence    Confidence `json:"confidence"`
	RedactedValue string     `json:"redacted_value"`
}
