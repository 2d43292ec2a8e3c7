package report

import "github.com/aoai-workshop/secretscan/internal/types"

// OnlyConfidence keeps findings at exactly level c, preserving order.
func OnlyConfidence(findings []types.Finding, c types.Confidence) []types.Finding {
	out := make([]types.Finding, 0, len(findings))
	for _, f := range findings {
		if f.Confidence == c {
			out = append(out, f)
		}
	}
	return out
}

// HighOnly is OnlyConfidence(findings, HIGH).
func HighOnly(findings []types.Finding) []types.Finding {
	return OnlyConfidence(findings, types.ConfHigh)
}

// Counts tallies findings per confidence level.
func Counts(findings []types.Finding) map[types.Confidence]int {
	m := map[types.Confidence]int{}
	for _, f := range findings {
		m[f.Confidence]++
	}
	return m
}
