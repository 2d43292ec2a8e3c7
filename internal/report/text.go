package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aoai-workshop/secretscan/internal/rules"
	"github.com/aoai-workshop/secretscan/internal/types"
)

// contextRunes bounds the line excerpt shown for HIGH findings.
const contextRunes = 100

// Options carries what the renderers need beyond the findings themselves.
type Options struct {
	// Now stamps the report. Zero means time.Now().
	Now time.Time
	// Rules supplies descriptions. Nil falls back to the rule name.
	Rules *rules.RuleSet
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o Options) describe(rule string) string {
	if o.Rules == nil {
		return rule
	}
	return o.Rules.Description(rule)
}

var recommendations = []string{
	"1. Move all secrets to environment variables",
	"2. Use Azure Key Vault for production secrets",
	"3. Add sensitive files to .gitignore",
	"4. Use Entra ID authentication when possible",
	"5. Rotate any exposed API keys immediately",
	"6. Enable secret scanning in your CI/CD pipeline",
}

// Text renders the human-readable report. Lines are joined with "\n" and
// there is no trailing newline.
func Text(findings []types.Finding, opts Options) string {
	var r []string
	r = append(r,
		"🔍 SECRETS AND API KEYS SCAN REPORT",
		strings.Repeat("=", 50),
		"Scan completed at: "+opts.now().Format(time.DateTime),
		fmt.Sprintf("Total potential secrets found: %d", len(findings)),
		"",
	)
	if len(findings) == 0 {
		r = append(r, "✅ No secrets detected in the scanned files.")
		return strings.Join(r, "\n")
	}

	byRule := map[string]int{}
	byFile := map[string]int{}
	for _, f := range findings {
		byRule[f.RuleName]++
		byFile[f.FilePath]++
	}

	r = append(r, "📊 SUMMARY BY SECRET TYPE", strings.Repeat("-", 30))
	for _, name := range sortedKeys(byRule) {
		r = append(r, fmt.Sprintf("  %s: %d matches - %s", name, byRule[name], opts.describe(name)))
	}
	r = append(r, "")

	if high := OnlyConfidence(findings, types.ConfHigh); len(high) > 0 {
		r = append(r, "🚨 HIGH CONFIDENCE SECRETS (Immediate attention required)", strings.Repeat("-", 60))
		for _, f := range high {
			r = append(r,
				"  File: "+f.FilePath,
				fmt.Sprintf("  Line: %d", f.LineNumber),
				"  Type: "+opts.describe(f.RuleName),
				"  Value: "+f.RedactedValue,
				"  Context: "+truncateRunes(f.LineContent, contextRunes)+"...",
				"",
			)
		}
	}

	if med := OnlyConfidence(findings, types.ConfMedium); len(med) > 0 {
		r = append(r, "⚠️  MEDIUM CONFIDENCE SECRETS (Review recommended)", strings.Repeat("-", 55))
		for _, f := range med {
			r = append(r,
				"  File: "+f.FilePath,
				fmt.Sprintf("  Line: %d", f.LineNumber),
				"  Type: "+opts.describe(f.RuleName),
				"  Value: "+f.RedactedValue,
				"",
			)
		}
	}

	r = append(r, "🛡️  SECURITY RECOMMENDATIONS", strings.Repeat("-", 30))
	r = append(r, recommendations...)
	r = append(r, "")

	r = append(r, "📁 FILES CONTAINING POTENTIAL SECRETS", strings.Repeat("-", 40))
	for _, p := range sortedKeys(byFile) {
		r = append(r, fmt.Sprintf("  %s (%d matches)", p, byFile[p]))
	}
	return strings.Join(r, "\n")
}

// PrintText writes Text followed by a newline.
func PrintText(w io.Writer, findings []types.Finding, opts Options) error {
	_, err := io.WriteString(w, Text(findings, opts)+"\n")
	return err
}

func truncateRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
