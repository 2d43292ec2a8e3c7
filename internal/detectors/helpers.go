package detectors

import (
	"regexp"
	"strings"
)

// Placeholder shapes. Values are dummies when they reference a "your-..."
// credential, mention an example-ish word, or are made of filler characters.
var (
	reYourNoun    = regexp.MustCompile(`(?i)your[-_]?(?:api[-_]?)?(?:key|token|secret|password|endpoint)`)
	reDummyWord   = regexp.MustCompile(`(?i)example|test|demo|placeholder`)
	reRepeatedX   = regexp.MustCompile(`^[xX]{3,}$`)
	reRepeatedStr = regexp.MustCompile(`^(?:\*{3,}|\.{3,})$`)
	// All-lowercase words of 8+ letters read as dictionary placeholders. This
	// also hides genuine lowercase-only secrets.
	reLowerWord = regexp.MustCompile(`^[a-z]{8,}$`)
)

// IsPlaceholder reports whether a matched value looks like a dummy rather
// than a real secret.
func IsPlaceholder(value string) bool {
	switch {
	case reYourNoun.MatchString(value):
		return true
	case reDummyWord.MatchString(value):
		return true
	case reRepeatedX.MatchString(value), reRepeatedStr.MatchString(value):
		return true
	case strings.TrimSpace(value) == "123456":
		return true
	case reLowerWord.MatchString(value):
		return true
	}
	return false
}
