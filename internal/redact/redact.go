// Package redact turns matched secret values into display-safe masks.
package redact

import (
	"regexp"
	"strings"
)

// Mode selects how a value longer than ShortValueLen is masked.
type Mode string

const (
	// ModePartial keeps the first four characters and stars the rest.
	ModePartial Mode = "partial"
	// ModeStructured keeps the first and last four characters (GUIDs,
	// connection strings).
	ModeStructured Mode = "structured"
	// ModeEndpoint masks every alphanumeric/hyphen run, keeping URL punctuation.
	// Values with no such run fall back to ModePartial.
	ModeEndpoint Mode = "endpoint"
)

const (
	// ShortValueLen is the length at or below which values are fully masked.
	ShortValueLen = 8
	// EndpointMask replaces each word-like run of an endpoint.
	EndpointMask = "*****"

	keep = 4
)

var reEndpointRun = regexp.MustCompile(`[A-Za-z0-9-]+`)

// Valid reports whether m is a known mode. The empty mode means ModePartial.
func (m Mode) Valid() bool {
	switch m {
	case "", ModePartial, ModeStructured, ModeEndpoint:
		return true
	}
	return false
}

// Value masks value according to mode. Lengths are counted in runes.
func Value(value string, mode Mode) string {
	r := []rune(value)
	if len(r) <= ShortValueLen {
		return strings.Repeat("*", len(r))
	}
	switch mode {
	case ModeStructured:
		return string(r[:keep]) + "..." + string(r[len(r)-keep:])
	case ModeEndpoint:
		if out := reEndpointRun.ReplaceAllLiteralString(value, EndpointMask); out != value {
			return out
		}
	}
	return string(r[:keep]) + strings.Repeat("*", len(r)-keep)
}
