package core

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// MarshalFindings pretty-prints findings as a JSON array.
func MarshalFindings(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(findings)
}

// UnmarshalFindings decodes a JSON array written by MarshalFindings.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var fs []Finding
	if err := json.NewDecoder(r).Decode(&fs); err != nil {
		return nil, fmt.Errorf("decode findings: %w", err)
	}
	return fs, nil
}
