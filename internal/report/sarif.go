package report

import (
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"

	"github.com/aoai-workshop/secretscan/internal/types"
)

// ToolVersion is reported in the SARIF driver block. The CLI sets it from
// its build version.
var ToolVersion = "dev"

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool      `json:"tool"`
	Results    []sarifResult  `json:"results"`
	Properties map[string]any `json:"properties,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	ShortDescription     sarifMessage `json:"shortDescription"`
	DefaultConfiguration sarifConfig  `json:"defaultConfiguration"`
}

type sarifConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           int               `json:"ruleIndex"`
	Level               string            `json:"level"`
	Message             sarifMessage      `json:"message"`
	Locations           []sarifLoc        `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

const fingerprintKey = "secretscanLineHash/v1"

func confToLevel(c types.Confidence) string {
	switch c {
	case types.ConfHigh:
		return "error"
	case types.ConfMedium:
		return "warning"
	default:
		return "note"
	}
}

// Fingerprint identifies a finding across runs independent of its line
// number. The raw line is hashed, never emitted.
func Fingerprint(f types.Finding) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(f.RuleName+"\x00"+f.FilePath+"\x00"+f.LineContent))
}

// WriteSARIF writes findings as SARIF 2.1.0 to w.
func WriteSARIF(w io.Writer, findings []types.Finding, opts Options) error {
	return WriteSARIFWithStats(w, findings, opts, nil)
}

// WriteSARIFWithStats is WriteSARIF plus run-level scan statistics under
// properties.scanStats.
func WriteSARIFWithStats(w io.Writer, findings []types.Finding, opts Options, stats map[string]int) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:    "secretscan",
			Version: ToolVersion,
		}},
		Results: []sarifResult{},
	}

	index := map[string]int{}
	addRule := func(name string, c types.Confidence) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(run.Tool.Driver.Rules)
		run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
			ID:                   name,
			Name:                 name,
			ShortDescription:     sarifMessage{Text: opts.describe(name)},
			DefaultConfiguration: sarifConfig{Level: confToLevel(c)},
		})
		return index[name]
	}
	if opts.Rules != nil {
		for _, r := range opts.Rules.Rules() {
			addRule(r.Name, r.Confidence)
		}
	}

	for _, f := range findings {
		run.Results = append(run.Results, sarifResult{
			RuleID:    f.RuleName,
			RuleIndex: addRule(f.RuleName, f.Confidence),
			Level:     confToLevel(f.Confidence),
			Message:   sarifMessage{Text: fmt.Sprintf("%s detected: %s", opts.describe(f.RuleName), f.RedactedValue)},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: f.FilePath},
					Region:           sarifRegion{StartLine: f.LineNumber, StartColumn: f.Column},
				},
			}},
			PartialFingerprints: map[string]string{fingerprintKey: Fingerprint(f)},
		})
	}
	if len(stats) > 0 {
		run.Properties = map[string]any{"scanStats": stats}
	}

	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
