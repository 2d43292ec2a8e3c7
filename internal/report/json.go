package report

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/aoai-workshop/secretscan/internal/types"
)

// Document is the structured report.
type Document struct {
	ScanTimestamp string   `json:"scan_timestamp"`
	TotalSecrets  int      `json:"total_secrets"`
	Secrets       []Record `json:"secrets"`
}

// Record is one finding as it appears in a Document.
type Record struct {
	FilePath      string           `json:"file_path"`
	LineNumber    int              `json:"line_number"`
	SecretType    string           `json:"secret_type"`
	Description   string           `json:"description"`
	Confidence    types.Confidence `json:"confidence"`
	RedactedValue string           `json:"redacted_value"`
	LineContext   string           `json:"line_context"`
}

// Finding converts r back to a Finding. Column is not carried by the
// document and comes back as zero.
func (r Record) Finding() types.Finding {
	return types.Finding{
		FilePath:      r.FilePath,
		LineNumber:    r.LineNumber,
		LineContent:   r.LineContext,
		RuleName:      r.SecretType,
		Confidence:    r.Confidence,
		RedactedValue: r.RedactedValue,
	}
}

// NewDocument builds the structured report for findings.
func NewDocument(findings []types.Finding, opts Options) Document {
	doc := Document{
		ScanTimestamp: opts.now().Format(time.RFC3339),
		TotalSecrets:  len(findings),
		Secrets:       make([]Record, 0, len(findings)),
	}
	for _, f := range findings {
		doc.Secrets = append(doc.Secrets, Record{
			FilePath:      f.FilePath,
			LineNumber:    f.LineNumber,
			SecretType:    f.RuleName,
			Description:   opts.describe(f.RuleName),
			Confidence:    f.Confidence,
			RedactedValue: f.RedactedValue,
			LineContext:   f.LineContent,
		})
	}
	return doc
}

// WriteJSON writes the structured report with two-space indentation.
func WriteJSON(w io.Writer, findings []types.Finding, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(NewDocument(findings, opts))
}

// DecodeJSON reads a structured report written by WriteJSON.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode report: %w", err)
	}
	if doc.TotalSecrets != len(doc.Secrets) {
		return Document{}, fmt.Errorf("decode report: total_secrets is %d but %d secrets listed", doc.TotalSecrets, len(doc.Secrets))
	}
	return doc, nil
}

// Findings returns every record as a Finding, in document order.
func (d Document) Findings() []types.Finding {
	out := make([]types.Finding, len(d.Secrets))
	for i, r := range d.Secrets {
		out[i] = r.Finding()
	}
	return out
}
