package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/aoai-workshop/secretscan/internal/types"
)

var (
	confHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	confMedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	confLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// PrintOptions controls the table renderer.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// PrintTable writes findings as a grid, in scan order, followed by a summary
// footer when stats are available.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) error {
	if len(findings) == 0 {
		if _, err := fmt.Fprintln(w, "No secrets found ✅"); err != nil {
			return err
		}
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("CONFIDENCE", "RULE", "LOCATION", "VALUE")
		for _, f := range findings {
			conf := string(f.Confidence)
			if !opts.NoColor {
				conf = colorConfidence(f.Confidence)
			}
			loc := fmt.Sprintf("%s:%d", f.FilePath, f.LineNumber)
			if err := table.Append([]string{conf, f.RuleName, loc, f.RedactedValue}); err != nil {
				return fmt.Errorf("table row: %w", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}

	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return nil
	}
	c := Counts(findings)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (high: %d, medium: %d, low: %d)\n",
		len(findings), c[types.ConfHigh], c[types.ConfMedium], c[types.ConfLow])
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	return nil
}

func colorConfidence(c types.Confidence) string {
	switch c {
	case types.ConfHigh:
		return confHighStyle.Render(string(c))
	case types.ConfMedium:
		return confMedStyle.Render(string(c))
	default:
		return confLowStyle.Render(string(c))
	}
}
