package core_test

import (
	"fmt"
	"os"

	"github.com/aoai-workshop/secretscan/pkg/core"
)

// ExampleScan scans a directory with the built-in rules.
func ExampleScan() {
	cfg := core.Config{
		Root:         ".",
		IncludeGlobs: "**/*.py",
		MaxBytes:     1 << 20,
	}
	findings, err := core.Scan(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
		return
	}
	_ = core.MarshalFindings(os.Stdout, findings)
}

func ExampleClassifyText() {
	fs, _ := core.ClassifyText(nil, "settings.py", []byte("API_KEY=abcd1234efgh5678ijkl\n"))
	for _, f := range fs {
		fmt.Println(f.RuleName, f.Confidence, f.RedactedValue)
	}
	// Output: api_key_generic HIGH abcd****************
}
