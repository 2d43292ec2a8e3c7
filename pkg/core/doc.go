// Package core provides a small, stable facade over the secretscan engine for
// programs that want to embed the scanner without importing internal
// packages.
//
// Example:
//
//	findings, err := core.Scan(core.Config{Root: "."})
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
