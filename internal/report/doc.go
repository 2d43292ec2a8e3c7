// Package report renders scan findings. Text and JSON follow the workshop
// report layout; table and SARIF are for terminals and code-scanning
// uploads.
package report
