// Package secretscan provides the command-line interface for the secret
// scanner. It configures subcommands (scan, check, rules, etc.), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/aoai-workshop/secretscan/cmd/secretscan"
//	func main() { secretscan.Execute() }
package secretscan
