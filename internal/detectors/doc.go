// Package detectors classifies lines of text against a rules.RuleSet and
// produces redacted findings. Classification is pure: the same line and rule
// set always yield the same findings.
package detectors
