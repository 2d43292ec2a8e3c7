// Package cleanup holds the repository hygiene checks run by "secretscan
// check": stray files that should never be committed and notebooks that
// still carry cell outputs.
package cleanup
