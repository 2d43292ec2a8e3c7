// Package engine contains the core scanning logic for secretscan. It selects
// files under a root, classifies their lines against the rule table, and
// returns structured findings. External consumers should use pkg/core.
package engine
