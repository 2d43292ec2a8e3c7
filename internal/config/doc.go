// Package config loads secretscan configuration from local and global YAML
// files. CLI code applies the precedence CLI > local > global and maps the
// result into engine configuration.
package config
