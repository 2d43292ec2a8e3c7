package engine

import (
	"bytes"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// defaultExcludePaths are substrings that exclude any path containing them:
// version control, dependency and cache directories, and secretscan's own
// config and ignore files. Compiled, log and temp files fall outside the
// extension allow-list instead.
var defaultExcludePaths = []string{
	".git/",
	"__pycache__",
	".vscode",
	"node_modules",
	".terraform",
	".venv",
	"env/",
	"venv/",
	".secretscan",
}

// defaultExtensions is the allow-list of scannable file suffixes. Files
// without a suffix are always eligible.
var defaultExtensions = []string{
	".py", ".js", ".ts", ".json", ".yaml", ".yml", ".env",
	".txt", ".md", ".sh", ".bash", ".zsh", ".ps1", ".bat",
	".ipynb", ".bicep", ".tf", ".tfstate", ".tfvars",
}

// DefaultExcludePaths returns a copy of the built-in exclusion substrings.
func DefaultExcludePaths() []string {
	return append([]string(nil), defaultExcludePaths...)
}

// DefaultExtensions returns a copy of the built-in extension allow-list.
func DefaultExtensions() []string {
	return append([]string(nil), defaultExtensions...)
}

// Suffix returns the final extension of a slash path's base name, including
// the dot. Names whose only dot is the leading one (".env", ".bashrc") and
// names ending in a dot have no suffix.
func Suffix(p string) string {
	name := path.Base(p)
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

func excludedBySubstring(rel string, excludes []string) bool {
	for _, s := range excludes {
		if s != "" && strings.Contains(rel, s) {
			return true
		}
	}
	return false
}

// sniffBytes is how much of a file head is inspected for binary content.
const sniffBytes = 3072

// looksBinary reports whether b is not text: a NUL byte in the head, or a
// head that is not UTF-8 and whose sniffed MIME type has no text/plain
// ancestor. Magic numbers alone do not make UTF-8 text binary.
func looksBinary(b []byte) bool {
	head := b[:min(len(b), sniffBytes)]
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}
	if validUTF8Head(head, len(b) > len(head)) {
		return false
	}
	for m := mimetype.Detect(head); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return false
		}
	}
	return true
}

// validUTF8Head reports whether head is UTF-8, tolerating a rune cut off at
// the end when the head was truncated from a longer file.
func validUTF8Head(head []byte, truncated bool) bool {
	if utf8.Valid(head) {
		return true
	}
	if !truncated {
		return false
	}
	for i := 1; i < utf8.UTFMax && i < len(head); i++ {
		tail := head[len(head)-i:]
		if utf8.RuneStart(tail[0]) && !utf8.FullRune(tail) {
			return utf8.Valid(head[:len(head)-i])
		}
	}
	return false
}
