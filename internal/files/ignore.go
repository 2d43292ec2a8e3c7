package files

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppendIgnore ensures each pattern is present in .gitignore at root. It
// creates the file if missing and returns the patterns it actually added.
// Idempotent.
func AppendIgnore(root string, patterns ...string) ([]string, error) {
	path := filepath.Join(root, ".gitignore")
	existing := map[string]bool{}
	endsWithNewline := true
	if b, err := os.ReadFile(path); err == nil {
		sc := bufio.NewScanner(strings.NewReader(string(b)))
		for sc.Scan() {
			existing[strings.TrimSpace(sc.Text())] = true
		}
		endsWithNewline = len(b) == 0 || b[len(b)-1] == '\n'
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read .gitignore: %w", err)
	}

	var add []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || existing[p] {
			continue
		}
		existing[p] = true
		add = append(add, p)
	}
	if len(add) == 0 {
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open .gitignore: %w", err)
	}
	defer f.Close()
	var sb strings.Builder
	if !endsWithNewline {
		sb.WriteByte('\n')
	}
	for _, p := range add {
		sb.WriteString(p + "\n")
	}
	if _, err := f.WriteString(sb.String()); err != nil {
		return nil, fmt.Errorf("write .gitignore: %w", err)
	}
	return add, nil
}
