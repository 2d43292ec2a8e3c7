package cleanup

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestFindStray(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "test_environment.md", "x")
	write(t, dir, "prerequisites/setup.sh", "x")
	write(t, dir, ".env.local", "x")
	write(t, dir, "infra/terraform.tfstate", "x")
	write(t, dir, "terraform.tfstate", "{}")

	got, err := FindStray(dir, DefaultStrayPatterns())
	require.NoError(t, err)
	assert.Equal(t, []Stray{
		{Path: "test_environment.md", Pattern: "test_environment.md"},
		{Path: "prerequisites", Pattern: "prerequisites/"},
		{Path: ".env.local", Pattern: ".env.local"},
		{Path: "terraform.tfstate", Pattern: "terraform.tfstate"},
	}, got)

	got, err = FindStray(dir, []string{"**/terraform.tfstate", "terraform.tfstate"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"**/terraform.tfstate"}, Patterns(got))
}

func TestFindStray_DirPatternSkipsFiles(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "prerequisites", "a file, not a dir")
	got, err := FindStray(dir, []string{"prerequisites/"})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = FindStray(dir, []string{"[unclosed"})
	assert.Error(t, err)
}

const dirtyNotebook = `{
 "cells": [
  {"cell_type": "markdown", "source": ["# Title"]},
  {"cell_type": "code", "execution_count": null, "outputs": [], "source": []},
  {"cell_type": "code", "execution_count": 3, "outputs": [{"output_type": "stream", "text": ["hi"]}], "source": []}
 ],
 "nbformat": 4
}`

func TestFirstDirtyCell(t *testing.T) {
	cell, err := FirstDirtyCell([]byte(dirtyNotebook))
	require.NoError(t, err)
	assert.Equal(t, 2, cell)

	cell, err = FirstDirtyCell([]byte(`{"cells":[{"execution_count":null,"outputs":[]}]}`))
	require.NoError(t, err)
	assert.Equal(t, -1, cell)

	cell, err = FirstDirtyCell([]byte(`{"cells":[{"execution_count":7}]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, cell)

	_, err = FirstDirtyCell([]byte("{oops"))
	assert.Error(t, err)
}

func TestClearOutputs(t *testing.T) {
	out, err := ClearOutputs([]byte(dirtyNotebook))
	require.NoError(t, err)
	cell, err := FirstDirtyCell(out)
	require.NoError(t, err)
	assert.Equal(t, -1, cell)
	assert.Contains(t, string(out), `"# Title"`)
}

func TestDirtyNotebooks(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "demo.ipynb", dirtyNotebook)
	write(t, dir, "clean.ipynb", `{"cells":[]}`)
	write(t, dir, "broken.ipynb", `{`)
	write(t, dir, "notes.md", dirtyNotebook)

	var logs bytes.Buffer
	log := logrus.New()
	log.SetOutput(&logs)

	paths := slices.Values([]string{"broken.ipynb", "clean.ipynb", "demo.ipynb", "notes.md", "missing.ipynb"})
	got := DirtyNotebooks(dir, paths, log)
	assert.Equal(t, []NotebookIssue{{Path: "demo.ipynb", Cell: 2}}, got)
	assert.Equal(t, "demo.ipynb - Cell 2", got[0].String())
	assert.Contains(t, logs.String(), "broken.ipynb")
	assert.Contains(t, logs.String(), "missing.ipynb")
}
