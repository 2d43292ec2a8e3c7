package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksBinary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"plain", "API_KEY=abcd1234efgh5678ijkl\n", false},
		{"json", `{"cells": []}`, false},
		{"shell", "#!/bin/sh\necho hi\n", false},
		{"nul", "abc\x00def", true},
		{"gzip", "\x1f\x8b\x08\x08abcdefgh", true},
		{"control bytes", "\x80\x01\x02\x03 garbage", true},
		{"dos magic", "MZ_API_KEY=Q1w2E3r4T5y6U7i8O9p0A1s2\n", false},
		{"swf magic", "FWS_API_KEY=Q1w2E3r4T5y6U7i8O9p0A1s2\n", false},
		{"id3 magic", "ID3 tag api_key=Q1w2E3r4T5y6U7i8O9p0A1s2\n", false},
		{"pdf magic", "%PDF-notes api_key=Q1w2E3r4T5y6U7i8O9p0A1s2\n", false},
		{"accented", "mot_de_passe=\"Hélène2024!\"\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksBinary([]byte(tt.in)))
		})
	}
}

func TestExcludedBySubstring(t *testing.T) {
	ex := DefaultExcludePaths()
	assert.True(t, excludedBySubstring(".git/config", ex))
	assert.False(t, excludedBySubstring(".github/workflows/ci.yml", ex))
	assert.True(t, excludedBySubstring("app/__pycache__/mod.pyc", ex))
	assert.False(t, excludedBySubstring("src/app.py", ex))
	for _, rel := range []string{
		"deploy.login.sh",
		"app.logic.ts",
		"settings.tmpfile.yaml",
		"src/.logs/keys.env",
	} {
		assert.False(t, excludedBySubstring(rel, ex), rel)
	}
}

func TestLooksBinary_TruncatedRune(t *testing.T) {
	b := []byte(strings.Repeat("a", sniffBytes-1) + "é tail")
	assert.False(t, looksBinary(b))
}
