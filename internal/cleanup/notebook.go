package cleanup

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var errInvalidNotebook = errors.New("not a valid notebook document")

// NotebookIssue names the first cell of a notebook that still holds output.
type NotebookIssue struct {
	Path string
	Cell int
}

func (n NotebookIssue) String() string {
	return fmt.Sprintf("%s - Cell %d", n.Path, n.Cell)
}

// FirstDirtyCell returns the index of the first cell with non-empty outputs
// or a non-zero execution count, or -1 when the notebook is clean.
func FirstDirtyCell(data []byte) (int, error) {
	if !gjson.ValidBytes(data) {
		return -1, errInvalidNotebook
	}
	for i, cell := range gjson.GetBytes(data, "cells").Array() {
		if cellHasOutput(cell) {
			return i, nil
		}
	}
	return -1, nil
}

func cellHasOutput(cell gjson.Result) bool {
	if out := cell.Get("outputs"); out.IsArray() && len(out.Array()) > 0 {
		return true
	}
	ec := cell.Get("execution_count")
	return ec.Type == gjson.Number && ec.Num != 0
}

// ClearOutputs empties every cell's outputs and resets execution counts.
// Cells without those keys are left as they are.
func ClearOutputs(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidNotebook
	}
	cells := gjson.GetBytes(data, "cells").Array()
	var err error
	for i, cell := range cells {
		if cell.Get("outputs").Exists() {
			if data, err = sjson.SetBytes(data, fmt.Sprintf("cells.%d.outputs", i), []any{}); err != nil {
				return nil, err
			}
		}
		if cell.Get("execution_count").Exists() {
			if data, err = sjson.SetBytes(data, fmt.Sprintf("cells.%d.execution_count", i), nil); err != nil {
				return nil, err
			}
		}
	}
	return data, nil
}

// DirtyNotebooks checks every .ipynb among paths (slash separated, relative
// to root). Unreadable or malformed notebooks are logged and skipped.
func DirtyNotebooks(root string, paths iter.Seq[string], log logrus.FieldLogger) []NotebookIssue {
	var out []NotebookIssue
	for rel := range paths {
		if !strings.EqualFold(filepath.Ext(rel), ".ipynb") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			log.WithField("file", rel).WithError(err).Warn("could not check notebook")
			continue
		}
		cell, err := FirstDirtyCell(data)
		if err != nil {
			log.WithField("file", rel).WithError(err).Warn("could not check notebook")
			continue
		}
		if cell >= 0 {
			out = append(out, NotebookIssue{Path: rel, Cell: cell})
		}
	}
	return out
}
