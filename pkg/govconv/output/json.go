// Package output serializes the configuration document and writes it to disk.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/models"
)

// WriteError indicates the configuration document could not be serialized or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write output %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ToJSON serializes the configuration document. Key order follows struct
// field order and row order follows the source sheets, so output for the
// same workbook is byte-identical across runs.
func ToJSON(cfg *models.Config, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(cfg, "", "  ")
	}
	return json.Marshal(cfg)
}

// WriteFile writes the serialized document to path atomically: the data goes
// to a temp file in the destination directory which is renamed into place, so
// a failed run never leaves a partial output file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
