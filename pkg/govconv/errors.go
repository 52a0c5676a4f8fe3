package govconv

import (
	"errors"
	"fmt"

	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/output"
	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/parser"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// FileFormatError indicates the input file could not be parsed as an xlsx workbook.
type FileFormatError struct {
	Path string
	Err  error
}

func (e *FileFormatError) Error() string {
	return fmt.Sprintf("cannot read %q as an xlsx workbook: %v", e.Path, e.Err)
}

func (e *FileFormatError) Unwrap() error {
	return e.Err
}

// The sheet-level validation errors are produced by the parser package and the
// write error by the output package; they are aliased here so consumers have a
// single import for the whole taxonomy.
type (
	// MissingSheetError indicates a required sheet is absent from the workbook.
	MissingSheetError = parser.MissingSheetError
	// MissingColumnError indicates a required column header is absent from a sheet.
	MissingColumnError = parser.MissingColumnError
	// InvalidRowError indicates a row with an empty or malformed required cell.
	InvalidRowError = parser.InvalidRowError
	// ReferenceError indicates a gate reference that does not resolve to a known gate.
	ReferenceError = parser.ReferenceError
	// OutputWriteError indicates the configuration document could not be serialized or written.
	OutputWriteError = output.WriteError
)
