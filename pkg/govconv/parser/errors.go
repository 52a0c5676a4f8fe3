package parser

import "fmt"

// MissingSheetError indicates a required sheet is absent from the workbook.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("required sheet %q not found in workbook", e.Sheet)
}

// MissingColumnError indicates a required column header is absent from a sheet.
type MissingColumnError struct {
	Sheet  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("sheet %q is missing required column %q", e.Sheet, e.Column)
}

// InvalidRowError indicates a row with an empty or malformed required cell.
type InvalidRowError struct {
	Sheet  string
	Row    int // 1-based source row
	Reason string
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("sheet %q row %d: %s", e.Sheet, e.Row, e.Reason)
}

// ReferenceError indicates a cross-sheet reference that does not resolve.
type ReferenceError struct {
	Sheet  string
	Row    int    // 1-based source row
	Entity string // the referencing record: a gate id, artifact name, or domain
	Kind   string // what is referenced: "gate" or "artifact"
	Target string // the unresolved identifier
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("sheet %q row %d: %q references unknown %s %q", e.Sheet, e.Row, e.Entity, e.Kind, e.Target)
}
