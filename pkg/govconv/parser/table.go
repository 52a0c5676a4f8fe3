// Package parser reads governance workbook sheets into configuration records.
package parser

import (
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeKey lowercases a string and strips non-alphanumeric characters.
// Used for case- and punctuation-insensitive sheet and column lookups.
func normalizeKey(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}

// FindSheet locates a sheet by any of the given candidate names, compared
// after normalization ("Domain Map" matches "DOMAIN_MAP"). The canonical name
// is the first candidate and is reported in the error when no sheet matches.
func FindSheet(f *excelize.File, candidates ...string) (string, error) {
	lookup := make(map[string]string)
	for _, name := range f.GetSheetList() {
		lookup[normalizeKey(name)] = name
	}
	for _, candidate := range candidates {
		if name, ok := lookup[normalizeKey(candidate)]; ok {
			return name, nil
		}
	}
	return "", &MissingSheetError{Sheet: CanonicalName(candidates[0])}
}

// CanonicalName renders a candidate sheet name the way errors report it.
func CanonicalName(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
}

// Table is a header-indexed view of a sheet: the first row supplies column
// names, remaining rows are data. Column lookups are normalized, so headers
// like "Gate ID" and "gate_id" are equivalent.
type Table struct {
	// Sheet is the canonical sheet name, used in error context.
	Sheet   string
	columns map[string]int
	rows    [][]string
}

// LoadTable reads a sheet into a Table.
func LoadTable(f *excelize.File, sheetName, canonical string) (*Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	t := &Table{Sheet: canonical, columns: make(map[string]int)}
	if len(rows) == 0 {
		return t, nil
	}
	for idx, header := range rows[0] {
		key := normalizeKey(header)
		if key == "" {
			continue
		}
		if _, ok := t.columns[key]; !ok {
			t.columns[key] = idx
		}
	}
	t.rows = rows[1:]
	return t, nil
}

// Require verifies that every named column is present, failing with a
// MissingColumnError naming the first absent one.
func (t *Table) Require(columns ...string) error {
	for _, column := range columns {
		if _, ok := t.columns[normalizeKey(column)]; !ok {
			return &MissingColumnError{Sheet: t.Sheet, Column: column}
		}
	}
	return nil
}

// Len returns the number of data rows, including blank ones.
func (t *Table) Len() int {
	return len(t.rows)
}

// Cell returns the trimmed value at data row i for the named column, or ""
// when the column is absent or the row is short.
func (t *Table) Cell(i int, column string) string {
	idx, ok := t.columns[normalizeKey(column)]
	if !ok || i < 0 || i >= len(t.rows) {
		return ""
	}
	row := t.rows[i]
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// SourceRow converts a data row index to the 1-based sheet row number,
// accounting for the header row.
func (t *Table) SourceRow(i int) int {
	return i + 2
}

// Blank reports whether data row i has no non-empty cells.
func (t *Table) Blank(i int) bool {
	if i < 0 || i >= len(t.rows) {
		return true
	}
	for _, cell := range t.rows[i] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
