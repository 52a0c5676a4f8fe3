package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheetDef describes a fixture sheet: a name and its rows, header row first.
type sheetDef struct {
	name string
	rows [][]interface{}
}

// writeWorkbook builds an xlsx fixture in a temp dir and returns its path.
func writeWorkbook(t *testing.T, sheets ...sheetDef) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range sheets {
		_, err := f.NewSheet(sheet.name)
		require.NoError(t, err)
		for i, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet.name, cell, &row))
		}
	}
	if len(sheets) > 0 {
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// openWorkbook opens a fixture workbook and closes it when the test ends.
func openWorkbook(t *testing.T, path string) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

// loadFixtureTable builds a workbook with a single sheet and loads it as a Table.
func loadFixtureTable(t *testing.T, sheet sheetDef, canonical string) *Table {
	t.Helper()

	path := writeWorkbook(t, sheet)
	f := openWorkbook(t, path)
	table, err := LoadTable(f, sheet.name, canonical)
	require.NoError(t, err)
	return table
}
