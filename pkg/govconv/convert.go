// Package govconv converts governance Excel workbooks into the JSON
// configuration document consumed by the review application.
package govconv

import (
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/models"
	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/output"
	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/parser"
)

// Sheet name candidates, matched after normalization. The first entry is the
// canonical name used in errors.
var (
	gateSheets     = []string{"Gates", "Gate List"}
	artifactSheets = []string{"Artifacts", "Artifact Schemas"}
	domainSheets   = []string{"Domain Map", "Domain Mapping", "Domain Checklist Map"}
)

// Convert reads the workbook at path and builds the configuration document.
// Any validation failure aborts the conversion; no partial document is returned.
func Convert(path string) (*models.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &FileFormatError{Path: path, Err: ErrFileNotFound}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FileFormatError{Path: path, Err: err}
	}
	defer f.Close()

	gatesTable, err := loadSheet(f, gateSheets)
	if err != nil {
		return nil, err
	}
	gates, err := parser.ParseGates(gatesTable)
	if err != nil {
		return nil, err
	}

	artifactsTable, err := loadSheet(f, artifactSheets)
	if err != nil {
		return nil, err
	}
	artifacts, err := parser.ParseArtifacts(artifactsTable, gates)
	if err != nil {
		return nil, err
	}
	if err := parser.ValidateGateArtifacts(gatesTable, artifacts); err != nil {
		return nil, err
	}

	domainsTable, err := loadSheet(f, domainSheets)
	if err != nil {
		return nil, err
	}
	mappings, err := parser.ParseDomainMappings(domainsTable, gates)
	if err != nil {
		return nil, err
	}

	return &models.Config{
		Gates:          gates,
		Artifacts:      artifacts,
		DomainMappings: mappings,
	}, nil
}

// ConvertFile converts the workbook at inPath and writes the JSON document to
// outPath. Validation happens entirely before the write, so a failed
// conversion leaves no output file behind.
func ConvertFile(inPath, outPath string, pretty bool) error {
	cfg, err := Convert(inPath)
	if err != nil {
		return err
	}
	data, err := output.ToJSON(cfg, pretty)
	if err != nil {
		return &OutputWriteError{Path: outPath, Err: err}
	}
	return output.WriteFile(outPath, data)
}

// loadSheet locates a sheet by its candidate names and loads it as a table.
func loadSheet(f *excelize.File, candidates []string) (*parser.Table, error) {
	name, err := parser.FindSheet(f, candidates...)
	if err != nil {
		return nil, err
	}
	return parser.LoadTable(f, name, parser.CanonicalName(candidates[0]))
}
