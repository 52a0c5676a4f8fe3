package parser

import (
	"fmt"
	"strings"

	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/models"
)

// Column headers of the artifacts sheet.
const (
	ColArtifact = "Artifact"
	ColFields   = "Fields"
)

// ParseArtifacts parses the artifacts sheet into ordered artifact schemas.
// Each artifact's optional gate reference must resolve against gates.
func ParseArtifacts(t *Table, gates []models.Gate) ([]models.ArtifactSchema, error) {
	if err := t.Require(ColArtifact, ColFields); err != nil {
		return nil, err
	}

	known := gateIDSet(gates)
	var artifacts []models.ArtifactSchema
	seen := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		if t.Blank(i) {
			continue
		}
		row := t.SourceRow(i)

		name := t.Cell(i, ColArtifact)
		if name == "" {
			return nil, &InvalidRowError{Sheet: t.Sheet, Row: row, Reason: "empty artifact name"}
		}
		if prev, dup := seen[name]; dup {
			return nil, &InvalidRowError{
				Sheet: t.Sheet, Row: row,
				Reason: fmt.Sprintf("duplicate artifact %q (first defined at row %d)", name, prev),
			}
		}
		seen[name] = row

		var fields []models.FieldSchema
		for _, raw := range SplitList(t.Cell(i, ColFields)) {
			fields = append(fields, ParseField(raw))
		}
		if len(fields) == 0 {
			return nil, &InvalidRowError{Sheet: t.Sheet, Row: row, Reason: "artifact defines no fields"}
		}

		gateID := strings.ToUpper(t.Cell(i, ColGateID))
		if gateID != "" && !known[gateID] {
			return nil, &ReferenceError{Sheet: t.Sheet, Row: row, Entity: name, Kind: "gate", Target: gateID}
		}

		artifacts = append(artifacts, models.ArtifactSchema{
			Name:   name,
			GateID: gateID,
			Fields: fields,
		})
	}
	return artifacts, nil
}

func gateIDSet(gates []models.Gate) map[string]bool {
	set := make(map[string]bool, len(gates))
	for _, gate := range gates {
		set[gate.GateID] = true
	}
	return set
}
