package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/models"
)

// Column headers of the gates sheet.
const (
	ColGateID            = "Gate ID"
	ColGateName          = "Gate Name"
	ColCheckpoints       = "Checkpoints"
	ColDescription       = "Description"
	ColArtifactsProduced = "Artifacts Produced"
)

// gateIDPattern matches gate identifiers such as "G0" or "g12".
var gateIDPattern = regexp.MustCompile(`^[Gg]\d+$`)

// ParseGates parses the gates sheet into ordered gate records. Blank rows are
// skipped; rows with a missing or malformed gate id, a missing name, no
// checkpoints, or a duplicate id fail the parse.
func ParseGates(t *Table) ([]models.Gate, error) {
	if err := t.Require(ColGateID, ColGateName, ColCheckpoints); err != nil {
		return nil, err
	}

	var gates []models.Gate
	seen := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		if t.Blank(i) {
			continue
		}
		row := t.SourceRow(i)

		id := t.Cell(i, ColGateID)
		if id == "" {
			return nil, &InvalidRowError{Sheet: t.Sheet, Row: row, Reason: "empty gate id"}
		}
		if !gateIDPattern.MatchString(id) {
			return nil, &InvalidRowError{
				Sheet: t.Sheet, Row: row,
				Reason: fmt.Sprintf("gate id %q does not match G<number>", id),
			}
		}
		id = strings.ToUpper(id)
		if prev, dup := seen[id]; dup {
			return nil, &InvalidRowError{
				Sheet: t.Sheet, Row: row,
				Reason: fmt.Sprintf("duplicate gate id %q (first defined at row %d)", id, prev),
			}
		}
		seen[id] = row

		name := t.Cell(i, ColGateName)
		if name == "" {
			return nil, &InvalidRowError{Sheet: t.Sheet, Row: row, Reason: "empty gate name"}
		}

		checkpoints := SplitList(t.Cell(i, ColCheckpoints))
		if len(checkpoints) == 0 {
			return nil, &InvalidRowError{Sheet: t.Sheet, Row: row, Reason: "gate defines no checkpoints"}
		}

		gates = append(gates, models.Gate{
			GateID:      id,
			GateName:    name,
			Description: t.Cell(i, ColDescription),
			Order:       len(gates) + 1,
			Checkpoints: checkpoints,
			Artifacts:   AppendUnique(nil, SplitList(t.Cell(i, ColArtifactsProduced))...),
		})
	}

	if len(gates) == 0 {
		return nil, &InvalidRowError{Sheet: t.Sheet, Row: t.SourceRow(0), Reason: "no gate rows found"}
	}
	return gates, nil
}

// ValidateGateArtifacts verifies that every artifact a gate claims to produce
// has a schema in the artifacts sheet. Names are matched the way sheets and
// columns are, case- and punctuation-insensitively.
func ValidateGateArtifacts(t *Table, artifacts []models.ArtifactSchema) error {
	known := make(map[string]bool, len(artifacts))
	for _, artifact := range artifacts {
		known[normalizeKey(artifact.Name)] = true
	}

	for i := 0; i < t.Len(); i++ {
		if t.Blank(i) {
			continue
		}
		for _, name := range SplitList(t.Cell(i, ColArtifactsProduced)) {
			if !known[normalizeKey(name)] {
				return &ReferenceError{
					Sheet: t.Sheet, Row: t.SourceRow(i),
					Entity: strings.ToUpper(t.Cell(i, ColGateID)),
					Kind:   "artifact",
					Target: name,
				}
			}
		}
	}
	return nil
}
