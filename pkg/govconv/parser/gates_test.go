package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/models"
)

func gatesFixture(rows ...[]interface{}) sheetDef {
	header := []interface{}{"Gate ID", "Gate Name", "Description", "Checkpoints", "Artifacts Produced"}
	return sheetDef{name: "Gates", rows: append([][]interface{}{header}, rows...)}
}

func TestParseGates(t *testing.T) {
	table := loadFixtureTable(t, gatesFixture(
		[]interface{}{"g0", "Ideation", "Initial framing", "Define Objective; Identify Stakeholders", "AI Charter; Risk Assessment, AI Charter"},
		[]interface{}{"G1", "Design", "", "Design Experiment", ""},
	), "gates")

	gates, err := ParseGates(table)
	require.NoError(t, err)
	require.Len(t, gates, 2)

	assert.Equal(t, models.Gate{
		GateID:      "G0",
		GateName:    "Ideation",
		Description: "Initial framing",
		Order:       1,
		Checkpoints: []string{"Define Objective", "Identify Stakeholders"},
		Artifacts:   []string{"AI Charter", "Risk Assessment"},
	}, gates[0])

	assert.Equal(t, "G1", gates[1].GateID)
	assert.Equal(t, 2, gates[1].Order)
	assert.Nil(t, gates[1].Artifacts)
}

func TestParseGatesMissingColumn(t *testing.T) {
	table := loadFixtureTable(t, sheetDef{
		name: "Gates",
		rows: [][]interface{}{{"Gate ID", "Gate Name"}, {"G0", "Ideation"}},
	}, "gates")

	_, err := ParseGates(table)
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Checkpoints", missing.Column)
}

func TestParseGatesRowValidation(t *testing.T) {
	tests := []struct {
		name   string
		row    []interface{}
		reason string
	}{
		{"empty id", []interface{}{"", "Ideation", "", "Define Objective", ""}, "empty gate id"},
		{"malformed id", []interface{}{"Gate-0", "Ideation", "", "Define Objective", ""}, "does not match"},
		{"empty name", []interface{}{"G0", "", "", "Define Objective", ""}, "empty gate name"},
		{"no checkpoints", []interface{}{"G0", "Ideation", "", "", ""}, "no checkpoints"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := loadFixtureTable(t, gatesFixture(tt.row), "gates")
			_, err := ParseGates(table)
			var invalid *InvalidRowError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "gates", invalid.Sheet)
			assert.Equal(t, 2, invalid.Row)
			assert.Contains(t, invalid.Reason, tt.reason)
		})
	}
}

func TestParseGatesDuplicateID(t *testing.T) {
	table := loadFixtureTable(t, gatesFixture(
		[]interface{}{"G0", "Ideation", "", "Define Objective", ""},
		[]interface{}{"g0", "Design", "", "Design Experiment", ""},
	), "gates")

	_, err := ParseGates(table)
	var invalid *InvalidRowError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 3, invalid.Row)
	assert.Contains(t, invalid.Reason, `duplicate gate id "G0"`)
}

func TestParseGatesOrderSkipsBlankRows(t *testing.T) {
	table := loadFixtureTable(t, gatesFixture(
		[]interface{}{"G0", "Ideation", "", "Define Objective", ""},
		[]interface{}{"", "", "", "", ""},
		[]interface{}{"G1", "Design", "", "Design Experiment", ""},
	), "gates")

	gates, err := ParseGates(table)
	require.NoError(t, err)
	require.Len(t, gates, 2)
	assert.Equal(t, 1, gates[0].Order)
	assert.Equal(t, 2, gates[1].Order, "order counts gate rows, not sheet rows")
}

func TestValidateGateArtifacts(t *testing.T) {
	table := loadFixtureTable(t, gatesFixture(
		[]interface{}{"G0", "Ideation", "", "Define Objective", "AI Charter; Risk Assessment"},
		[]interface{}{"G1", "Design", "", "Design Experiment", "ai_charter"},
	), "gates")

	schemas := []models.ArtifactSchema{
		{Name: "AI Charter"},
		{Name: "Risk Assessment"},
	}
	require.NoError(t, ValidateGateArtifacts(table, schemas))

	err := ValidateGateArtifacts(table, schemas[:1])
	var ref *ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "gates", ref.Sheet)
	assert.Equal(t, 2, ref.Row)
	assert.Equal(t, "G0", ref.Entity)
	assert.Equal(t, "artifact", ref.Kind)
	assert.Equal(t, "Risk Assessment", ref.Target)
}

func TestParseGatesEmptySheet(t *testing.T) {
	table := loadFixtureTable(t, gatesFixture(), "gates")

	_, err := ParseGates(table)
	var invalid *InvalidRowError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "no gate rows")
}
