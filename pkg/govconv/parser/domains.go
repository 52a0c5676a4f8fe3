package parser

import (
	"strings"

	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/models"
)

// ColDomain is the domain column header of the domain mapping sheet.
const ColDomain = "Domain"

// ParseDomainMappings parses the domain mapping sheet into ordered mappings.
// Every row's gate reference must resolve against gates; an empty checkpoints
// cell inherits the referenced gate's full checkpoint list.
func ParseDomainMappings(t *Table, gates []models.Gate) ([]models.DomainMapping, error) {
	if err := t.Require(ColDomain, ColGateID); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Gate, len(gates))
	for _, gate := range gates {
		byID[gate.GateID] = gate
	}

	var mappings []models.DomainMapping
	for i := 0; i < t.Len(); i++ {
		if t.Blank(i) {
			continue
		}
		row := t.SourceRow(i)

		domain := t.Cell(i, ColDomain)
		if domain == "" {
			return nil, &InvalidRowError{Sheet: t.Sheet, Row: row, Reason: "empty domain"}
		}
		domain = normalizeDomain(domain)

		gateID := strings.ToUpper(t.Cell(i, ColGateID))
		if gateID == "" {
			return nil, &InvalidRowError{Sheet: t.Sheet, Row: row, Reason: "empty gate id"}
		}
		gate, ok := byID[gateID]
		if !ok {
			return nil, &ReferenceError{Sheet: t.Sheet, Row: row, Entity: domain, Kind: "gate", Target: gateID}
		}

		checkpoints := SplitList(t.Cell(i, ColCheckpoints))
		if len(checkpoints) == 0 {
			checkpoints = append([]string(nil), gate.Checkpoints...)
		}

		mappings = append(mappings, models.DomainMapping{
			Domain:      domain,
			GateID:      gateID,
			Checkpoints: checkpoints,
		})
	}
	return mappings, nil
}

// normalizeDomain maps the fallback domain aliases to the "_default" key.
func normalizeDomain(domain string) string {
	switch strings.ToLower(domain) {
	case "default", "fallback":
		return "_default"
	}
	return domain
}
