// Package models defines the governance configuration document structures.
package models

// Gate represents a governance checkpoint gate parsed from the gates sheet.
type Gate struct {
	// GateID is the gate identifier (e.g., "G0"), uppercased.
	GateID string `json:"gate_id"`
	// GateName is the human-readable gate name.
	GateName string `json:"gate_name"`
	// Description is the optional gate description.
	Description string `json:"description,omitempty"`
	// Order is the 1-based position of the gate row in the source sheet.
	Order int `json:"order"`
	// Checkpoints lists the review checkpoints belonging to the gate, in sheet order.
	Checkpoints []string `json:"checkpoints"`
	// Artifacts lists artifact names produced at the gate, deduplicated in first-seen order.
	Artifacts []string `json:"artifacts,omitempty"`
}

// FieldSchema describes a single field inside an artifact schema.
type FieldSchema struct {
	// Name is the machine-friendly field key derived from the label.
	Name string `json:"name"`
	// Label is the human-readable field label.
	Label string `json:"label"`
	// InputType is the inferred widget type (date, number, checkbox,
	// single_select, multi_select, textarea, text).
	InputType string `json:"input_type"`
	// Required reports whether the field label carried a trailing "*".
	Required bool `json:"required"`
}

// ArtifactSchema describes the expected structure of a gate deliverable.
type ArtifactSchema struct {
	// Name is the artifact name.
	Name string `json:"name"`
	// GateID is the owning gate identifier (optional).
	GateID string `json:"gate_id,omitempty"`
	// Fields lists the artifact's field schemas in sheet order.
	Fields []FieldSchema `json:"fields"`
}

// DomainMapping associates a business domain with the checkpoints of a gate.
type DomainMapping struct {
	// Domain is the business domain name; "default"/"fallback" normalize to "_default".
	Domain string `json:"domain"`
	// GateID is the referenced gate identifier.
	GateID string `json:"gate_id"`
	// Checkpoints lists the checkpoints applicable to the domain. When the
	// source cell is empty this is the referenced gate's full checkpoint list.
	Checkpoints []string `json:"checkpoints"`
}

// Config is the aggregate configuration document, the sole output artifact.
type Config struct {
	// Gates contains the gates in source sheet row order.
	Gates []Gate `json:"gates"`
	// Artifacts contains the artifact schemas in source sheet row order.
	Artifacts []ArtifactSchema `json:"artifacts"`
	// DomainMappings contains the domain mappings in source sheet row order.
	DomainMappings []DomainMapping `json:"domain_mappings"`
}

// Gate returns the gate with the given id, or nil if absent.
func (c *Config) Gate(id string) *Gate {
	for i := range c.Gates {
		if c.Gates[i].GateID == id {
			return &c.Gates[i]
		}
	}
	return nil
}
