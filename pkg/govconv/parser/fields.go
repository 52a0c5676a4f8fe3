package parser

import (
	"regexp"
	"strings"

	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/models"
)

// listSeparators matches the delimiters accepted inside multi-value cells.
var listSeparators = regexp.MustCompile(`[,\n;/]+`)

// SplitList splits a multi-value cell into trimmed, non-empty entries.
func SplitList(value string) []string {
	var items []string
	for _, part := range listSeparators.Split(value, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// AppendUnique appends items to target, preserving order and skipping duplicates.
func AppendUnique(target []string, items ...string) []string {
	seen := make(map[string]bool, len(target))
	for _, item := range target {
		seen[item] = true
	}
	for _, item := range items {
		if !seen[item] {
			target = append(target, item)
			seen[item] = true
		}
	}
	return target
}

// SlugifyFieldName transforms a human-readable field label into a machine-friendly key.
func SlugifyFieldName(label string) string {
	slug := strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(label), "_"), "_")
	if slug == "" {
		return "field"
	}
	return slug
}

var boolishWord = regexp.MustCompile(`\b(is|has)\b`)

// InferInputType infers the input widget type for a field from naming
// conventions in its label.
func InferInputType(label string) string {
	text := strings.ToLower(label)
	switch {
	case strings.Contains(text, "date"):
		return "date"
	case containsAny(text, "count", "number", "num", "%", "ratio"):
		return "number"
	case boolishWord.MatchString(text) || strings.Contains(text, "flag"):
		return "checkbox"
	case containsAny(text, "type", "status", "method"):
		return "single_select"
	case containsAny(text, "tags", "labels", "stakeholder"):
		return "multi_select"
	case containsAny(text, "description", "objective"):
		return "textarea"
	default:
		return "text"
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// ParseField builds a FieldSchema from a raw field label. A trailing "*"
// marks the field required and is stripped from the label.
func ParseField(raw string) models.FieldSchema {
	label := strings.TrimSpace(raw)
	required := strings.HasSuffix(label, "*")
	if required {
		label = strings.TrimSpace(strings.TrimSuffix(label, "*"))
	}
	return models.FieldSchema{
		Name:      SlugifyFieldName(label),
		Label:     label,
		InputType: InferInputType(label),
		Required:  required,
	}
}
