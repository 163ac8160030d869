package render

import "strings"

// Template selects a layout strategy.
type Template string

const (
	TemplateClassic Template = "classic"
	TemplateModern  Template = "modern"
)

// NormalizeTemplate maps a raw selector to a valid template; unknown
// selectors fall back to classic so persisted values are always in the enum.
func NormalizeTemplate(raw string) Template {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(TemplateModern):
		return TemplateModern
	default:
		return TemplateClassic
	}
}
