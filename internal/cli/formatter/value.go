package formatter

import (
	"github.com/kentarofujiy/TaskJuggler/internal/proptree"
)

// Value renders an attribute value for terminal display. Unset values
// ("-") are dimmed so set values stand out in tables and trees.
func Value(v any) string {
	text := proptree.FormatValue(v)
	if text == "-" {
		return StyleDim.Render(text)
	}
	if b, ok := v.(bool); ok {
		if b {
			return StyleGreen.Render(text)
		}
		return StyleDim.Render(text)
	}
	return StyleFg.Render(text)
}

// ProvenancePill returns a colored indicator for where an attribute
// value came from: set directly, copied by inheritance, or the schema
// default.
func ProvenancePill(provided, inherited bool) string {
	switch {
	case provided:
		return StyleGreen.Render("● set")
	case inherited:
		return StyleBlue.Render("◐ inherited")
	default:
		return StyleDim.Render("○ default")
	}
}

// ScenarioBadge returns a colored scenario label such as "● plan".
// Disabled scenarios are dimmed.
func ScenarioBadge(id string, enabled bool) string {
	if !enabled {
		return StyleDim.Render("○ " + id)
	}
	return StyleGreen.Render("● " + id)
}
