// Package render turns a generated resume result plus the originating form
// data into a layout-neutral document description. Rendering is pure and
// deterministic; visual styling is out of scope.
package render

import "resume-builder-backend/internal/types"

// Document is a paginated description of a rendered resume: one A4 page of
// named regions, each carrying ordered sections.
type Document struct {
	Template Template `json:"template"`
	Regions  []Region `json:"regions"`
}

// Region is a vertical area of the page. Classic uses a single full-width
// region; modern splits into a sidebar and a main body.
type Region struct {
	Name         string    `json:"name"`
	WidthPercent int       `json:"widthPercent"`
	Sections     []Section `json:"sections"`
}

// Section is a named block of lines with a fixed position in its layout.
type Section struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Rule  bool   `json:"rule,omitempty"`
	Lines []Line `json:"lines"`
}

// Line is a single rendered line of content.
type Line struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Bullet bool   `json:"bullet,omitempty"`
	Link   string `json:"link,omitempty"`
}

// Build renders the document description for the selected template.
func Build(result types.GeneratedResumeResult, form types.FormData, template Template) Document {
	switch NormalizeTemplate(string(template)) {
	case TemplateModern:
		return buildModern(result, form)
	default:
		return buildClassic(result, form)
	}
}
