package generatedresumes

import (
	"time"

	"resume-builder-backend/internal/types"
)

// GeneratedResume stores the inputs that produced a generated resume. The
// AI-produced content itself is not persisted; history views recompute it
// from FormData, so FormData must round-trip exactly as submitted.
type GeneratedResume struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	FileName     string          `json:"fileName"`
	TemplateUsed string          `json:"templateUsed"`
	RoleTargeted string          `json:"roleTargeted"`
	FormData     *types.FormData `json:"formData,omitempty"`
	ATSScore     *int            `json:"atsScore,omitempty"`
	AIFeedback   []string        `json:"aiFeedback,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// HasFormData reports whether the stored inputs are present and usable.
// Records created before formData existed may carry none.
func (g GeneratedResume) HasFormData() bool {
	return g.FormData != nil && g.FormData.Name != ""
}
