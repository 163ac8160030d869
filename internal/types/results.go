package types

// EvaluationResult is the schema-checked reply of an evaluation call.
// It is returned to the caller and flattened into an Evaluation record,
// never persisted as-is.
type EvaluationResult struct {
	ATSScore     float64  `json:"atsScore"`
	GrammarScore float64  `json:"grammarScore"`
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Skills       []string `json:"skills"`
}

// GeneratedResumeResult is the schema-checked reply of a generation call.
// Only the inputs that produced it are persisted; the result itself is
// recomputed on every history view.
type GeneratedResumeResult struct {
	Summary        string            `json:"summary"`
	Education      []string          `json:"education"`
	Skills         SkillGroups       `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
}

type SkillGroups struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

type ExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	BulletPoints []string `json:"bulletPoints"`
}

type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}
