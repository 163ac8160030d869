package types

import "strings"

// FormData is the structured resume input submitted by the candidate. It is
// persisted verbatim alongside a generated resume so the generation prompt can
// be rebuilt byte-for-byte later.
type FormData struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Role           string          `json:"role"`
	LinkedIn       string          `json:"linkedin,omitempty"`
	GitHub         string          `json:"github,omitempty"`
	Portfolio      string          `json:"portfolio,omitempty"`
	Skills         string          `json:"skills"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Field  string `json:"field"`
	Year   string `json:"year"`
	CGPA   string `json:"cgpa"`
}

type Experience struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Duties   string `json:"duties"`
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tech        string `json:"tech"`
	Link        string `json:"link,omitempty"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// SkillSeeds splits the comma-delimited skills string into a trimmed list.
func (f FormData) SkillSeeds() []string {
	if strings.TrimSpace(f.Skills) == "" {
		return nil
	}
	parts := strings.Split(f.Skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
