package render

import (
	"strings"

	"resume-builder-backend/internal/types"
)

// Section names shared by both layouts. Each template arranges the same
// sections; none may be dropped or duplicated by a template switch.
const (
	sectionHeader         = "header"
	sectionSummary        = "summary"
	sectionSkills         = "skills"
	sectionExperience     = "experience"
	sectionEducation      = "education"
	sectionProjects       = "projects"
	sectionCertifications = "certifications"
)

func summarySection(result types.GeneratedResumeResult) Section {
	return Section{
		Name:  sectionSummary,
		Title: "Professional Summary",
		Lines: []Line{{Text: result.Summary}},
	}
}

func educationSection(result types.GeneratedResumeResult) Section {
	lines := make([]Line, 0, len(result.Education))
	for _, edu := range result.Education {
		lines = append(lines, Line{Text: edu})
	}
	return Section{Name: sectionEducation, Title: "Education", Lines: lines}
}

func experienceSection(result types.GeneratedResumeResult) Section {
	var lines []Line
	for _, exp := range result.Experience {
		lines = append(lines, Line{Text: exp.Title, Bold: true})
		lines = append(lines, Line{Text: exp.Company + "  " + exp.Duration})
		for _, point := range exp.BulletPoints {
			lines = append(lines, Line{Text: point, Bullet: true})
		}
	}
	return Section{Name: sectionExperience, Title: "Experience", Lines: lines}
}

func projectsSection(result types.GeneratedResumeResult) Section {
	var lines []Line
	for _, proj := range result.Projects {
		// Project link is appended only when present.
		lines = append(lines, Line{Text: proj.Name, Bold: true, Link: proj.Link})
		lines = append(lines, Line{Text: proj.Description})
	}
	return Section{Name: sectionProjects, Title: "Projects", Lines: lines}
}

// certificationsSection returns ok=false when the list is empty; both
// layouts omit the section entirely in that case.
func certificationsSection(result types.GeneratedResumeResult) (Section, bool) {
	if len(result.Certifications) == 0 {
		return Section{}, false
	}
	lines := make([]Line, 0, len(result.Certifications))
	for _, cert := range result.Certifications {
		lines = append(lines, Line{Text: cert})
	}
	return Section{Name: sectionCertifications, Title: "Certifications", Lines: lines}, true
}

// contactLinks returns the optional profile links in fixed order, skipping
// empty ones.
func contactLinks(form types.FormData) []Line {
	var lines []Line
	if strings.TrimSpace(form.LinkedIn) != "" {
		lines = append(lines, Line{Text: "LinkedIn", Link: form.LinkedIn})
	}
	if strings.TrimSpace(form.GitHub) != "" {
		lines = append(lines, Line{Text: "GitHub", Link: form.GitHub})
	}
	if strings.TrimSpace(form.Portfolio) != "" {
		lines = append(lines, Line{Text: "Portfolio", Link: form.Portfolio})
	}
	return lines
}
