package render

import (
	"strings"

	"resume-builder-backend/internal/types"
)

// buildClassic lays out a single centered column: header, summary, skills,
// experience, education, projects, certifications. Section titles carry a
// horizontal rule; contact entries render inline separated by "|".
func buildClassic(result types.GeneratedResumeResult, form types.FormData) Document {
	sections := []Section{
		classicHeader(form),
		withRule(summarySection(result)),
		withRule(classicSkills(result)),
		withRule(experienceSection(result)),
		withRule(educationSection(result)),
		withRule(projectsSection(result)),
	}
	if certs, ok := certificationsSection(result); ok {
		sections = append(sections, withRule(certs))
	}

	return Document{
		Template: TemplateClassic,
		Regions: []Region{
			{Name: "page", WidthPercent: 100, Sections: sections},
		},
	}
}

func classicHeader(form types.FormData) Section {
	contact := []string{form.Email, form.Phone}
	for _, link := range contactLinks(form) {
		contact = append(contact, link.Text)
	}
	return Section{Name: sectionHeader, Lines: []Line{
		{Text: form.Name, Bold: true},
		{Text: strings.Join(contact, " | ")},
	}}
}

func classicSkills(result types.GeneratedResumeResult) Section {
	return Section{
		Name:  sectionSkills,
		Title: "Skills",
		Lines: []Line{
			{Text: "Technical Skills: " + strings.Join(result.Skills.Technical, ", ")},
			{Text: "Soft Skills: " + strings.Join(result.Skills.Soft, ", ")},
		},
	}
}

func withRule(s Section) Section {
	s.Rule = true
	return s
}
