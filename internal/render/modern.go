package render

import "resume-builder-backend/internal/types"

// buildModern lays out two columns: a sidebar (~35%) with contact,
// education, and skills, and a main body (~65%) with summary, experience,
// projects, and certifications.
func buildModern(result types.GeneratedResumeResult, form types.FormData) Document {
	sidebar := []Section{
		modernHeader(form),
		educationSection(result),
		modernSkills(result),
	}

	main := []Section{
		summarySection(result),
		experienceSection(result),
		projectsSection(result),
	}
	if certs, ok := certificationsSection(result); ok {
		main = append(main, certs)
	}

	return Document{
		Template: TemplateModern,
		Regions: []Region{
			{Name: "sidebar", WidthPercent: 35, Sections: sidebar},
			{Name: "main", WidthPercent: 65, Sections: main},
		},
	}
}

func modernHeader(form types.FormData) Section {
	lines := []Line{
		{Text: form.Name, Bold: true},
		{Text: form.Phone},
		{Text: form.Email},
	}
	lines = append(lines, contactLinks(form)...)
	return Section{Name: sectionHeader, Lines: lines}
}

func modernSkills(result types.GeneratedResumeResult) Section {
	var lines []Line
	lines = append(lines, Line{Text: "Technical Skills", Bold: true})
	for _, skill := range result.Skills.Technical {
		lines = append(lines, Line{Text: skill})
	}
	lines = append(lines, Line{Text: "Soft Skills", Bold: true})
	for _, skill := range result.Skills.Soft {
		lines = append(lines, Line{Text: skill})
	}
	return Section{Name: sectionSkills, Title: "Skills", Lines: lines}
}
