package llm

import (
	_ "embed"
	"fmt"
	"strings"

	"resume-builder-backend/internal/types"
)

var (
	//go:embed prompts/evaluate_v1.txt
	evaluatePromptV1 string
	//go:embed prompts/generate_v1.txt
	generatePromptV1 string
)

const (
	evaluationSystemPrompt = "You are a resume evaluation engine. Respond with JSON only. Never omit keys. Output must match the schema exactly."
	generationSystemPrompt = "You are a resume generation engine. Respond with JSON only. Never omit keys. Output must match the schema exactly."
)

// BuildEvaluationPrompt renders the evaluation instruction. It is total:
// any resume text and job description produce a well-formed instruction, with
// the embedded text fenced off in triple-quoted blocks.
func BuildEvaluationPrompt(resumeText, jobDescription string) Instruction {
	replacer := strings.NewReplacer(
		"{{RESUME_TEXT}}", resumeText,
		"{{JOB_DESCRIPTION}}", jobDescription,
	)
	return Instruction{
		System: evaluationSystemPrompt,
		User:   replacer.Replace(evaluatePromptV1),
	}
}

// BuildGenerationPrompt renders the generation instruction from form data.
// It is total: missing optional fields render as "N/A" and missing list
// fields render as empty sections. Education keeps every entry in input order.
func BuildGenerationPrompt(form types.FormData) Instruction {
	replacer := strings.NewReplacer(
		"{{ROLE}}", form.Role,
		"{{NAME}}", form.Name,
		"{{EMAIL}}", form.Email,
		"{{PHONE}}", form.Phone,
		"{{LINKEDIN}}", orNA(form.LinkedIn),
		"{{GITHUB}}", orNA(form.GitHub),
		"{{PORTFOLIO}}", orNA(form.Portfolio),
		"{{EDUCATION}}", educationBlock(form.Education),
		"{{EXPERIENCE}}", experienceBlock(form.Experience),
		"{{SKILLS}}", strings.Join(form.SkillSeeds(), ", "),
		"{{PROJECTS}}", projectsBlock(form.Projects),
		"{{CERTIFICATIONS}}", certificationsBlock(form.Certifications),
	)
	return Instruction{
		System: generationSystemPrompt,
		User:   replacer.Replace(generatePromptV1),
	}
}

func educationBlock(entries []types.Education) string {
	lines := make([]string, 0, len(entries))
	for _, edu := range entries {
		lines = append(lines, fmt.Sprintf("- %s in %s, %s (%s). CGPA: %s",
			orDefault(edu.Degree, "Degree"),
			orDefault(edu.Field, "Field"),
			orDefault(edu.School, "School"),
			orDefault(edu.Year, "Year"),
			orNA(edu.CGPA),
		))
	}
	return strings.Join(lines, "\n")
}

func experienceBlock(entries []types.Experience) string {
	blocks := make([]string, 0, len(entries))
	for _, exp := range entries {
		duties := "Duties not specified"
		if strings.TrimSpace(exp.Duties) != "" {
			duties = strings.Join(strings.Split(exp.Duties, "\n"), "\n- ")
		}
		blocks = append(blocks, fmt.Sprintf("**%s at %s (%s)**\n- %s",
			orDefault(exp.Title, "Job Title"),
			orDefault(exp.Company, "Company"),
			orDefault(exp.Duration, "Duration"),
			duties,
		))
	}
	return strings.Join(blocks, "\n\n")
}

func projectsBlock(entries []types.Project) string {
	blocks := make([]string, 0, len(entries))
	for _, proj := range entries {
		blocks = append(blocks, fmt.Sprintf("**%s** [Tech: %s](%s)\n- %s",
			orDefault(proj.Name, "Project Name"),
			orDefault(proj.Tech, "Tech Stack"),
			proj.Link,
			orDefault(proj.Description, "Description not provided"),
		))
	}
	return strings.Join(blocks, "\n\n")
}

func certificationsBlock(entries []types.Certification) string {
	lines := make([]string, 0, len(entries))
	for _, cert := range entries {
		lines = append(lines, fmt.Sprintf("- %s from %s (%s)",
			orDefault(cert.Name, "Cert Name"),
			orDefault(cert.Issuer, "Issuer"),
			orDefault(cert.Year, "Year"),
		))
	}
	return strings.Join(lines, "\n")
}

func orNA(value string) string {
	return orDefault(value, "N/A")
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
