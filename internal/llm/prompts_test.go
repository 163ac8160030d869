package llm

import (
	"strings"
	"testing"

	"resume-builder-backend/internal/types"
)

func sampleForm() types.FormData {
	return types.FormData{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Phone:  "+1-555-0100",
		Role:   "Backend Engineer",
		Skills: "Python, Analysis",
		Education: []types.Education{
			{School: "Cambridge", Degree: "B.Sc", Field: "Mathematics", Year: "1835", CGPA: "9.1"},
		},
		Experience: []types.Experience{
			{Company: "Analytical Engines Ltd", Title: "Programmer", Duration: "1840-1845", Duties: "Wrote the first algorithm\nDocumented the engine"},
		},
		Projects: []types.Project{
			{Name: "Note G", Description: "Bernoulli number program", Tech: "Analytical Engine", Link: "https://example.com/noteg"},
		},
	}
}

func TestBuildGenerationPromptIncludesAllEducation(t *testing.T) {
	form := sampleForm()
	form.Education = append(form.Education,
		types.Education{School: "Open University", Degree: "M.Sc", Field: "Logic", Year: "1840", CGPA: ""},
		types.Education{School: "Royal Society", Degree: "Fellowship", Field: "Computation", Year: "1842", CGPA: "8.0"},
	)

	instruction := BuildGenerationPrompt(form)
	for _, school := range []string{"Cambridge", "Open University", "Royal Society"} {
		if !strings.Contains(instruction.User, school) {
			t.Fatalf("expected education entry %q in prompt", school)
		}
	}
	// Entries keep input order.
	if strings.Index(instruction.User, "Cambridge") > strings.Index(instruction.User, "Open University") {
		t.Fatal("education entries out of order")
	}
}

func TestBuildGenerationPromptEducationLine(t *testing.T) {
	instruction := BuildGenerationPrompt(sampleForm())
	want := "- B.Sc in Mathematics, Cambridge (1835). CGPA: 9.1"
	if !strings.Contains(instruction.User, want) {
		t.Fatalf("expected line %q in prompt", want)
	}
}

func TestBuildGenerationPromptOptionalFieldsDefaultToNA(t *testing.T) {
	form := sampleForm()
	form.LinkedIn = ""
	form.GitHub = ""
	form.Portfolio = ""

	instruction := BuildGenerationPrompt(form)
	if !strings.Contains(instruction.User, "LinkedIn: N/A") {
		t.Fatal("expected missing linkedin to render as N/A")
	}
	if strings.Contains(instruction.User, "{{") {
		t.Fatal("unreplaced placeholder left in prompt")
	}
}

func TestBuildGenerationPromptSkillsAndDuties(t *testing.T) {
	instruction := BuildGenerationPrompt(sampleForm())
	if !strings.Contains(instruction.User, "Skills: Python, Analysis") {
		t.Fatal("expected trimmed skill seeds in prompt")
	}
	if !strings.Contains(instruction.User, "**Programmer at Analytical Engines Ltd (1840-1845)**") {
		t.Fatal("expected experience heading in prompt")
	}
	if !strings.Contains(instruction.User, "- Wrote the first algorithm\n- Documented the engine") {
		t.Fatal("expected duties split into bullet lines")
	}
}

func TestBuildGenerationPromptDeterministic(t *testing.T) {
	form := sampleForm()
	a := BuildGenerationPrompt(form)
	b := BuildGenerationPrompt(form)
	if a != b {
		t.Fatal("same form must produce an identical instruction")
	}
}

func TestBuildEvaluationPromptEmbedsInputs(t *testing.T) {
	instruction := BuildEvaluationPrompt("resume body text", "backend engineer wanted")
	if instruction.System == "" {
		t.Fatal("expected a system prompt")
	}
	if !strings.Contains(instruction.User, "resume body text") {
		t.Fatal("expected resume text in prompt")
	}
	if !strings.Contains(instruction.User, "backend engineer wanted") {
		t.Fatal("expected job description in prompt")
	}
	if strings.Contains(instruction.User, "{{") {
		t.Fatal("unreplaced placeholder left in prompt")
	}
}
