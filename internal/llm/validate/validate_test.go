package validate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const validEvaluation = `{
  "atsScore": 82,
  "grammarScore": 91.5,
  "summary": "Strong backend profile.",
  "strengths": ["Go", "Postgres"],
  "weaknesses": ["No cloud certifications"],
  "skills": ["Go", "SQL"]
}`

const validGeneration = `{
  "summary": "Backend engineer with five years of production experience.",
  "education": ["B.Sc in Mathematics, Cambridge, 1835. CGPA: 9.1"],
  "skills": {"technical": ["Go"], "soft": ["Communication"]},
  "experience": [{"title": "Programmer", "company": "Analytical Engines Ltd", "duration": "1840-1845", "bulletPoints": ["Wrote the first algorithm"]}],
  "projects": [{"name": "Note G", "description": "Bernoulli number program", "link": "https://example.com"}],
  "certifications": []
}`

func TestEvaluationValidReply(t *testing.T) {
	result, err := Evaluation(json.RawMessage(validEvaluation))
	require.NoError(t, err)
	require.Equal(t, 82.0, result.ATSScore)
	require.Equal(t, 91.5, result.GrammarScore)
	require.Equal(t, []string{"Go", "Postgres"}, result.Strengths)
}

func TestEvaluationMissingKeyNamesPath(t *testing.T) {
	reply := `{"atsScore": 82, "summary": "ok", "strengths": [], "weaknesses": [], "skills": []}`

	_, err := Evaluation(json.RawMessage(reply))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	require.Equal(t, "grammarScore", violation.Path)
}

func TestEvaluationWrongTypeNamesPath(t *testing.T) {
	reply := `{"atsScore": "very high", "grammarScore": 90, "summary": "ok", "strengths": [], "weaknesses": [], "skills": []}`

	_, err := Evaluation(json.RawMessage(reply))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	require.Equal(t, "atsScore", violation.Path)
}

func TestEvaluationScoreOutOfRange(t *testing.T) {
	reply := `{"atsScore": 140, "grammarScore": 90, "summary": "ok", "strengths": [], "weaknesses": [], "skills": []}`

	_, err := Evaluation(json.RawMessage(reply))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	require.Equal(t, "atsScore", violation.Path)
}

func TestEvaluationMalformedJSON(t *testing.T) {
	_, err := Evaluation(json.RawMessage(`Sure! Here is the JSON you asked for: {`))
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGeneratedResumeValidReply(t *testing.T) {
	result, err := GeneratedResume(json.RawMessage(validGeneration))
	require.NoError(t, err)
	require.Len(t, result.Education, 1)
	require.Equal(t, []string{"Go"}, result.Skills.Technical)
	require.Len(t, result.Experience, 1)
	require.Equal(t, "Programmer", result.Experience[0].Title)
	require.Empty(t, result.Certifications)
}

func TestGeneratedResumeMissingSkillGroup(t *testing.T) {
	reply := `{
	  "summary": "s",
	  "education": [],
	  "skills": {"technical": ["Go"]},
	  "experience": [],
	  "projects": [],
	  "certifications": []
	}`

	_, err := GeneratedResume(json.RawMessage(reply))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	require.Equal(t, "skills", violation.Path)
}

func TestGeneratedResumeMissingExperienceField(t *testing.T) {
	reply := `{
	  "summary": "s",
	  "education": [],
	  "skills": {"technical": [], "soft": []},
	  "experience": [{"title": "Programmer", "company": "Acme", "duration": "2020"}],
	  "projects": [],
	  "certifications": []
	}`

	_, err := GeneratedResume(json.RawMessage(reply))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	require.Equal(t, "experience.0", violation.Path)
}

func TestGeneratedResumeMissingTopLevelKey(t *testing.T) {
	reply := `{
	  "summary": "s",
	  "education": [],
	  "skills": {"technical": [], "soft": []},
	  "experience": [],
	  "projects": []
	}`

	_, err := GeneratedResume(json.RawMessage(reply))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	require.Equal(t, "certifications", violation.Path)

	// The typed error distinguishes a schema break from unparseable output.
	require.False(t, errors.Is(err, ErrMalformedResponse))
}
