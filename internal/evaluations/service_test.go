package evaluations

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"resume-builder-backend/internal/extract"
	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/llm/validate"
)

type staticLLM struct {
	resp  string
	err   error
	calls int
}

func (s *staticLLM) Invoke(ctx context.Context, instruction llm.Instruction) (json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.resp), nil
}

const validEvaluationReply = `{
  "atsScore": 82.4,
  "grammarScore": 91,
  "summary": "Strong backend profile.",
  "strengths": ["Go", "Postgres"],
  "weaknesses": ["No cloud certifications"],
  "skills": ["Go", "SQL", "Docker"]
}`

// docxBytes builds a minimal docx with enough text to pass extraction.
func docxBytes(t *testing.T) []byte {
	t.Helper()
	text := strings.Repeat("Backend engineer with production experience in Go and Postgres. ", 4)
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	body := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestEvaluateHappyPath(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, LLM: &staticLLM{resp: validEvaluationReply}}

	result, eval, err := svc.Evaluate(context.Background(), "user-1", "resume.docx", "docx", docxBytes(t), "backend engineer wanted")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if result.ATSScore != 82.4 {
		t.Fatalf("unexpected ats score %v", result.ATSScore)
	}
	if eval.ATSScore != 82 || eval.GrammarScore != 91 {
		t.Fatalf("unexpected stored scores %d/%d", eval.ATSScore, eval.GrammarScore)
	}
	if want := []string{"Go", "Postgres", "No cloud certifications"}; len(eval.Suggestions) != len(want) {
		t.Fatalf("unexpected suggestions %v", eval.Suggestions)
	}
	if len(eval.Keywords) != 3 {
		t.Fatalf("unexpected keywords %v", eval.Keywords)
	}

	stored, err := repo.GetByID(context.Background(), "user-1", eval.ID)
	if err != nil {
		t.Fatalf("GetByID after create: %v", err)
	}
	if stored.FileName != "resume.docx" {
		t.Fatalf("unexpected stored file name %q", stored.FileName)
	}
}

func TestEvaluateUnsupportedFileWritesNothing(t *testing.T) {
	repo := NewMemoryRepo()
	client := &staticLLM{resp: validEvaluationReply}
	svc := &Service{Repo: repo, LLM: client}

	_, _, err := svc.Evaluate(context.Background(), "user-1", "resume.txt", "text/plain", []byte("plain"), "jd")
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if client.calls != 0 {
		t.Fatal("model must not be invoked when extraction fails")
	}
	list, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 0 {
		t.Fatal("nothing may be persisted on failure")
	}
}

func TestEvaluateSchemaViolationWritesNothing(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, LLM: &staticLLM{resp: `{"atsScore": 82}`}}

	_, _, err := svc.Evaluate(context.Background(), "user-1", "resume.docx", "docx", docxBytes(t), "jd")
	var violation *validate.SchemaViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("expected SchemaViolationError, got %v", err)
	}
	list, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 0 {
		t.Fatal("nothing may be persisted on failure")
	}
}

func TestEvaluateRetriesTimeoutThenFails(t *testing.T) {
	client := &staticLLM{err: llm.ErrTimeout}
	svc := &Service{Repo: NewMemoryRepo(), LLM: client}

	_, _, err := svc.Evaluate(context.Background(), "user-1", "resume.docx", "docx", docxBytes(t), "jd")
	if !errors.Is(err, llm.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if client.calls != 2 {
		t.Fatalf("expected one retry, got %d calls", client.calls)
	}
}

func TestEvaluateValidatesInput(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &staticLLM{resp: validEvaluationReply}}

	if _, _, err := svc.Evaluate(context.Background(), "", "f", "docx", docxBytes(t), "jd"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}
	if _, _, err := svc.Evaluate(context.Background(), "user-1", "f", "docx", docxBytes(t), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank job description, got %v", err)
	}
}

func TestClampScore(t *testing.T) {
	if got := clampScore(-5); got != 0 {
		t.Fatalf("clampScore(-5) = %d", got)
	}
	if got := clampScore(140); got != 100 {
		t.Fatalf("clampScore(140) = %d", got)
	}
	if got := clampScore(82.6); got != 83 {
		t.Fatalf("clampScore(82.6) = %d", got)
	}
}
