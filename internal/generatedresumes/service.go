package generatedresumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/llm/validate"
	"resume-builder-backend/internal/render"
	"resume-builder-backend/internal/shared/util"
	"resume-builder-backend/internal/types"
)

// Service runs the generate pipeline and the regeneration orchestrator.
// Only inputs are persisted; generated content is recomputed on demand.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

// Generated bundles a pipeline output with its rendered document.
type Generated struct {
	Result   types.GeneratedResumeResult
	Document render.Document
	Record   GeneratedResume
}

// Generate asks the model for a resume from form data, validates the reply,
// renders it, and appends a record holding the inputs verbatim.
func (s *Service) Generate(ctx context.Context, userID string, form types.FormData, rawTemplate string) (Generated, error) {
	if userID == "" {
		return Generated{}, ErrInvalidInput
	}
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Email) == "" ||
		strings.TrimSpace(form.Phone) == "" || strings.TrimSpace(form.Role) == "" {
		return Generated{}, ErrInvalidInput
	}
	if s.Repo == nil || s.LLM == nil {
		return Generated{}, errors.New("missing dependencies")
	}

	template := render.NormalizeTemplate(rawTemplate)

	result, err := s.generateFromForm(ctx, form)
	if err != nil {
		return Generated{}, err
	}

	record := GeneratedResume{
		ID:           uuid.NewString(),
		UserID:       userID,
		FileName:     util.DerivedResumeFileName(form.Name),
		TemplateUsed: string(template),
		RoleTargeted: form.Role,
		FormData:     &form,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return Generated{}, err
	}

	return Generated{
		Result:   result,
		Document: render.Build(result, form, template),
		Record:   record,
	}, nil
}

// GetStoredForm returns the stored inputs for a history view: formData and
// templateUsed only, never transient generated content.
func (s *Service) GetStoredForm(ctx context.Context, userID, resumeID string) (GeneratedResume, error) {
	if userID == "" || resumeID == "" {
		return GeneratedResume{}, ErrInvalidInput
	}
	record, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return GeneratedResume{}, err
	}
	if !record.HasFormData() {
		return GeneratedResume{}, ErrIncompleteRecord
	}
	return record, nil
}

// List returns generated resume records for a user, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]GeneratedResume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Regenerate re-derives the resume content from stored inputs:
// FetchStoredForm -> BuildGenerationPrompt -> InvokeAI -> ValidateResponse ->
// Render. Any stage failure aborts the rest and surfaces stage-tagged. The
// output honors the stored schema contract but is not guaranteed to equal
// previously generated content.
func (s *Service) Regenerate(ctx context.Context, userID, resumeID string) (Generated, error) {
	record, err := s.GetStoredForm(ctx, userID, resumeID)
	if err != nil {
		return Generated{}, &StageError{Stage: "fetch", Err: err}
	}
	form := *record.FormData

	instruction := llm.BuildGenerationPrompt(form)

	raw, err := llm.WithRetry(s.LLM).Invoke(ctx, instruction)
	if err != nil {
		return Generated{}, &StageError{Stage: "invoke", Err: err}
	}

	result, err := validate.GeneratedResume(raw)
	if err != nil {
		return Generated{}, &StageError{Stage: "validate", Err: err}
	}

	template := render.NormalizeTemplate(record.TemplateUsed)
	return Generated{
		Result:   result,
		Document: render.Build(result, form, template),
		Record:   record,
	}, nil
}

func (s *Service) generateFromForm(ctx context.Context, form types.FormData) (types.GeneratedResumeResult, error) {
	instruction := llm.BuildGenerationPrompt(form)
	raw, err := llm.WithRetry(s.LLM).Invoke(ctx, instruction)
	if err != nil {
		return types.GeneratedResumeResult{}, err
	}
	return validate.GeneratedResume(raw)
}
