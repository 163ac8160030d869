package evaluations

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder-backend/internal/extract"
	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/llm/validate"
	"resume-builder-backend/internal/types"
)

// Service runs the upload/evaluate pipeline: extract, prompt, invoke,
// validate, persist. Every stage failure is terminal for the request and
// nothing is written on failure.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

// Evaluate extracts text from the uploaded document, asks the model for an
// evaluation, validates the reply, and appends an Evaluation record.
func (s *Service) Evaluate(ctx context.Context, userID, fileName, contentType string, data []byte, jobDescription string) (types.EvaluationResult, Evaluation, error) {
	if userID == "" || len(data) == 0 || strings.TrimSpace(jobDescription) == "" {
		return types.EvaluationResult{}, Evaluation{}, ErrInvalidInput
	}
	if s.Repo == nil || s.LLM == nil {
		return types.EvaluationResult{}, Evaluation{}, errors.New("missing dependencies")
	}

	text, err := extract.Text(data, contentType, fileName)
	if err != nil {
		return types.EvaluationResult{}, Evaluation{}, err
	}

	instruction := llm.BuildEvaluationPrompt(text, jobDescription)
	raw, err := llm.WithRetry(s.LLM).Invoke(ctx, instruction)
	if err != nil {
		return types.EvaluationResult{}, Evaluation{}, err
	}

	result, err := validate.Evaluation(raw)
	if err != nil {
		return types.EvaluationResult{}, Evaluation{}, err
	}

	eval := Evaluation{
		ID:           uuid.NewString(),
		UserID:       userID,
		FileName:     fileName,
		ATSScore:     clampScore(result.ATSScore),
		GrammarScore: clampScore(result.GrammarScore),
		Suggestions:  append(append([]string{}, result.Strengths...), result.Weaknesses...),
		Keywords:     append([]string{}, result.Skills...),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, eval); err != nil {
		return types.EvaluationResult{}, Evaluation{}, err
	}
	return result, eval, nil
}

// Get returns an evaluation by ID for a user.
func (s *Service) Get(ctx context.Context, userID, evaluationID string) (Evaluation, error) {
	if userID == "" || evaluationID == "" {
		return Evaluation{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, evaluationID)
}

// List returns evaluations for a user, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Evaluation, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

func clampScore(score float64) int {
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(math.Round(score))
}
