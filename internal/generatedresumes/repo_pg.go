package generatedresumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"resume-builder-backend/internal/types"
)

// PGRepo implements Repo using Postgres. FormData is stored as JSONB exactly
// as submitted so regeneration prompts can be rebuilt byte-for-byte.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a generated resume record. Records are never updated.
func (r *PGRepo) Create(ctx context.Context, resume GeneratedResume) error {
	const query = `
INSERT INTO generated_resumes (
    id, user_id, file_name, template_used, role_targeted, form_data, ats_score, ai_feedback, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var formData any
	if resume.FormData != nil {
		payload, err := json.Marshal(resume.FormData)
		if err != nil {
			return err
		}
		formData = payload
	}
	var feedback any
	if resume.AIFeedback != nil {
		payload, err := json.Marshal(resume.AIFeedback)
		if err != nil {
			return err
		}
		feedback = payload
	}

	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.TemplateUsed,
		resume.RoleTargeted,
		formData,
		resume.ATSScore,
		feedback,
		resume.CreatedAt,
	)
	return err
}

// GetByID returns a generated resume scoped to its owner. A record owned by
// a different user scans as no rows, identical to a missing record.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (GeneratedResume, error) {
	const query = `
SELECT id, user_id, file_name, template_used, role_targeted, form_data, ats_score, ai_feedback, created_at
FROM generated_resumes
WHERE id = $1 AND user_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, resumeID, userID)
	resume, err := scanGeneratedResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GeneratedResume{}, ErrNotFound
		}
		return GeneratedResume{}, err
	}
	return resume, nil
}

// ListByUser lists generated resumes for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]GeneratedResume, error) {
	const query = `
SELECT id, user_id, file_name, template_used, role_targeted, form_data, ats_score, ai_feedback, created_at
FROM generated_resumes
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GeneratedResume
	for rows.Next() {
		resume, err := scanGeneratedResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneratedResume(row rowScanner) (GeneratedResume, error) {
	var resume GeneratedResume
	var formData, feedback []byte
	var atsScore sql.NullInt64
	if err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.TemplateUsed,
		&resume.RoleTargeted,
		&formData,
		&atsScore,
		&feedback,
		&resume.CreatedAt,
	); err != nil {
		return GeneratedResume{}, err
	}
	if len(formData) > 0 {
		var form types.FormData
		if err := json.Unmarshal(formData, &form); err != nil {
			return GeneratedResume{}, err
		}
		resume.FormData = &form
	}
	if atsScore.Valid {
		score := int(atsScore.Int64)
		resume.ATSScore = &score
	}
	if len(feedback) > 0 {
		if err := json.Unmarshal(feedback, &resume.AIFeedback); err != nil {
			return GeneratedResume{}, err
		}
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
