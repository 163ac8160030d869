package evaluations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an evaluation. Records are never updated or deleted.
func (r *PGRepo) Create(ctx context.Context, eval Evaluation) error {
	const query = `
INSERT INTO evaluations (
    id, user_id, file_name, ats_score, grammar_score, suggestions, keywords, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	suggestions, err := json.Marshal(emptyIfNil(eval.Suggestions))
	if err != nil {
		return err
	}
	keywords, err := json.Marshal(emptyIfNil(eval.Keywords))
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		eval.ID,
		eval.UserID,
		eval.FileName,
		eval.ATSScore,
		eval.GrammarScore,
		suggestions,
		keywords,
		eval.CreatedAt,
	)
	return err
}

// GetByID returns an evaluation scoped to its owner. A record owned by a
// different user scans as no rows, identical to a missing record.
func (r *PGRepo) GetByID(ctx context.Context, userID, evaluationID string) (Evaluation, error) {
	const query = `
SELECT id, user_id, file_name, ats_score, grammar_score, suggestions, keywords, created_at
FROM evaluations
WHERE id = $1 AND user_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, evaluationID, userID)
	eval, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Evaluation{}, ErrNotFound
		}
		return Evaluation{}, err
	}
	return eval, nil
}

// ListByUser lists evaluations for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Evaluation, error) {
	const query = `
SELECT id, user_id, file_name, ats_score, grammar_score, suggestions, keywords, created_at
FROM evaluations
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		eval, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, eval)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row rowScanner) (Evaluation, error) {
	var eval Evaluation
	var suggestions, keywords []byte
	if err := row.Scan(
		&eval.ID,
		&eval.UserID,
		&eval.FileName,
		&eval.ATSScore,
		&eval.GrammarScore,
		&suggestions,
		&keywords,
		&eval.CreatedAt,
	); err != nil {
		return Evaluation{}, err
	}
	if err := json.Unmarshal(suggestions, &eval.Suggestions); err != nil {
		return Evaluation{}, err
	}
	if err := json.Unmarshal(keywords, &eval.Keywords); err != nil {
		return Evaluation{}, err
	}
	return eval, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

var _ Repo = (*PGRepo)(nil)
