package evaluations

import "context"

// Repo defines append-only persistence for evaluations. Reads are always
// owner-scoped.
type Repo interface {
	Create(ctx context.Context, eval Evaluation) error
	GetByID(ctx context.Context, userID, evaluationID string) (Evaluation, error)
	ListByUser(ctx context.Context, userID string) ([]Evaluation, error)
}
