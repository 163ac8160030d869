package evaluations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores evaluations in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Evaluation
	byUser map[string][]Evaluation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Evaluation),
		byUser: make(map[string][]Evaluation),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, eval Evaluation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[eval.ID] = eval
	r.byUser[eval.UserID] = append(r.byUser[eval.UserID], eval)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, evaluationID string) (Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return Evaluation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	eval, ok := r.byID[evaluationID]
	if !ok || eval.UserID != userID {
		return Evaluation{}, ErrNotFound
	}
	return eval, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	userEvals := r.byUser[userID]
	r.mu.RUnlock()

	out := make([]Evaluation, len(userEvals))
	copy(out, userEvals)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
