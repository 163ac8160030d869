package generatedresumes

import "context"

// Repo defines append-only persistence for generated resumes. Reads are
// always owner-scoped.
type Repo interface {
	Create(ctx context.Context, resume GeneratedResume) error
	GetByID(ctx context.Context, userID, resumeID string) (GeneratedResume, error)
	ListByUser(ctx context.Context, userID string) ([]GeneratedResume, error)
}
