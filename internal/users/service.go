package users

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// EnsureUser idempotently creates or refreshes the user record for a verified
// identity. Called once per request at the auth boundary so ownership of
// evaluations and generated resumes is always anchored to an existing user.
func (s *Service) EnsureUser(ctx context.Context, id, email, name string) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(id) == "" || strings.TrimSpace(email) == "" {
		return errors.New("user id and email are required")
	}
	if strings.TrimSpace(name) == "" {
		name = email
	}
	return s.Repo.Upsert(ctx, User{ID: id, Email: email, FullName: name})
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
