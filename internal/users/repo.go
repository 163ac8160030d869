package users

import (
	"context"
	"errors"
)

// ErrNotFound indicates the user does not exist.
var ErrNotFound = errors.New("user not found")

type Repo interface {
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
}
