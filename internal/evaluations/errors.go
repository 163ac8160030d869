package evaluations

import "errors"

var (
	// ErrNotFound covers both a missing record and one owned by another
	// user; the two cases must be indistinguishable to callers.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
