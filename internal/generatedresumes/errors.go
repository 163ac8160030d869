package generatedresumes

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing record and one owned by another
	// user; the two cases must be indistinguishable to callers.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncompleteRecord indicates a historical record whose stored form
	// data is absent or empty, so its content cannot be regenerated.
	ErrIncompleteRecord = errors.New("incomplete historical record")
)

// StageError tags a regeneration failure with the pipeline stage that
// produced it. The remaining stages are never run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("regenerate stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
