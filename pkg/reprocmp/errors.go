package reprocmp

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("invalid config")

// SubmitError represents a rejected submission.
type SubmitError struct {
	Document string // "paper", "reproduction"
	ID       string
	Err      error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit %s %q: %v", e.Document, e.ID, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// NewSubmitError creates a new SubmitError.
func NewSubmitError(document, id string, err error) *SubmitError {
	return &SubmitError{
		Document: document,
		ID:       id,
		Err:      err,
	}
}
