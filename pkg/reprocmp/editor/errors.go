package editor

import (
	"errors"
	"fmt"
)

// ErrDraftIncomplete indicates the most recently added table, column or row
// must be filled in before another one is added.
var ErrDraftIncomplete = errors.New("draft incomplete")

// ErrUnknownKey indicates a table, row or column key that does not exist.
var ErrUnknownKey = errors.New("unknown key")

// ErrInvalidField indicates an unknown field name or an invalid field value.
var ErrInvalidField = errors.New("invalid field")

// Kind names the part of a table being edited.
type Kind string

const (
	KindTable  Kind = "table"
	KindColumn Kind = "column"
	KindRow    Kind = "row"
)

// DraftIncompleteError reports a refused add operation. It is a user
// correctable warning; the input state is left unchanged.
type DraftIncompleteError struct {
	Kind Kind
}

func (e *DraftIncompleteError) Error() string {
	return fmt.Sprintf("fill in the added %s(s) first", e.Kind)
}

func (e *DraftIncompleteError) Unwrap() error {
	return ErrDraftIncomplete
}

// NewDraftIncompleteError creates a new DraftIncompleteError.
func NewDraftIncompleteError(kind Kind) *DraftIncompleteError {
	return &DraftIncompleteError{Kind: kind}
}

func unknownKey(kind Kind, key string) error {
	return fmt.Errorf("%s %q: %w", kind, key, ErrUnknownKey)
}
