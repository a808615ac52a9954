package contrib

import (
	"errors"
	"fmt"
)

// ErrCoercion indicates a numeric cell that does not hold a finite number.
var ErrCoercion = errors.New("numeric coercion failed")

// ErrIncomplete indicates a document that fails submit-time validation.
var ErrIncomplete = errors.New("incomplete submission")

// CoercionError reports the cell that blocked a submission.
type CoercionError struct {
	TableKey  string
	RowKey    string
	ColumnKey string
	Raw       any
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("table %q row %q column %q: %v is not a number", e.TableKey, e.RowKey, e.ColumnKey, e.Raw)
}

func (e *CoercionError) Unwrap() error {
	return ErrCoercion
}

// NewCoercionError creates a new CoercionError.
func NewCoercionError(tableKey, rowKey, colKey string, raw any) *CoercionError {
	return &CoercionError{
		TableKey:  tableKey,
		RowKey:    rowKey,
		ColumnKey: colKey,
		Raw:       raw,
	}
}

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	// Field is the namespaced field, e.g. "Table.Columns[c1].Name".
	Field string
	// Tag is the failed rule, e.g. "required".
	Tag string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: failed %q check", e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error {
	return ErrIncomplete
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, tag string) *ValidationError {
	return &ValidationError{Field: field, Tag: tag}
}
