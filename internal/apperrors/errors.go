// Package apperrors holds the error taxonomy shared by handlers and the
// error-translation middleware. Handlers raise these; the middleware is
// the single place they are turned into HTTP responses.
package apperrors

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Machine-readable error codes carried in the response envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidID    = "INVALID_ID"
	CodeEmptyUpdate  = "EMPTY_UPDATE"
	CodeTaskNotFound = "TASK_NOT_FOUND"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrTaskNotFound marks a lookup or mutation addressing an id that does
// not exist. Translated to 404 TASK_NOT_FOUND.
var ErrTaskNotFound = stderrors.New("task not found")

// FieldError describes a single violated field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects client input before any storage access.
// Translated to 400 with its Code in the envelope.
type ValidationError struct {
	Code    string
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d field(s))", e.Message, len(e.Fields))
}

// NewValidation builds a generic field-level validation error.
func NewValidation(fields ...FieldError) *ValidationError {
	return &ValidationError{
		Code:    CodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// InvalidID rejects a path parameter that is not a UUID v4.
func InvalidID() *ValidationError {
	return &ValidationError{Code: CodeInvalidID, Message: "Invalid task ID format"}
}

// EmptyUpdate rejects an update request carrying no recognized fields.
func EmptyUpdate() *ValidationError {
	return &ValidationError{Code: CodeEmptyUpdate, Message: "Update must include at least one field"}
}

// StorageError wraps a failure of the backing store other than absence:
// connectivity, constraint violations, malformed rows. Full detail is
// logged server-side only; clients get a generic 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err with the failed operation and a stack trace.
func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: errors.WithStack(err)}
}
