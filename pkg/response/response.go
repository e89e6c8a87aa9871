package response

import (
	"errors"
	"net/http"
)

// Stable machine-readable error codes surfaced to clients.
const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateEntry     = "DUPLICATE_ENTRY"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeInternalError      = "INTERNAL_SERVER_ERROR"
)

type Error struct {
	Status int
	Code   string
	Err    error
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(status int, code string, err string) error {
	return &Error{Status: status, Code: code, Err: errors.New(err)}
}

// NewValidationError carries a per-field detail tree alongside the generic message.
func NewValidationError(fields map[string]string) error {
	return &Error{
		Status: http.StatusBadRequest,
		Code:   CodeValidationError,
		Err:    errors.New("validation failed"),
		Fields: fields,
	}
}
