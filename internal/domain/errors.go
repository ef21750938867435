package domain

import (
	"fmt"
	"net/http"
)

// ErrorKind is the wire-level classification of a failure.
type ErrorKind string

const (
	KindValidation     ErrorKind = "VALIDATION_ERROR"
	KindAuthentication ErrorKind = "AUTHENTICATION_ERROR"
	KindAuthorization  ErrorKind = "AUTHORIZATION_ERROR"
	KindNotFound       ErrorKind = "NOT_FOUND_ERROR"
	KindDuplicate      ErrorKind = "DUPLICATE_ERROR"
	KindDatabase       ErrorKind = "DATABASE_ERROR"
	KindInternal       ErrorKind = "INTERNAL_SERVER_ERROR"
)

// Status maps the kind to its HTTP status code.
func (k ErrorKind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	case KindDatabase:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FieldError describes a single violated field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error is the one failure type every layer of the service speaks.
// The HTTP transport translates it (and any raw driver error) into the
// error envelope; nothing else formats error responses.
type Error struct {
	Kind    ErrorKind
	Message string
	Code    string
	Details []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// NewValidationError aggregates every violated field into one error.
func NewValidationError(message string, details ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// NewNotFoundError reports an absent entity, e.g. "Category not found".
func NewNotFoundError(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// NewDuplicateError reports a store-level unique index violation.
func NewDuplicateError(field, value string) *Error {
	return &Error{
		Kind:    KindDuplicate,
		Message: fmt.Sprintf("Duplicate value '%s' for field '%s'", value, field),
		Details: []FieldError{{Field: field, Message: "must be unique", Code: "duplicate"}},
	}
}

// NewDatabaseError wraps a store connectivity failure.
func NewDatabaseError(cause error) *Error {
	return &Error{Kind: KindDatabase, Message: "Database unavailable", cause: cause}
}

// NewInternalError wraps anything unrecognized.
func NewInternalError(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", cause: cause}
}
