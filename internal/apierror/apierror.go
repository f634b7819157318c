// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}

// ─── Domain error taxonomy ──────────────────────────────────────────────────

// Kind classifies a domain failure so the HTTP layer can pick a status code.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindBadRequest
)

// Error is a domain error that carries a client-safe message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// NotFound reports a referenced entity that does not exist at the expected nesting level.
func NotFound(msg string) error { return &Error{Kind: KindNotFound, Msg: msg} }

// Conflict reports a uniqueness violation.
func Conflict(msg string) error { return &Error{Kind: KindConflict, Msg: msg} }

// BadRequest reports a malformed request that no lookup could satisfy.
func BadRequest(msg string) error { return &Error{Kind: KindBadRequest, Msg: msg} }

// Is reports whether err is a domain error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// StatusOf maps an error to its HTTP status. Unclassified errors are 500.
func StatusOf(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
