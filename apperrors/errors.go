// Package apperrors provides code-typed errors shared by the services and
// mapped to HTTP statuses by the controllers.
package apperrors

import (
	"errors"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown            Code = "UNKNOWN"
	CodeValidation         Code = "VALIDATION"
	CodeEmptyDraft         Code = "EMPTY_DRAFT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeDivideByZero       Code = "DIVIDE_BY_ZERO"
	CodeSyncInProgress     Code = "SYNC_IN_PROGRESS"
	CodeSyncFailed         Code = "SYNC_FAILED"
	CodeEstimateInProgress Code = "ESTIMATE_IN_PROGRESS"
	CodeEstimateFailed     Code = "ESTIMATE_FAILED"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeStorage            Code = "STORAGE"
	CodeCanceled           Code = "CANCELED"
)

// HTTPStatus maps a code onto the status the API answers with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeEmptyDraft, CodeDivideByZero:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeSyncInProgress, CodeEstimateInProgress:
		return http.StatusConflict
	case CodeSyncFailed, CodeEstimateFailed:
		return http.StatusBadGateway
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeCanceled:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Error is the domain error type.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the code of the first domain error in the chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// MessageOf returns the user-facing message of the first domain error in
// the chain, falling back to err.Error().
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
