// Package apperr defines the error taxonomy shared by the storage, service
// and HTTP layers. Every operation that can fail returns one of three kinds,
// and the transport layer maps the kind to a status code.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure.
type Kind int

const (
	// KindNotFound means the referenced entity does not exist.
	KindNotFound Kind = iota
	// KindInvalidInput means caller-supplied data failed validation.
	KindInvalidInput
	// KindInternal means a storage or infrastructure fault.
	KindInternal
)

// Error carries a public message plus, for internal faults only, a
// diagnostic detail string. The detail is never used as the user-facing
// message and is empty for every other kind.
type Error struct {
	Kind    Kind
	Message string
	detail  string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to a transport status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Detail returns the low-level diagnostic for internal faults. Non-internal
// kinds always return the empty string.
func (e *Error) Detail() string {
	if e.Kind != KindInternal {
		return ""
	}
	return e.detail
}

// NotFound builds a not-found error with the given public message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// NotFoundf builds a not-found error from a format string.
func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// InvalidInput builds a validation error with the given public message.
func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// Internal builds an internal fault. msg is the generic public message;
// cause, when non-nil, supplies the diagnostic detail.
func Internal(msg string, cause error) *Error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &Error{Kind: KindInternal, Message: msg, detail: detail}
}

// From returns err as an *Error, wrapping anything outside the taxonomy as
// an internal fault with the given public message.
func From(err error, msg string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(msg, err)
}
