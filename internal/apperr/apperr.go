// Package apperr defines the error taxonomy returned to API callers.
// Every failure carries a machine-checkable kind and an HTTP status;
// raw store errors never leave the service layer.
package apperr

import "net/http"

type Kind string

const (
	KindValidation      Kind = "validation"
	KindConflict        Kind = "conflict"
	KindNotFound        Kind = "not_found"
	KindForbidden       Kind = "forbidden"
	KindUnauthenticated Kind = "unauthenticated"
	KindUnavailable     Kind = "unavailable"
	KindInternal        Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Status  int
	// Details is an optional payload surfaced to the caller, e.g. the
	// conflicting meetings on a schedule clash.
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Status: http.StatusBadRequest}
}

// Conflict defaults to 400, matching the duplicate check-in contract.
// Use WithStatus(409) for scheduling clashes.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg, Status: http.StatusBadRequest}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Status: http.StatusNotFound}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg, Status: http.StatusForbidden}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg, Status: http.StatusUnauthorized}
}

func Unavailable(msg string, err error) *Error {
	return &Error{Kind: KindUnavailable, Message: msg, Status: http.StatusServiceUnavailable, Err: err}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Status: http.StatusInternalServerError, Err: err}
}

func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}
