// Package fault defines the failure taxonomy of the engagement core.
// Every failure the core produces carries a kind that the transport layer
// maps onto a status code, plus a human-readable message in Spanish.
package fault

import "errors"

var (
	ErrValidation   = errors.New("validation")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

type Fault struct {
	Kind    error
	Message string
}

func (f *Fault) Error() string {
	return f.Message
}

func (f *Fault) Unwrap() error {
	return f.Kind
}

func New(kind error, message string) *Fault {
	return &Fault{Kind: kind, Message: message}
}

func Validation(message string) *Fault {
	return New(ErrValidation, message)
}

func NotFound(message string) *Fault {
	return New(ErrNotFound, message)
}

func Forbidden(message string) *Fault {
	return New(ErrForbidden, message)
}

func Conflict(message string) *Fault {
	return New(ErrConflict, message)
}

func Unauthorized(message string) *Fault {
	return New(ErrUnauthorized, message)
}
