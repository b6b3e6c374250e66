package domain

import (
	"errors"
	"strings"
)

// Error kinds. Anything that does not wrap one of these is an internal failure.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error carries a client-facing message alongside its kind
type Error struct {
	Kind    error
	Message string
	// Fields lists the offending request fields for ErrBadRequest
	Fields []string
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func BadRequest(message string, fields ...string) error {
	return &Error{Kind: ErrBadRequest, Message: message, Fields: fields}
}

func Unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

var (
	ErrAccountNotFound    = NotFound("User not found")
	ErrJobNotFound        = NotFound("Job not found")
	ErrEmailTaken         = Conflict("User already exists")
	ErrAlreadyApplied     = Conflict("You have already applied for this job")
	ErrInvalidCredentials = Unauthorized("Invalid credentials")
	ErrMissingToken       = Unauthorized("No token provided")
	ErrInvalidToken       = Unauthorized("Invalid token")
)
