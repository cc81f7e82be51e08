package service

import "errors"

// Error kinds. Every *Error unwraps to exactly one of them.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("unauthorized")
	ErrNotFound   = errors.New("not found")
)

// Error is a client-facing failure: Message is safe to send in a response.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrMissingFields    = newError(ErrValidation, "All fields are required")
	ErrPasswordTooShort = newError(ErrValidation, "Password must be at least 6 characters long")
	ErrUserExists       = newError(ErrConflict, "User already exists")
	ErrUserNotFound     = newError(ErrNotFound, "User not found")
	ErrInvalidPassword  = newError(ErrAuth, "Invalid password")
	ErrUnauthorized     = newError(ErrAuth, "Unauthorized")
	ErrTweetNotFound    = newError(ErrNotFound, "Tweet not found")
)
