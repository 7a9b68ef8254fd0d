package domain

import "errors"

// Validation and lookup failures surfaced directly to the acting user.
// None are retried and none are fatal; each aborts only the single
// operation that raised it.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyContent       = errors.New("content cannot be empty")
	ErrUnknownUser        = errors.New("unknown user")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)
