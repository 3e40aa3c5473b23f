package domain

import (
	"errors"
	"fmt"
)

// Error categories. Handlers translate these into status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// Specific errors wrap a category so errors.Is matches either.
var (
	ErrMissingField    = fmt.Errorf("%w: missing field", ErrInvalidInput)
	ErrInvalidEmail    = fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	ErrInvalidUsername = fmt.Errorf("%w: username must contain only letters and numbers", ErrInvalidInput)
	ErrInvalidRole     = fmt.Errorf("%w: unknown role", ErrInvalidInput)

	ErrDuplicateUser = fmt.Errorf("%w: user already exists", ErrConflict)

	ErrInvalidCredentials    = fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	ErrTokenMalformed        = fmt.Errorf("%w: token is malformed", ErrUnauthorized)
	ErrTokenSignatureInvalid = fmt.Errorf("%w: token signature is invalid", ErrUnauthorized)
	ErrTokenExpired          = fmt.Errorf("%w: token has expired", ErrUnauthorized)
)
