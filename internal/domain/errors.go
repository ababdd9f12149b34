// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error for all entity validation failures.
// Every specific validation error below wraps it, so callers can treat any
// of them uniformly with errors.Is(err, ErrValidation).
var ErrValidation = errors.New("validation failed")

// Specific validation errors. Each wraps ErrValidation.
var (
	// ErrEmptyUserID is returned when a user ID is missing.
	ErrEmptyUserID = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)

	// ErrEmptyUsername is returned when a username is missing.
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrValidation)

	// ErrEmptyPassword is returned when neither a plaintext password nor a
	// hashed password is available on a user.
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's
	// practical 72-byte limit.
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)

	// ErrEmptyFlowerID is returned when a flower ID is missing.
	ErrEmptyFlowerID = fmt.Errorf("%w: flower ID cannot be empty", ErrValidation)

	// ErrEmptyFlowerName is returned when a flower name is missing.
	ErrEmptyFlowerName = fmt.Errorf("%w: flower name cannot be empty", ErrValidation)

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)
)
