// Package common defines sentinel errors and small helpers shared by the
// storage, service and CLI layers of gophdiary. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")

	// Authentication errors.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Form validation errors.
	ErrEmptyFields       = errors.New("empty fields")
	ErrInvalidCharacters = errors.New("invalid characters")
	ErrEmptyContent      = errors.New("empty content")
	ErrNoSelection       = errors.New("no entry selected")

	// Ownership errors for record mutations.
	ErrNotOwner = errors.New("record belongs to another user")
)
