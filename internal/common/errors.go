// Package common defines shared constants and sentinel errors used across
// the client and the mock record store. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorValidation = errors.New("validation error")

	// Session token errors (malformed or foreign token).
	ErrInvalidToken = errors.New("invalid token")
)
