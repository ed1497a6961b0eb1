// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage error")

	// Auth errors. Expired, tampered and malformed tokens are deliberately
	// indistinguishable at the error-kind level.
	ErrInvalidToken = errors.New("invalid or expired token")
)
