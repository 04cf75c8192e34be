// Package common defines shared constants and sentinel errors used across
// TaskKeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Guard errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Domain errors surfaced by the user/task services.
	ErrDuplicateEmail = errors.New("email already exists")
	ErrOwnerNotFound  = errors.New("owner not found")
	ErrTaskNotFound   = errors.New("task not found")
)
