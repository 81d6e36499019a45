package domain

import "errors"

// Sentinel errors shared across services and mapped to HTTP statuses by the
// API error handler. Infrastructure wraps them with %w; callers match with
// errors.Is.
var (
	// ErrMissingSecret means the signing secret is absent from configuration.
	// This is a deployment fault, not a per-request condition.
	ErrMissingSecret = errors.New("signing secret not configured")

	// ErrInvalidCredentials covers both unknown-user and wrong-password login
	// failures so the response never reveals which factor was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrPostNotFound = errors.New("post not found")

	ErrInvalidRole = errors.New("invalid role name")

	ErrTooManyAttempts = errors.New("too many login attempts")
)
