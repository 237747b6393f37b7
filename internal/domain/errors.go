package domain

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// Workflow invariant violations.
	ErrActiveRequestExists = errors.New("an active request already exists for this user")
	ErrCooldownActive      = errors.New("promotion cooldown is still in effect")
	ErrIneligibleRole      = errors.New("no eligible role to promote to")
	ErrProtectedRole       = errors.New("role is protected from this operation")
	ErrInvalidReason       = errors.New("reason must be at least 10 characters")
	ErrInvalidRole         = errors.New("unrecognized role")
	ErrUserBlocked         = errors.New("user account is blocked")

	// State machine violations.
	ErrInvalidTransition = errors.New("operation not allowed from current status")

	// Authorization.
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("caller is not allowed to perform this operation")

	// Auth.
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
