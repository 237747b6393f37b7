package http

import (
	"context"

	"learnhub-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user-claims"

// WithClaims stores the authenticated user's claims on the context.
func WithClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the authenticated user's claims, if any.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims, ok
}
