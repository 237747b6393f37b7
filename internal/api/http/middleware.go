package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/logger"
	"learnhub-backend/internal/security"
	"learnhub-backend/internal/service"
)

// AuthMiddleware validates the bearer token and stores the claims on the
// request context for downstream handlers.
func AuthMiddleware(tm security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeMessage(w, http.StatusUnauthorized, "authorization token is not provided")
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")

			claims, err := tm.ValidateToken(token)
			if err != nil {
				writeError(w, err)
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeMessage(w, http.StatusUnauthorized, "wrong token type for this endpoint")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// MaintenanceGate rejects mutating calls while maintenance mode is on.
// The CEO keeps write access so the mode can be turned back off. The flag
// is read from the settings store on every request, so all server
// instances flip together.
func MaintenanceGate(settings service.SettingsService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			enabled, err := settings.MaintenanceMode(r.Context())
			if err != nil {
				// The gate is advisory; never take the API down over it.
				logger.Error("Failed to read maintenance mode", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if enabled {
				claims, ok := ClaimsFromContext(r.Context())
				if !ok || domain.Role(claims.Role) != domain.RoleCEO {
					writeMessage(w, http.StatusServiceUnavailable, "platform is under maintenance")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requireRoles wraps a handler with a caller-role check.
func requireRoles(h http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}
		for _, role := range roles {
			if domain.Role(claims.Role) == role {
				h(w, r)
				return
			}
		}
		writeMessage(w, http.StatusForbidden, "caller is not allowed to perform this operation")
	}
}
