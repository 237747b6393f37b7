package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/security"
)

const testSecret = "unit-test-secret-0123456789abcdefghij"

type stubSettings struct {
	enabled bool
	err     error
}

func (s *stubSettings) MaintenanceMode(ctx context.Context) (bool, error) {
	return s.enabled, s.err
}

func (s *stubSettings) SetMaintenanceMode(ctx context.Context, actorID int32, enabled bool) error {
	s.enabled = enabled
	return nil
}

func okHandler() (http.HandlerFunc, *bool) {
	called := false
	return func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}, &called
}

func TestAuthMiddleware(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	t.Run("ValidToken", func(t *testing.T) {
		handler, called := okHandler()
		mw := AuthMiddleware(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, int32(1), claims.UserID)
			handler(w, r)
		}))

		token, _ := tm.GenerateAccessToken(1, "u@test.com", domain.RoleStudent)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/promotions/mine", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)
		assert.True(t, *called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		handler, called := okHandler()
		mw := AuthMiddleware(tm)(handler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/promotions/mine", nil)
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)
		assert.False(t, *called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		handler, called := okHandler()
		mw := AuthMiddleware(tm)(handler)

		token, _ := tm.GenerateRefreshToken(1, "u@test.com")
		req := httptest.NewRequest(http.MethodGet, "/api/v1/promotions/mine", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)
		assert.False(t, *called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	claimsFor := func(role domain.Role) *security.UserClaims {
		return &security.UserClaims{UserID: 1, Role: string(role)}
	}

	t.Run("AllowedRole", func(t *testing.T) {
		handler, called := okHandler()
		guarded := requireRoles(handler, domain.RoleAdmin, domain.RoleCEO)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
		req = req.WithContext(WithClaims(req.Context(), claimsFor(domain.RoleAdmin)))
		rec := httptest.NewRecorder()

		guarded(rec, req)
		assert.True(t, *called)
	})

	t.Run("ForbiddenRole", func(t *testing.T) {
		handler, called := okHandler()
		guarded := requireRoles(handler, domain.RoleCEO)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/audit", nil)
		req = req.WithContext(WithClaims(req.Context(), claimsFor(domain.RoleAdmin)))
		rec := httptest.NewRecorder()

		guarded(rec, req)
		assert.False(t, *called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NoClaims", func(t *testing.T) {
		handler, called := okHandler()
		guarded := requireRoles(handler, domain.RoleCEO)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/audit", nil)
		rec := httptest.NewRecorder()

		guarded(rec, req)
		assert.False(t, *called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMaintenanceGate(t *testing.T) {
	claimsFor := func(role domain.Role) *security.UserClaims {
		return &security.UserClaims{UserID: 1, Role: string(role)}
	}

	t.Run("ReadsPassThrough", func(t *testing.T) {
		handler, called := okHandler()
		mw := MaintenanceGate(&stubSettings{enabled: true})(handler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/quizzes", nil)
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)
		assert.True(t, *called)
	})

	t.Run("WritesBlocked", func(t *testing.T) {
		handler, called := okHandler()
		mw := MaintenanceGate(&stubSettings{enabled: true})(handler)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/promotions", nil)
		req = req.WithContext(WithClaims(req.Context(), claimsFor(domain.RoleStudent)))
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)
		assert.False(t, *called)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("CEOKeepsWriteAccess", func(t *testing.T) {
		handler, called := okHandler()
		mw := MaintenanceGate(&stubSettings{enabled: true})(handler)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/settings/maintenance", nil)
		req = req.WithContext(WithClaims(req.Context(), claimsFor(domain.RoleCEO)))
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)
		assert.True(t, *called)
	})

	t.Run("OffMeansOpen", func(t *testing.T) {
		handler, called := okHandler()
		mw := MaintenanceGate(&stubSettings{enabled: false})(handler)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/promotions", nil)
		req = req.WithContext(WithClaims(req.Context(), claimsFor(domain.RoleStudent)))
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)
		assert.True(t, *called)
	})
}
