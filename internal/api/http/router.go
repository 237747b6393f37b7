package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/security"
	"learnhub-backend/internal/service"
)

// RouterDeps bundles everything the HTTP layer needs.
type RouterDeps struct {
	TokenManager security.TokenManager
	Auth         service.AuthService
	Users        service.UserService
	Promotions   service.PromotionService
	RoleChanges  service.RoleChangeService
	Settings     service.SettingsService
	Audit        service.AuditService
	Quizzes      service.QuizService
}

// NewRouter wires all routes under /api/v1. Authenticated routes carry the
// JWT middleware and the maintenance gate; per-route role guards narrow
// access further. Subject-level checks (only the affected user may confirm
// or dispute) live in the services, not here.
func NewRouter(deps RouterDeps) *mux.Router {
	authHandler := NewAuthHandler(deps.Auth)
	userHandler := NewUserHandler(deps.Users)
	promotionHandler := NewPromotionHandler(deps.Promotions)
	roleChangeHandler := NewRoleChangeHandler(deps.RoleChanges)
	settingsHandler := NewSettingsHandler(deps.Settings)
	auditHandler := NewAuditHandler(deps.Audit)
	quizHandler := NewQuizHandler(deps.Quizzes)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusOK, "ok")
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public authentication endpoints.
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(AuthMiddleware(deps.TokenManager), MaintenanceGate(deps.Settings))

	staff := []domain.Role{domain.RoleAdmin, domain.RoleCEO}

	// Promotions.
	protected.HandleFunc("/promotions", promotionHandler.Request).Methods(http.MethodPost)
	protected.HandleFunc("/promotions/ceo-initiate",
		requireRoles(promotionHandler.CEOInitiate, domain.RoleCEO)).Methods(http.MethodPost)
	protected.HandleFunc("/promotions/mine", promotionHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/promotions",
		requireRoles(promotionHandler.List, staff...)).Methods(http.MethodGet)
	protected.HandleFunc("/promotions/{id}",
		requireRoles(promotionHandler.Get, staff...)).Methods(http.MethodGet)
	protected.HandleFunc("/promotions/{id}/interview",
		requireRoles(promotionHandler.ScheduleInterview, staff...)).Methods(http.MethodPatch)
	protected.HandleFunc("/promotions/{id}/interview-complete",
		requireRoles(promotionHandler.CompleteInterview, staff...)).Methods(http.MethodPatch)
	protected.HandleFunc("/promotions/{id}/confirm", promotionHandler.Confirm).Methods(http.MethodPatch)
	protected.HandleFunc("/promotions/{id}/approve",
		requireRoles(promotionHandler.Approve, domain.RoleCEO)).Methods(http.MethodPatch)
	protected.HandleFunc("/promotions/{id}/reject",
		requireRoles(promotionHandler.Reject, domain.RoleCEO)).Methods(http.MethodPatch)

	// Demotions and other administrative role changes.
	protected.HandleFunc("/role-change",
		requireRoles(roleChangeHandler.Initiate, staff...)).Methods(http.MethodPost)
	protected.HandleFunc("/role-change/mine", roleChangeHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/role-change",
		requireRoles(roleChangeHandler.List, staff...)).Methods(http.MethodGet)
	protected.HandleFunc("/role-change/{id}/respond", roleChangeHandler.Respond).Methods(http.MethodPatch)
	protected.HandleFunc("/role-change/{id}/finalize",
		requireRoles(roleChangeHandler.Finalize, staff...)).Methods(http.MethodPatch)
	protected.HandleFunc("/role-change/{id}/cancel",
		requireRoles(roleChangeHandler.Cancel, staff...)).Methods(http.MethodPatch)

	// Users.
	protected.HandleFunc("/users/me", userHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/users",
		requireRoles(userHandler.List, staff...)).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}",
		requireRoles(userHandler.Get, staff...)).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}/block",
		requireRoles(userHandler.SetBlocked, staff...)).Methods(http.MethodPatch)

	// Platform settings and audit trail.
	protected.HandleFunc("/settings/maintenance", settingsHandler.GetMaintenance).Methods(http.MethodGet)
	protected.HandleFunc("/settings/maintenance",
		requireRoles(settingsHandler.SetMaintenance, domain.RoleCEO)).Methods(http.MethodPut)
	protected.HandleFunc("/audit",
		requireRoles(auditHandler.List, domain.RoleCEO)).Methods(http.MethodGet)

	// Quizzes.
	protected.HandleFunc("/quizzes", quizHandler.List).Methods(http.MethodGet)

	return r
}
