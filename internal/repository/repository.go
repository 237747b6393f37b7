package repository

import (
	"context"
	"time"

	"learnhub-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, role string) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int32, role domain.Role) error
	SetBlocked(ctx context.Context, id int32, blocked bool, reason string) error
}

type PromotionRepository interface {
	// Create inserts a new request. A second active request for the same
	// user trips the partial unique index and surfaces as
	// domain.ErrActiveRequestExists.
	Create(ctx context.Context, req *domain.PromotionRequest) error
	GetByID(ctx context.Context, id int32) (*domain.PromotionRequest, error)
	// GetLatestByUser returns the user's most recent request regardless of
	// status, or domain.ErrNotFound when the user never filed one.
	GetLatestByUser(ctx context.Context, userID int32) (*domain.PromotionRequest, error)
	// Update writes the request's workflow fields guarded by the status the
	// caller read. A request whose status moved underneath (for example a
	// raced CEO decision) matches zero rows and surfaces as
	// domain.ErrInvalidTransition, leaving the row untouched.
	Update(ctx context.Context, req *domain.PromotionRequest, from domain.PromotionStatus) error
	// Approve atomically moves the request out of any non-terminal status
	// into approved and writes the new role to the user row. Either both
	// updates land or neither does.
	Approve(ctx context.Context, id, decidedBy int32, reason string, userID int32, newRole domain.Role) error
	// Reject moves the request into rejected and stamps the cooldown,
	// guarded against already-terminal requests.
	Reject(ctx context.Context, id, decidedBy int32, reason string, cooldownEndsAt time.Time) error
	List(ctx context.Context, status, role string) ([]domain.PromotionRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.PromotionRequest, error)
}

type RoleChangeRepository interface {
	// Create inserts a new demotion request; a concurrent active request
	// for the same user surfaces as domain.ErrActiveRequestExists.
	Create(ctx context.Context, req *domain.RoleChangeRequest) error
	GetByID(ctx context.Context, id int32) (*domain.RoleChangeRequest, error)
	// Update is guarded the same way as PromotionRepository.Update: the row
	// must still be in the status the caller read, else
	// domain.ErrInvalidTransition.
	Update(ctx context.Context, req *domain.RoleChangeRequest, from domain.RoleChangeStatus) error
	// Finalize atomically moves the request from user_accepted or
	// user_disputed into finalized and writes the new role to the user row.
	Finalize(ctx context.Context, id, finalizedBy int32, userID int32, newRole domain.Role) error
	// Cancel moves any non-terminal request into cancelled.
	Cancel(ctx context.Context, id int32) error
	List(ctx context.Context, status string) ([]domain.RoleChangeRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.RoleChangeRequest, error)
}

type AuditRepository interface {
	Record(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, updatedBy int32) error
}

type QuizRepository interface {
	List(ctx context.Context, status string) ([]domain.Quiz, error)
	// CloseExpired closes every open quiz whose expiry has passed and
	// returns how many were closed.
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}
