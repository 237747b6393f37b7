package service

import (
	"context"
	"time"

	"learnhub-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	ListUsers(ctx context.Context, role string) ([]domain.User, error)
	SetBlocked(ctx context.Context, actorID, userID int32, blocked bool, reason string) error
}

// ScheduleInterviewInput carries the interview details supplied by the
// scheduling admin. Exactly one of MeetingLink/Location is expected,
// matching the mode.
type ScheduleInterviewInput struct {
	ScheduledAt time.Time
	Mode        domain.InterviewMode
	MeetingLink string
	Location    string
	Notes       string
}

type PromotionService interface {
	RequestPromotion(ctx context.Context, userID int32) (*domain.PromotionRequest, error)
	CEOInitiatePromotion(ctx context.Context, ceoID, userID int32, requestedRole domain.Role) (*domain.PromotionRequest, error)
	ScheduleInterview(ctx context.Context, actorID, requestID int32, in ScheduleInterviewInput) (*domain.PromotionRequest, error)
	CompleteInterview(ctx context.Context, actorID, requestID int32, proofKey string) (*domain.PromotionRequest, error)
	ConfirmInterviewStatus(ctx context.Context, requestID, userID int32, confirm bool) (*domain.PromotionRequest, error)
	ApprovePromotion(ctx context.Context, requestID, ceoID int32, reason string) (*domain.PromotionRequest, error)
	RejectPromotion(ctx context.Context, requestID, ceoID int32, reason string) (*domain.PromotionRequest, error)
	GetPromotion(ctx context.Context, id int32) (*domain.PromotionRequest, error)
	ListPromotions(ctx context.Context, status, role string) ([]domain.PromotionRequest, error)
	ListMyPromotions(ctx context.Context, userID int32) ([]domain.PromotionRequest, error)
}

type RoleChangeService interface {
	InitiateDemotion(ctx context.Context, actorID, userID int32, newRole domain.Role, reason string) (*domain.RoleChangeRequest, error)
	UserRespond(ctx context.Context, requestID, userID int32, confirm bool, disputeNote string) (*domain.RoleChangeRequest, error)
	FinalizeDemotion(ctx context.Context, requestID, actorID int32) (*domain.RoleChangeRequest, error)
	CancelDemotion(ctx context.Context, requestID, actorID int32) (*domain.RoleChangeRequest, error)
	ListRoleChanges(ctx context.Context, status string) ([]domain.RoleChangeRequest, error)
	ListMyRoleChanges(ctx context.Context, userID int32) ([]domain.RoleChangeRequest, error)
}

// AuditService is a write-mostly sink. Record is best-effort: failures are
// logged and swallowed so a lost audit line never rolls back a workflow
// transition.
type AuditService interface {
	Record(ctx context.Context, action domain.AuditAction, actorID, targetID int32, details map[string]string)
	List(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, error)
}

type SettingsService interface {
	MaintenanceMode(ctx context.Context) (bool, error)
	SetMaintenanceMode(ctx context.Context, actorID int32, enabled bool) error
}

type QuizService interface {
	ListQuizzes(ctx context.Context, status string) ([]domain.Quiz, error)
	CloseExpired(ctx context.Context) (int64, error)
}

type EmailService interface {
	SendPromotionUpdate(ctx context.Context, email, name string, status domain.PromotionStatus, requestedRole domain.Role, reason string) error
	SendInterviewNotice(ctx context.Context, email, name string, scheduledAt time.Time, mode domain.InterviewMode, where string) error
	SendDemotionNotice(ctx context.Context, email, name string, newRole domain.Role, reason string) error
	SendDemotionOutcome(ctx context.Context, email, name string, status domain.RoleChangeStatus, newRole domain.Role) error
}
