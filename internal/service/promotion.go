package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository"
	"learnhub-backend/internal/workflow"
)

// promotionCooldown is how long a user waits after a rejection before a
// new self-request is accepted. Fixed, not configurable.
const promotionCooldown = 30 * 24 * time.Hour

type promotionService struct {
	promoRepo repository.PromotionRepository
	userRepo  repository.UserRepository
	auditSvc  AuditService
	emailSvc  EmailService
}

func NewPromotionService(
	promoRepo repository.PromotionRepository,
	userRepo repository.UserRepository,
	auditSvc AuditService,
	emailSvc EmailService,
) PromotionService {
	return &promotionService{
		promoRepo: promoRepo,
		userRepo:  userRepo,
		auditSvc:  auditSvc,
		emailSvc:  emailSvc,
	}
}

func (s *promotionService) RequestPromotion(ctx context.Context, userID int32) (*domain.PromotionRequest, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleCEO {
		return nil, domain.ErrIneligibleRole
	}
	if user.Blocked {
		return nil, domain.ErrUserBlocked
	}

	requested, ok := domain.NextPromotionRole(user.Role)
	if !ok {
		return nil, domain.ErrIneligibleRole
	}

	// Cooldown is stamped on the most recent request at rejection time and
	// checked declaratively here; there is no background expiry.
	latest, err := s.promoRepo.GetLatestByUser(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if latest != nil && latest.CooldownEndsAt != nil && latest.CooldownEndsAt.After(time.Now()) {
		return nil, domain.ErrCooldownActive
	}

	req := &domain.PromotionRequest{
		UserID:        userID,
		CurrentRole:   user.Role,
		RequestedRole: requested,
		InitiatedBy:   domain.PromotionInitiatorUser,
		Status:        domain.PromotionStatusPendingReview,
	}
	if requested == domain.RoleAdmin {
		req.Interview = &domain.Interview{
			Required:        true,
			ConfirmedByUser: domain.InterviewConfirmPending,
		}
	}
	if err := s.promoRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, userID, userID, map[string]string{
		"kind":       "promotion_requested",
		"from":       string(user.Role),
		"to":         string(requested),
		"request_id": strconv.Itoa(int(req.ID)),
	})
	_ = s.emailSvc.SendPromotionUpdate(ctx, user.Email, user.Name, req.Status, requested, "")

	return req, nil
}

func (s *promotionService) CEOInitiatePromotion(ctx context.Context, ceoID, userID int32, requestedRole domain.Role) (*domain.PromotionRequest, error) {
	if _, ok := domain.ParseRole(string(requestedRole)); !ok {
		return nil, domain.ErrInvalidRole
	}
	if requestedRole == domain.RoleCEO {
		return nil, fmt.Errorf("%w: cannot promote into ceo", domain.ErrProtectedRole)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleCEO {
		return nil, domain.ErrProtectedRole
	}

	req := &domain.PromotionRequest{
		UserID:         userID,
		CurrentRole:    user.Role,
		RequestedRole:  requestedRole,
		InitiatedBy:    domain.PromotionInitiatorCEO,
		Status:         domain.PromotionStatusAwaitingUser,
		DecisionReason: "CEO initiated",
	}
	if requestedRole == domain.RoleAdmin {
		req.Interview = &domain.Interview{
			Required:        true,
			ConfirmedByUser: domain.InterviewConfirmPending,
		}
	}
	if err := s.promoRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, ceoID, userID, map[string]string{
		"kind":       "promotion_ceo_initiated",
		"from":       string(user.Role),
		"to":         string(requestedRole),
		"request_id": strconv.Itoa(int(req.ID)),
	})
	_ = s.emailSvc.SendPromotionUpdate(ctx, user.Email, user.Name, req.Status, requestedRole, "CEO initiated")

	return req, nil
}

func (s *promotionService) ScheduleInterview(ctx context.Context, actorID, requestID int32, in ScheduleInterviewInput) (*domain.PromotionRequest, error) {
	req, err := s.promoRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	from := req.Status
	next, err := workflow.Promotion.Next(from, workflow.EventScheduleInterview)
	if err != nil {
		return nil, err
	}

	iv := req.Interview
	if iv == nil {
		iv = &domain.Interview{ConfirmedByUser: domain.InterviewConfirmPending}
		req.Interview = iv
	}
	iv.Required = true
	iv.Stage = domain.InterviewStageScheduled
	scheduledAt := in.ScheduledAt
	iv.ScheduledAt = &scheduledAt
	iv.Mode = in.Mode
	iv.MeetingLink = in.MeetingLink
	iv.Location = in.Location
	iv.Notes = in.Notes
	req.Status = next

	if err := s.promoRepo.Update(ctx, req, from); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, actorID, req.UserID, map[string]string{
		"kind":       "interview_scheduled",
		"request_id": strconv.Itoa(int(req.ID)),
		"mode":       string(in.Mode),
	})

	user, _ := s.userRepo.GetByID(ctx, req.UserID)
	if user != nil {
		where := in.MeetingLink
		if in.Mode == domain.InterviewModeOffline {
			where = in.Location
		}
		_ = s.emailSvc.SendInterviewNotice(ctx, user.Email, user.Name, in.ScheduledAt, in.Mode, where)
	}

	return req, nil
}

func (s *promotionService) CompleteInterview(ctx context.Context, actorID, requestID int32, proofKey string) (*domain.PromotionRequest, error) {
	req, err := s.promoRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	from := req.Status
	next, err := workflow.Promotion.Next(from, workflow.EventCompleteInterview)
	if err != nil {
		return nil, err
	}
	if req.Interview == nil {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	req.Interview.Stage = domain.InterviewStageCompleted
	req.Interview.CompletedAt = &now
	req.Interview.CompletedBy = &actorID
	req.Interview.ProofKey = proofKey
	req.Status = next

	if err := s.promoRepo.Update(ctx, req, from); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, actorID, req.UserID, map[string]string{
		"kind":       "interview_completed",
		"request_id": strconv.Itoa(int(req.ID)),
	})

	user, _ := s.userRepo.GetByID(ctx, req.UserID)
	if user != nil {
		_ = s.emailSvc.SendPromotionUpdate(ctx, user.Email, user.Name, req.Status, req.RequestedRole, "")
	}

	return req, nil
}

func (s *promotionService) ConfirmInterviewStatus(ctx context.Context, requestID, userID int32, confirm bool) (*domain.PromotionRequest, error) {
	req, err := s.promoRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.UserID != userID {
		return nil, domain.ErrForbidden
	}

	event := workflow.EventUserConfirmYes
	confirmation := domain.InterviewConfirmYes
	if !confirm {
		event = workflow.EventUserConfirmNo
		confirmation = domain.InterviewConfirmNo
	}
	from := req.Status
	next, err := workflow.Promotion.Next(from, event)
	if err != nil {
		return nil, err
	}
	if req.Interview == nil {
		return nil, domain.ErrInvalidTransition
	}

	req.Interview.ConfirmedByUser = confirmation
	req.Status = next

	if err := s.promoRepo.Update(ctx, req, from); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, userID, userID, map[string]string{
		"kind":       "interview_confirmed",
		"request_id": strconv.Itoa(int(req.ID)),
		"confirmed":  string(confirmation),
	})

	return req, nil
}

func (s *promotionService) ApprovePromotion(ctx context.Context, requestID, ceoID int32, reason string) (*domain.PromotionRequest, error) {
	req, err := s.promoRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if _, err := workflow.Promotion.Next(req.Status, workflow.EventApprove); err != nil {
		return nil, err
	}

	// The repository re-checks the status inside the transaction, so a
	// raced decision fails there rather than promoting twice.
	if err := s.promoRepo.Approve(ctx, requestID, ceoID, reason, req.UserID, req.RequestedRole); err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = domain.PromotionStatusApproved
	req.DecidedBy = &ceoID
	req.DecidedAt = &now
	req.DecisionReason = reason

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, ceoID, req.UserID, map[string]string{
		"kind":       "promotion_approved",
		"from":       string(req.CurrentRole),
		"to":         string(req.RequestedRole),
		"request_id": strconv.Itoa(int(req.ID)),
		"reason":     reason,
	})

	user, _ := s.userRepo.GetByID(ctx, req.UserID)
	if user != nil {
		_ = s.emailSvc.SendPromotionUpdate(ctx, user.Email, user.Name, req.Status, req.RequestedRole, reason)
	}

	return req, nil
}

func (s *promotionService) RejectPromotion(ctx context.Context, requestID, ceoID int32, reason string) (*domain.PromotionRequest, error) {
	req, err := s.promoRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if _, err := workflow.Promotion.Next(req.Status, workflow.EventReject); err != nil {
		return nil, err
	}

	now := time.Now()
	cooldownEndsAt := now.Add(promotionCooldown)
	if err := s.promoRepo.Reject(ctx, requestID, ceoID, reason, cooldownEndsAt); err != nil {
		return nil, err
	}

	req.Status = domain.PromotionStatusRejected
	req.DecidedBy = &ceoID
	req.DecidedAt = &now
	req.DecisionReason = reason
	req.CooldownEndsAt = &cooldownEndsAt

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, ceoID, req.UserID, map[string]string{
		"kind":       "promotion_rejected",
		"request_id": strconv.Itoa(int(req.ID)),
		"reason":     reason,
	})

	user, _ := s.userRepo.GetByID(ctx, req.UserID)
	if user != nil {
		_ = s.emailSvc.SendPromotionUpdate(ctx, user.Email, user.Name, req.Status, req.RequestedRole, reason)
	}

	return req, nil
}

func (s *promotionService) GetPromotion(ctx context.Context, id int32) (*domain.PromotionRequest, error) {
	return s.promoRepo.GetByID(ctx, id)
}

func (s *promotionService) ListPromotions(ctx context.Context, status, role string) ([]domain.PromotionRequest, error) {
	return s.promoRepo.List(ctx, status, role)
}

func (s *promotionService) ListMyPromotions(ctx context.Context, userID int32) ([]domain.PromotionRequest, error) {
	return s.promoRepo.ListByUser(ctx, userID)
}
