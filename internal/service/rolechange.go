package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository"
	"learnhub-backend/internal/workflow"
)

type roleChangeService struct {
	rcRepo   repository.RoleChangeRepository
	userRepo repository.UserRepository
	auditSvc AuditService
	emailSvc EmailService
}

func NewRoleChangeService(
	rcRepo repository.RoleChangeRepository,
	userRepo repository.UserRepository,
	auditSvc AuditService,
	emailSvc EmailService,
) RoleChangeService {
	return &roleChangeService{
		rcRepo:   rcRepo,
		userRepo: userRepo,
		auditSvc: auditSvc,
		emailSvc: emailSvc,
	}
}

func (s *roleChangeService) InitiateDemotion(ctx context.Context, actorID, userID int32, newRole domain.Role, reason string) (*domain.RoleChangeRequest, error) {
	if len(strings.TrimSpace(reason)) < domain.MinDemotionReasonLen {
		return nil, domain.ErrInvalidReason
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleCEO {
		return nil, domain.ErrProtectedRole
	}

	newRank, ok := domain.DemotionRank(newRole)
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	currentRank, ok := domain.DemotionRank(user.Role)
	if !ok {
		return nil, domain.ErrProtectedRole
	}
	if newRank >= currentRank {
		return nil, fmt.Errorf("%w: %q is not below %q on the demotion ladder", domain.ErrInvalidRole, newRole, user.Role)
	}

	req := &domain.RoleChangeRequest{
		UserID:      userID,
		CurrentRole: user.Role,
		NewRole:     newRole,
		Reason:      reason,
		InitiatedBy: actorID,
		Status:      domain.RoleChangeStatusPendingUserReview,
	}
	if err := s.rcRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, actorID, userID, map[string]string{
		"kind":       "demotion_initiated",
		"from":       string(user.Role),
		"to":         string(newRole),
		"request_id": strconv.Itoa(int(req.ID)),
		"reason":     reason,
	})
	_ = s.emailSvc.SendDemotionNotice(ctx, user.Email, user.Name, newRole, reason)

	return req, nil
}

func (s *roleChangeService) UserRespond(ctx context.Context, requestID, userID int32, confirm bool, disputeNote string) (*domain.RoleChangeRequest, error) {
	req, err := s.rcRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.UserID != userID {
		return nil, domain.ErrForbidden
	}

	event := workflow.EventUserAccept
	response := domain.UserResponseAccepted
	if !confirm {
		event = workflow.EventUserDispute
		response = domain.UserResponseDisputed
	}
	from := req.Status
	next, err := workflow.RoleChange.Next(from, event)
	if err != nil {
		return nil, err
	}

	req.Status = next
	req.UserResponse = &response
	if !confirm {
		req.DisputeNote = disputeNote
	}

	if err := s.rcRepo.Update(ctx, req, from); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, userID, userID, map[string]string{
		"kind":       "demotion_user_responded",
		"request_id": strconv.Itoa(int(req.ID)),
		"response":   string(response),
	})

	return req, nil
}

func (s *roleChangeService) FinalizeDemotion(ctx context.Context, requestID, actorID int32) (*domain.RoleChangeRequest, error) {
	req, err := s.rcRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	// A dispute is advisory: finalize applies the new role from
	// user_disputed just as it does from user_accepted.
	if _, err := workflow.RoleChange.Next(req.Status, workflow.EventFinalize); err != nil {
		return nil, err
	}

	if err := s.rcRepo.Finalize(ctx, requestID, actorID, req.UserID, req.NewRole); err != nil {
		return nil, err
	}

	req.Status = domain.RoleChangeStatusFinalized
	req.FinalizedBy = &actorID

	details := map[string]string{
		"kind":       "demotion_finalized",
		"from":       string(req.CurrentRole),
		"to":         string(req.NewRole),
		"request_id": strconv.Itoa(int(req.ID)),
	}
	if req.DisputeNote != "" {
		details["dispute_note"] = req.DisputeNote
	}
	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, actorID, req.UserID, details)

	user, _ := s.userRepo.GetByID(ctx, req.UserID)
	if user != nil {
		_ = s.emailSvc.SendDemotionOutcome(ctx, user.Email, user.Name, req.Status, req.NewRole)
	}

	return req, nil
}

func (s *roleChangeService) CancelDemotion(ctx context.Context, requestID, actorID int32) (*domain.RoleChangeRequest, error) {
	req, err := s.rcRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if _, err := workflow.RoleChange.Next(req.Status, workflow.EventCancel); err != nil {
		return nil, err
	}

	if err := s.rcRepo.Cancel(ctx, requestID); err != nil {
		return nil, err
	}

	req.Status = domain.RoleChangeStatusCancelled

	s.auditSvc.Record(ctx, domain.AuditActionRoleUpdate, actorID, req.UserID, map[string]string{
		"kind":       "demotion_cancelled",
		"request_id": strconv.Itoa(int(req.ID)),
	})

	user, _ := s.userRepo.GetByID(ctx, req.UserID)
	if user != nil {
		_ = s.emailSvc.SendDemotionOutcome(ctx, user.Email, user.Name, req.Status, req.NewRole)
	}

	return req, nil
}

func (s *roleChangeService) ListRoleChanges(ctx context.Context, status string) ([]domain.RoleChangeRequest, error) {
	return s.rcRepo.List(ctx, status)
}

func (s *roleChangeService) ListMyRoleChanges(ctx context.Context, userID int32) ([]domain.RoleChangeRequest, error) {
	return s.rcRepo.ListByUser(ctx, userID)
}
