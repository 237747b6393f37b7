package service

import (
	"context"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/logger"
	"learnhub-backend/internal/repository"
)

type auditService struct {
	auditRepo repository.AuditRepository
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// Record appends an audit entry. The request and user records are the
// source of truth for the workflow; a failed audit write is logged and
// never propagated to the caller.
func (s *auditService) Record(ctx context.Context, action domain.AuditAction, actorID, targetID int32, details map[string]string) {
	entry := &domain.AuditEntry{
		Action:   action,
		ActorID:  actorID,
		TargetID: targetID,
		Details:  details,
	}
	if err := s.auditRepo.Record(ctx, entry); err != nil {
		logger.Error("Failed to write audit entry", "action", action, "actor_id", actorID, "target_id", targetID, "error", err)
	}
}

func (s *auditService) List(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, error) {
	return s.auditRepo.List(ctx, limit, offset)
}
