package service

import (
	"context"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	auditSvc AuditService
}

func NewUserService(userRepo repository.UserRepository, auditSvc AuditService) UserService {
	return &userService{userRepo: userRepo, auditSvc: auditSvc}
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context, role string) ([]domain.User, error) {
	return s.userRepo.List(ctx, role)
}

func (s *userService) SetBlocked(ctx context.Context, actorID, userID int32, blocked bool, reason string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleCEO {
		return domain.ErrProtectedRole
	}

	if err := s.userRepo.SetBlocked(ctx, userID, blocked, reason); err != nil {
		return err
	}

	details := map[string]string{"reason": reason}
	if blocked {
		details["kind"] = "blocked"
	} else {
		details["kind"] = "unblocked"
	}
	s.auditSvc.Record(ctx, domain.AuditActionUserBlock, actorID, userID, details)
	return nil
}
