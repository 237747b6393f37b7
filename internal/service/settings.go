package service

import (
	"context"
	"errors"
	"strconv"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository"
)

// Maintenance mode lives in the settings table, not in a process-local
// variable, so every server instance observes the same value.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	auditSvc     AuditService
}

func NewSettingsService(settingsRepo repository.SettingsRepository, auditSvc AuditService) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, auditSvc: auditSvc}
}

func (s *settingsService) MaintenanceMode(ctx context.Context) (bool, error) {
	value, err := s.settingsRepo.Get(ctx, domain.SettingMaintenanceMode)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	enabled, _ := strconv.ParseBool(value)
	return enabled, nil
}

func (s *settingsService) SetMaintenanceMode(ctx context.Context, actorID int32, enabled bool) error {
	if err := s.settingsRepo.Set(ctx, domain.SettingMaintenanceMode, strconv.FormatBool(enabled), actorID); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, domain.AuditActionSettings, actorID, 0, map[string]string{
		"key":   domain.SettingMaintenanceMode,
		"value": strconv.FormatBool(enabled),
	})
	return nil
}
