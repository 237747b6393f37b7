package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"learnhub-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context, role string) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateRole(ctx context.Context, id int32, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}
func (m *MockUserRepo) SetBlocked(ctx context.Context, id int32, blocked bool, reason string) error {
	args := m.Called(ctx, id, blocked, reason)
	return args.Error(0)
}

// MockPromotionRepo
type MockPromotionRepo struct {
	mock.Mock
}

func (m *MockPromotionRepo) Create(ctx context.Context, req *domain.PromotionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockPromotionRepo) GetByID(ctx context.Context, id int32) (*domain.PromotionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromotionRequest), args.Error(1)
}
func (m *MockPromotionRepo) GetLatestByUser(ctx context.Context, userID int32) (*domain.PromotionRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromotionRequest), args.Error(1)
}
func (m *MockPromotionRepo) Update(ctx context.Context, req *domain.PromotionRequest, from domain.PromotionStatus) error {
	args := m.Called(ctx, req, from)
	return args.Error(0)
}
func (m *MockPromotionRepo) Approve(ctx context.Context, id, decidedBy int32, reason string, userID int32, newRole domain.Role) error {
	args := m.Called(ctx, id, decidedBy, reason, userID, newRole)
	return args.Error(0)
}
func (m *MockPromotionRepo) Reject(ctx context.Context, id, decidedBy int32, reason string, cooldownEndsAt time.Time) error {
	args := m.Called(ctx, id, decidedBy, reason, cooldownEndsAt)
	return args.Error(0)
}
func (m *MockPromotionRepo) List(ctx context.Context, status, role string) ([]domain.PromotionRequest, error) {
	args := m.Called(ctx, status, role)
	return args.Get(0).([]domain.PromotionRequest), args.Error(1)
}
func (m *MockPromotionRepo) ListByUser(ctx context.Context, userID int32) ([]domain.PromotionRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PromotionRequest), args.Error(1)
}

// MockRoleChangeRepo
type MockRoleChangeRepo struct {
	mock.Mock
}

func (m *MockRoleChangeRepo) Create(ctx context.Context, req *domain.RoleChangeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRoleChangeRepo) GetByID(ctx context.Context, id int32) (*domain.RoleChangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoleChangeRequest), args.Error(1)
}
func (m *MockRoleChangeRepo) Update(ctx context.Context, req *domain.RoleChangeRequest, from domain.RoleChangeStatus) error {
	args := m.Called(ctx, req, from)
	return args.Error(0)
}
func (m *MockRoleChangeRepo) Finalize(ctx context.Context, id, finalizedBy int32, userID int32, newRole domain.Role) error {
	args := m.Called(ctx, id, finalizedBy, userID, newRole)
	return args.Error(0)
}
func (m *MockRoleChangeRepo) Cancel(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRoleChangeRepo) List(ctx context.Context, status string) ([]domain.RoleChangeRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.RoleChangeRequest), args.Error(1)
}
func (m *MockRoleChangeRepo) ListByUser(ctx context.Context, userID int32) ([]domain.RoleChangeRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.RoleChangeRequest), args.Error(1)
}

// MockAuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, action domain.AuditAction, actorID, targetID int32, details map[string]string) {
	m.Called(ctx, action, actorID, targetID, details)
}
func (m *MockAuditService) List(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

// MockSettingsRepo
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
func (m *MockSettingsRepo) Set(ctx context.Context, key, value string, updatedBy int32) error {
	args := m.Called(ctx, key, value, updatedBy)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPromotionUpdate(ctx context.Context, email, name string, status domain.PromotionStatus, requestedRole domain.Role, reason string) error {
	args := m.Called(ctx, email, name, status, requestedRole, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendInterviewNotice(ctx context.Context, email, name string, scheduledAt time.Time, mode domain.InterviewMode, where string) error {
	args := m.Called(ctx, email, name, scheduledAt, mode, where)
	return args.Error(0)
}
func (m *MockEmailService) SendDemotionNotice(ctx context.Context, email, name string, newRole domain.Role, reason string) error {
	args := m.Called(ctx, email, name, newRole, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendDemotionOutcome(ctx context.Context, email, name string, status domain.RoleChangeStatus, newRole domain.Role) error {
	args := m.Called(ctx, email, name, status, newRole)
	return args.Error(0)
}
