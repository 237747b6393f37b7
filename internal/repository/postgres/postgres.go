package postgres

import (
	"database/sql"
	"errors"

	"learnhub-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.PromotionRepository
	repository.RoleChangeRepository
	repository.AuditRepository
	repository.SettingsRepository
	repository.QuizRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		UserRepository:       NewUserRepository(db),
		PromotionRepository:  NewPromotionRepository(db),
		RoleChangeRepository: NewRoleChangeRepository(db),
		AuditRepository:      NewAuditRepository(db),
		SettingsRepository:   NewSettingsRepository(db),
		QuizRepository:       NewQuizRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation. The active-request partial indexes rely on this to enforce
// the one-active-request-per-user invariant at insert time.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
