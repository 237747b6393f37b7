package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	return value, err
}

func (r *settingsRepository) Set(ctx context.Context, key, value string, updatedBy int32) error {
	query := `INSERT INTO settings (key, value, updated_by, updated_on)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (key) DO UPDATE SET value = $2, updated_by = $3, updated_on = $4`
	_, err := r.db.ExecContext(ctx, query, key, value, updatedBy, time.Now())
	return err
}
