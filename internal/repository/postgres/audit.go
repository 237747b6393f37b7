package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository"
)

type auditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}
	query := `INSERT INTO audit_log (action, actor_id, target_id, details, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, entry.Action, entry.ActorID, entry.TargetID, details, time.Now()).Scan(&entry.ID)
}

func (r *auditRepository) List(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, action, actor_id, target_id, details, created_on FROM audit_log ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var details []byte
		if err := rows.Scan(&e.ID, &e.Action, &e.ActorID, &e.TargetID, &details, &e.CreatedOn); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, err
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
