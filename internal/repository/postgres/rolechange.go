package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository"
)

type roleChangeRepository struct {
	db *sql.DB
}

func NewRoleChangeRepository(db *sql.DB) repository.RoleChangeRepository {
	return &roleChangeRepository{db: db}
}

const roleChangeColumns = `id, user_id, from_role, new_role, reason, initiated_by, status,
	user_response, dispute_note, finalized_by, created_on, updated_on`

func scanRoleChange(row rowScanner) (*domain.RoleChangeRequest, error) {
	req := &domain.RoleChangeRequest{}
	var (
		response    sql.NullString
		finalizedBy sql.NullInt32
	)
	err := row.Scan(&req.ID, &req.UserID, &req.CurrentRole, &req.NewRole, &req.Reason, &req.InitiatedBy, &req.Status,
		&response, &req.DisputeNote, &finalizedBy, &req.CreatedOn, &req.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if response.Valid {
		ur := domain.UserResponse(response.String)
		req.UserResponse = &ur
	}
	if finalizedBy.Valid {
		req.FinalizedBy = &finalizedBy.Int32
	}
	return req, nil
}

func (r *roleChangeRepository) Create(ctx context.Context, req *domain.RoleChangeRequest) error {
	query := `INSERT INTO role_change_requests (user_id, from_role, new_role, reason, initiated_by, status, dispute_note, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		req.UserID, req.CurrentRole, req.NewRole, req.Reason, req.InitiatedBy, req.Status, req.DisputeNote, time.Now(), time.Now()).Scan(&req.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrActiveRequestExists
		}
		return err
	}
	return nil
}

func (r *roleChangeRepository) GetByID(ctx context.Context, id int32) (*domain.RoleChangeRequest, error) {
	query := `SELECT ` + roleChangeColumns + ` FROM role_change_requests WHERE id = $1`
	req, err := scanRoleChange(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

func (r *roleChangeRepository) Update(ctx context.Context, req *domain.RoleChangeRequest, from domain.RoleChangeStatus) error {
	var response sql.NullString
	if req.UserResponse != nil {
		response = sql.NullString{String: string(*req.UserResponse), Valid: true}
	}
	// Guarded like Finalize/Cancel: a row whose status moved underneath
	// matches zero rows and stays untouched.
	query := `UPDATE role_change_requests SET status = $1, user_response = $2, dispute_note = $3, updated_on = $4
	          WHERE id = $5 AND status = $6`
	res, err := r.db.ExecContext(ctx, query, req.Status, response, req.DisputeNote, time.Now(), req.ID, from)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *roleChangeRepository) Finalize(ctx context.Context, id, finalizedBy int32, userID int32, newRole domain.Role) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Finalization is only reachable once the user has responded; the
	// guard keeps a second finalize (or one raced with a cancel) from
	// re-applying the role change.
	res, err := tx.ExecContext(ctx,
		`UPDATE role_change_requests SET status = $1, finalized_by = $2, updated_on = $3
		 WHERE id = $4 AND status IN ($5, $6)`,
		domain.RoleChangeStatusFinalized, finalizedBy, time.Now(), id,
		domain.RoleChangeStatusUserAccepted, domain.RoleChangeStatusUserDisputed)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidTransition
	}

	res, err = tx.ExecContext(ctx, `UPDATE users SET role = $1, updated_on = $2 WHERE id = $3`, newRole, time.Now(), userID)
	if err != nil {
		return err
	}
	rows, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("demoting user %d: %w", userID, domain.ErrNotFound)
	}

	return tx.Commit()
}

func (r *roleChangeRepository) Cancel(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE role_change_requests SET status = $1, updated_on = $2
		 WHERE id = $3 AND status NOT IN ($4, $1)`,
		domain.RoleChangeStatusCancelled, time.Now(), id,
		domain.RoleChangeStatusFinalized)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *roleChangeRepository) List(ctx context.Context, status string) ([]domain.RoleChangeRequest, error) {
	query := `SELECT ` + roleChangeColumns + ` FROM role_change_requests`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.RoleChangeRequest
	for rows.Next() {
		req, err := scanRoleChange(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *roleChangeRepository) ListByUser(ctx context.Context, userID int32) ([]domain.RoleChangeRequest, error) {
	query := `SELECT ` + roleChangeColumns + ` FROM role_change_requests WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.RoleChangeRequest
	for rows.Next() {
		req, err := scanRoleChange(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}
