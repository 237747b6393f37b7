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

type promotionRepository struct {
	db *sql.DB
}

func NewPromotionRepository(db *sql.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

const promotionColumns = `id, user_id, from_role, requested_role, initiated_by, status,
	interview_required, interview_stage, interview_scheduled_at, interview_mode, interview_meeting_link,
	interview_location, interview_notes, interview_completed_at, interview_completed_by, interview_confirmed,
	interview_proof_key, decided_by, decided_at, decision_reason, cooldown_ends_at, created_on, updated_on`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPromotion(row rowScanner) (*domain.PromotionRequest, error) {
	req := &domain.PromotionRequest{}
	var (
		required    bool
		stage       sql.NullString
		scheduledAt sql.NullTime
		mode        sql.NullString
		meetingLink sql.NullString
		location    sql.NullString
		notes       sql.NullString
		completedAt sql.NullTime
		completedBy sql.NullInt32
		confirmed   sql.NullString
		proofKey    sql.NullString
		decidedBy   sql.NullInt32
		decidedAt   sql.NullTime
		reason      sql.NullString
	)
	err := row.Scan(&req.ID, &req.UserID, &req.CurrentRole, &req.RequestedRole, &req.InitiatedBy, &req.Status,
		&required, &stage, &scheduledAt, &mode, &meetingLink,
		&location, &notes, &completedAt, &completedBy, &confirmed,
		&proofKey, &decidedBy, &decidedAt, &reason, &req.CooldownEndsAt, &req.CreatedOn, &req.UpdatedOn)
	if err != nil {
		return nil, err
	}

	if required || stage.Valid {
		iv := &domain.Interview{
			Required:        required,
			Stage:           domain.InterviewStage(stage.String),
			Mode:            domain.InterviewMode(mode.String),
			MeetingLink:     meetingLink.String,
			Location:        location.String,
			Notes:           notes.String,
			ConfirmedByUser: domain.InterviewConfirmation(confirmed.String),
			ProofKey:        proofKey.String,
		}
		if scheduledAt.Valid {
			iv.ScheduledAt = &scheduledAt.Time
		}
		if completedAt.Valid {
			iv.CompletedAt = &completedAt.Time
		}
		if completedBy.Valid {
			iv.CompletedBy = &completedBy.Int32
		}
		req.Interview = iv
	}
	if decidedBy.Valid {
		req.DecidedBy = &decidedBy.Int32
	}
	if decidedAt.Valid {
		req.DecidedAt = &decidedAt.Time
	}
	req.DecisionReason = reason.String
	return req, nil
}

// interviewArgs flattens the optional interview sub-record into the
// nullable column set.
func interviewArgs(iv *domain.Interview) (required bool, stage, mode, meetingLink, location, notes, confirmed, proofKey sql.NullString, scheduledAt, completedAt sql.NullTime, completedBy sql.NullInt32) {
	if iv == nil {
		return
	}
	required = iv.Required
	if iv.Stage != "" {
		stage = sql.NullString{String: string(iv.Stage), Valid: true}
	}
	if iv.Mode != "" {
		mode = sql.NullString{String: string(iv.Mode), Valid: true}
	}
	meetingLink = sql.NullString{String: iv.MeetingLink, Valid: true}
	location = sql.NullString{String: iv.Location, Valid: true}
	notes = sql.NullString{String: iv.Notes, Valid: true}
	if iv.ConfirmedByUser != "" {
		confirmed = sql.NullString{String: string(iv.ConfirmedByUser), Valid: true}
	}
	proofKey = sql.NullString{String: iv.ProofKey, Valid: true}
	if iv.ScheduledAt != nil {
		scheduledAt = sql.NullTime{Time: *iv.ScheduledAt, Valid: true}
	}
	if iv.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *iv.CompletedAt, Valid: true}
	}
	if iv.CompletedBy != nil {
		completedBy = sql.NullInt32{Int32: *iv.CompletedBy, Valid: true}
	}
	return
}

func (r *promotionRepository) Create(ctx context.Context, req *domain.PromotionRequest) error {
	required, stage, mode, meetingLink, location, notes, confirmed, proofKey, scheduledAt, completedAt, completedBy := interviewArgs(req.Interview)
	query := `INSERT INTO promotion_requests (user_id, from_role, requested_role, initiated_by, status,
	            interview_required, interview_stage, interview_scheduled_at, interview_mode, interview_meeting_link,
	            interview_location, interview_notes, interview_completed_at, interview_completed_by, interview_confirmed,
	            interview_proof_key, decision_reason, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		req.UserID, req.CurrentRole, req.RequestedRole, req.InitiatedBy, req.Status,
		required, stage, scheduledAt, mode, meetingLink,
		location, notes, completedAt, completedBy, confirmed,
		proofKey, req.DecisionReason, time.Now(), time.Now()).Scan(&req.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrActiveRequestExists
		}
		return err
	}
	return nil
}

func (r *promotionRepository) GetByID(ctx context.Context, id int32) (*domain.PromotionRequest, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotion_requests WHERE id = $1`
	req, err := scanPromotion(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

func (r *promotionRepository) GetLatestByUser(ctx context.Context, userID int32) (*domain.PromotionRequest, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotion_requests WHERE user_id = $1 ORDER BY created_on DESC LIMIT 1`
	req, err := scanPromotion(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

func (r *promotionRepository) Update(ctx context.Context, req *domain.PromotionRequest, from domain.PromotionStatus) error {
	required, stage, mode, meetingLink, location, notes, confirmed, proofKey, scheduledAt, completedAt, completedBy := interviewArgs(req.Interview)
	// Guarded like Approve/Reject: the row must still be in the status the
	// caller read, so a raced decision cannot be overwritten back to an
	// active status.
	query := `UPDATE promotion_requests SET status = $1,
	            interview_required = $2, interview_stage = $3, interview_scheduled_at = $4, interview_mode = $5,
	            interview_meeting_link = $6, interview_location = $7, interview_notes = $8, interview_completed_at = $9,
	            interview_completed_by = $10, interview_confirmed = $11, interview_proof_key = $12, updated_on = $13
	          WHERE id = $14 AND status = $15`
	res, err := r.db.ExecContext(ctx, query,
		req.Status, required, stage, scheduledAt, mode,
		meetingLink, location, notes, completedAt,
		completedBy, confirmed, proofKey, time.Now(), req.ID, from)
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

func (r *promotionRepository) Approve(ctx context.Context, id, decidedBy int32, reason string, userID int32, newRole domain.Role) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Guarded status swap: a request that already reached a terminal
	// status matches zero rows and nothing is mutated.
	res, err := tx.ExecContext(ctx,
		`UPDATE promotion_requests SET status = $1, decided_by = $2, decided_at = $3, decision_reason = $4, updated_on = $3
		 WHERE id = $5 AND status NOT IN ($6, $7)`,
		domain.PromotionStatusApproved, decidedBy, time.Now(), reason, id,
		domain.PromotionStatusApproved, domain.PromotionStatusRejected)
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
		return fmt.Errorf("promoting user %d: %w", userID, domain.ErrNotFound)
	}

	return tx.Commit()
}

func (r *promotionRepository) Reject(ctx context.Context, id, decidedBy int32, reason string, cooldownEndsAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE promotion_requests SET status = $1, decided_by = $2, decided_at = $3, decision_reason = $4, cooldown_ends_at = $5, updated_on = $3
		 WHERE id = $6 AND status NOT IN ($1, $7)`,
		domain.PromotionStatusRejected, decidedBy, time.Now(), reason, cooldownEndsAt, id,
		domain.PromotionStatusApproved)
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

func (r *promotionRepository) List(ctx context.Context, status, role string) ([]domain.PromotionRequest, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotion_requests`
	args := []interface{}{}
	where := ""
	if status != "" {
		args = append(args, status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if role != "" {
		args = append(args, role)
		if where == "" {
			where = fmt.Sprintf(" WHERE requested_role = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND requested_role = $%d", len(args))
		}
	}
	query += where + " ORDER BY created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.PromotionRequest
	for rows.Next() {
		req, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *promotionRepository) ListByUser(ctx context.Context, userID int32) ([]domain.PromotionRequest, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotion_requests WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.PromotionRequest
	for rows.Next() {
		req, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}
