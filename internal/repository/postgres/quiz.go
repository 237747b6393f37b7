package postgres

import (
	"context"
	"database/sql"
	"time"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository"
)

type quizRepository struct {
	db *sql.DB
}

func NewQuizRepository(db *sql.DB) repository.QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) List(ctx context.Context, status string) ([]domain.Quiz, error) {
	query := `SELECT id, title, status, created_by, expires_on, created_on FROM quizzes`
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

	var quizzes []domain.Quiz
	for rows.Next() {
		var q domain.Quiz
		if err := rows.Scan(&q.ID, &q.Title, &q.Status, &q.CreatedBy, &q.ExpiresOn, &q.CreatedOn); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

func (r *quizRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE quizzes SET status = $1 WHERE status = $2 AND expires_on IS NOT NULL AND expires_on < $3`,
		domain.QuizStatusClosed, domain.QuizStatusOpen, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
