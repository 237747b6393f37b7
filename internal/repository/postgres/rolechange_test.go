package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository/postgres"
)

var roleChangeCols = []string{
	"id", "user_id", "from_role", "new_role", "reason", "initiated_by", "status",
	"user_response", "dispute_note", "finalized_by", "created_on", "updated_on",
}

func TestRoleChangeRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoleChangeRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := &domain.RoleChangeRequest{
			UserID:      5,
			CurrentRole: domain.RoleInstructor,
			NewRole:     domain.RoleStudent,
			Reason:      "repeated policy violations",
			InitiatedBy: 90,
			Status:      domain.RoleChangeStatusPendingUserReview,
		}

		mock.ExpectQuery("INSERT INTO role_change_requests").
			WithArgs(req.UserID, req.CurrentRole, req.NewRole, req.Reason, req.InitiatedBy, req.Status, "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), req.ID)
	})

	t.Run("SecondActiveRequest", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO role_change_requests").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, &domain.RoleChangeRequest{UserID: 5})
		assert.ErrorIs(t, err, domain.ErrActiveRequestExists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleChangeRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoleChangeRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM role_change_requests WHERE id").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows(roleChangeCols).AddRow(
				7, 5, "instructor", "student", "violations", 90, "user_disputed",
				"disputed", "I disagree", nil, now, now))

		req, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleChangeStatusUserDisputed, req.Status)
		assert.NotNil(t, req.UserResponse)
		assert.Equal(t, domain.UserResponseDisputed, *req.UserResponse)
		assert.Equal(t, "I disagree", req.DisputeNote)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM role_change_requests WHERE id").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows(roleChangeCols))

		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleChangeRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoleChangeRepository(db)
	ctx := context.Background()

	t.Run("GuardedByReadStatus", func(t *testing.T) {
		resp := domain.UserResponseAccepted
		req := &domain.RoleChangeRequest{
			ID:           7,
			Status:       domain.RoleChangeStatusUserAccepted,
			UserResponse: &resp,
		}

		mock.ExpectExec("UPDATE role_change_requests SET status").
			WithArgs(domain.RoleChangeStatusUserAccepted, "accepted", "", sqlmock.AnyArg(),
				int32(7), domain.RoleChangeStatusPendingUserReview).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, req, domain.RoleChangeStatusPendingUserReview)
		assert.NoError(t, err)
	})

	t.Run("RacedCancelMatchesZeroRows", func(t *testing.T) {
		// The request was cancelled between the caller's read and this
		// write; the status guard keeps it from being revived.
		mock.ExpectExec("UPDATE role_change_requests SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.RoleChangeRequest{
			ID:     7,
			Status: domain.RoleChangeStatusUserAccepted,
		}, domain.RoleChangeStatusPendingUserReview)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleChangeRepository_Finalize(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoleChangeRepository(db)
	ctx := context.Background()

	t.Run("CommitsBothUpdates", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE role_change_requests SET status").
			WithArgs(domain.RoleChangeStatusFinalized, int32(90), sqlmock.AnyArg(), int32(7),
				domain.RoleChangeStatusUserAccepted, domain.RoleChangeStatusUserDisputed).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE users SET role").
			WithArgs(domain.RoleStudent, sqlmock.AnyArg(), int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Finalize(ctx, 7, 90, 5, domain.RoleStudent)
		assert.NoError(t, err)
	})

	t.Run("PendingRequestRollsBack", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE role_change_requests SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Finalize(ctx, 7, 90, 5, domain.RoleStudent)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleChangeRepository_Cancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoleChangeRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE role_change_requests SET status").
			WithArgs(domain.RoleChangeStatusCancelled, sqlmock.AnyArg(), int32(7),
				domain.RoleChangeStatusFinalized).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Cancel(ctx, 7)
		assert.NoError(t, err)
	})

	t.Run("AlreadyFinalized", func(t *testing.T) {
		mock.ExpectExec("UPDATE role_change_requests SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Cancel(ctx, 8)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
