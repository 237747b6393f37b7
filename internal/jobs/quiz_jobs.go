package jobs

import (
	"context"

	"learnhub-backend/internal/logger"
)

// CloseExpiredQuizzes flips every OPEN quiz whose deadline has passed to
// CLOSED. Quiz expiry is independent of the role workflows and runs on its
// own schedule.
func (jr *JobRunner) CloseExpiredQuizzes() {
	jr.runWithRecovery("CloseExpiredQuizzes", func() {
		closed, err := jr.services.Quiz.CloseExpired(context.Background())
		if err != nil {
			logger.Error("Failed to close expired quizzes", "error", err)
			return
		}
		logger.Info("Closed expired quizzes", "count", closed)
	})
}
