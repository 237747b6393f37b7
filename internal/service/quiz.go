package service

import (
	"context"
	"time"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/repository"
)

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) ListQuizzes(ctx context.Context, status string) ([]domain.Quiz, error) {
	return s.quizRepo.List(ctx, status)
}

func (s *quizService) CloseExpired(ctx context.Context) (int64, error) {
	return s.quizRepo.CloseExpired(ctx, time.Now())
}
