package repository

import (
	"github.com/kvnhng/quizmint/internal/model"
	"gorm.io/gorm"
)

type QuizSessionRepository interface {
	// Create inserts the session as a single row; questions and answers are
	// embedded JSONB, so the write is atomic.
	Create(session *model.QuizSession) error
	// FindRecentByUser returns the user's attempts, newest first, capped at
	// limit. Never returns another user's sessions.
	FindRecentByUser(userID uint, limit int) ([]model.QuizSession, error)
}

type quizSessionRepository struct {
	db *gorm.DB
}

func NewQuizSessionRepository(db *gorm.DB) QuizSessionRepository {
	return &quizSessionRepository{db: db}
}

func (r *quizSessionRepository) Create(session *model.QuizSession) error {
	return r.db.Create(session).Error
}

func (r *quizSessionRepository) FindRecentByUser(userID uint, limit int) ([]model.QuizSession, error) {
	var sessions []model.QuizSession
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
