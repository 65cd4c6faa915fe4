package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/kvnhng/quizmint/internal/dto"
	"github.com/kvnhng/quizmint/internal/model"
	"github.com/kvnhng/quizmint/internal/repository"
	"github.com/kvnhng/quizmint/internal/util"
	"github.com/rs/zerolog/log"
)

// DefaultHistoryLimit bounds the history page size.
const DefaultHistoryLimit = 50

// QuizService orchestrates the quiz lifecycle: generation, submission
// (score, persist, feedback) and history retrieval.
type QuizService interface {
	Generate(ctx context.Context, userID uint, req dto.GenerateQuizRequest) (*dto.QuizResponse, error)
	Submit(ctx context.Context, userID uint, req dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	History(ctx context.Context, userID uint) ([]dto.QuizSessionDTO, error)
}

type quizService struct {
	generator QuizGenerator
	sessions  repository.QuizSessionRepository
}

func NewQuizService(generator QuizGenerator, sessions repository.QuizSessionRepository) QuizService {
	return &quizService{generator: generator, sessions: sessions}
}

func (s *quizService) Generate(ctx context.Context, userID uint, req dto.GenerateQuizRequest) (*dto.QuizResponse, error) {
	count := req.Count
	if count < 1 {
		count = 5
	}

	questions, err := s.generator.GenerateQuiz(ctx, req.Topic, count)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("topic", req.Topic).Msg("Failed to generate quiz")
		return nil, err
	}

	var resp dto.QuizResponse
	if err := copier.Copy(&resp.Questions, &questions); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) Submit(ctx context.Context, userID uint, req dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if len(req.Answers) != len(req.Questions) {
		return nil, util.ErrAnswersMismatch
	}

	var questions []model.Question
	if err := copier.Copy(&questions, &req.Questions); err != nil {
		return nil, fmt.Errorf("error reading submitted questions: %w", err)
	}

	score := ScoreAnswers(questions, req.Answers)

	session := &model.QuizSession{
		UserID:    userID,
		Topic:     req.Topic,
		Questions: questions,
		Answers:   req.Answers,
		Score:     score,
	}
	if err := s.sessions.Create(session); err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("topic", req.Topic).Msg("Failed to persist quiz session")
		return nil, fmt.Errorf("error saving quiz session: %w", err)
	}

	feedback, err := s.generator.GenerateFeedback(ctx, req.Topic, score, len(questions))
	if err != nil {
		log.Error().Err(err).Uint("sessionID", session.ID).Msg("Failed to generate feedback")
		return nil, err
	}

	return &dto.SubmitQuizResponse{
		Score:     score,
		Total:     len(questions),
		Feedback:  feedback,
		SessionID: session.ID,
	}, nil
}

func (s *quizService) History(ctx context.Context, userID uint) ([]dto.QuizSessionDTO, error) {
	sessions, err := s.sessions.FindRecentByUser(userID, DefaultHistoryLimit)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to fetch quiz history")
		return nil, fmt.Errorf("error fetching history: %w", err)
	}

	dtos := make([]dto.QuizSessionDTO, 0, len(sessions))
	for _, sess := range sessions {
		var entry dto.QuizSessionDTO
		if err := copier.Copy(&entry, &sess); err != nil {
			return nil, fmt.Errorf("error preparing history response: %w", err)
		}
		dtos = append(dtos, entry)
	}
	return dtos, nil
}
