package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kvnhng/quizmint/internal/dto"
	"github.com/kvnhng/quizmint/internal/middleware"
	"github.com/kvnhng/quizmint/internal/service"
	"github.com/kvnhng/quizmint/internal/util"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizSvc service.QuizService
}

func NewQuizController(quizSvc service.QuizService) *QuizController {
	return &QuizController{quizSvc: quizSvc}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Produce AI-generated multiple-choice questions for a topic
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateQuizRequest true "Topic and optional question count (default 5)"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Topic is required"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Generation failed"
// @Router /quiz/generate [post]
func (ctrl *QuizController) GenerateQuiz(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Topic is required"})
		return
	}

	resp, err := ctrl.quizSvc.Generate(c.Request.Context(), claims.UserID, req)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Quiz generation failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate quiz"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitQuiz godoc
// @Summary Submit a completed quiz
// @Description Score the answers, persist the attempt and return AI feedback
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitQuizRequest true "Topic, questions and selected answer indices"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or answer/question length mismatch"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Storage or feedback failure"
// @Router /quiz/submit [post]
func (ctrl *QuizController) SubmitQuiz(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing fields"})
		return
	}

	resp, err := ctrl.quizSvc.Submit(c.Request.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrAnswersMismatch) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Uint("userID", claims.UserID).Msg("Quiz submission failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to submit quiz"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary Get quiz history
// @Description Return the caller's most recent attempts, newest first (max 50)
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSessionDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /quiz/history [get]
func (ctrl *QuizController) History(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	history, err := ctrl.quizSvc.History(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", claims.UserID).Msg("Failed to fetch history")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, history)
}
