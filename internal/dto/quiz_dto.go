package dto

import "time"

// QuestionDTO mirrors the wire shape the generator is instructed to produce.
type QuestionDTO struct {
	ID           string   `json:"id"`
	Question     string   `json:"question" binding:"required"`
	Options      []string `json:"options" binding:"required,len=4"`
	CorrectIndex int      `json:"correctIndex" binding:"min=0,max=3"`
}

type GenerateQuizRequest struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count"` // defaults to 5 when omitted
}

type QuizResponse struct {
	Questions []QuestionDTO `json:"questions"`
}

type SubmitQuizRequest struct {
	Topic     string        `json:"topic" binding:"required"`
	Questions []QuestionDTO `json:"questions" binding:"required,min=1,dive"`
	Answers   []int         `json:"answers" binding:"required"`
}

type SubmitQuizResponse struct {
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	Feedback  string `json:"feedback"`
	SessionID uint   `json:"sessionId"`
}

// QuizSessionDTO is one history entry: a fully answered, scored attempt.
type QuizSessionDTO struct {
	ID        uint          `json:"id"`
	Topic     string        `json:"topic"`
	Questions []QuestionDTO `json:"questions"`
	Answers   []int         `json:"answers"`
	Score     int           `json:"score"`
	CreatedAt time.Time     `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
