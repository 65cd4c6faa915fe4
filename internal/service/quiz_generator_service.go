package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/kvnhng/quizmint/config"
	"github.com/kvnhng/quizmint/internal/model"
	"github.com/kvnhng/quizmint/internal/util"
	"github.com/rs/zerolog/log"
)

// QuizGenerator produces quiz questions and post-quiz feedback through the
// generative model.
type QuizGenerator interface {
	// GenerateQuiz returns exactly count validated questions, retrying on
	// transport and format failures up to the configured bound. The last
	// recorded error surfaces after exhaustion.
	GenerateQuiz(ctx context.Context, topic string, count int) ([]model.Question, error)
	// GenerateFeedback makes a single call, no retry. Any failure propagates.
	GenerateFeedback(ctx context.Context, topic string, score, total int) (string, error)
}

type quizGenerator struct {
	llm        LLMClient
	maxRetries int
}

func NewQuizGenerator(llm LLMClient, cfg *config.Config) QuizGenerator {
	retries := cfg.Gemini.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &quizGenerator{llm: llm, maxRetries: retries}
}

const quizSystemInstruction = `You are a quiz generator.

Return STRICT JSON ONLY, no explanations, no markdown, no extra text.

The JSON must be:

{
  "questions": [
    {
      "id": "string",
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctIndex": 0
    }
  ]
}

Rules:
- "questions" must contain EXACTLY %d items.
- "options" must have EXACTLY 4 strings.
- "correctIndex" must be an integer between 0 and 3.`

const feedbackSystemInstruction = `You generate short, encouraging feedback for quiz takers.

Return STRICT JSON ONLY in this shape:
{ "feedback": "string" }

- Mention the score and topic.
- Be positive and supportive.
- Give 2-3 practical tips to improve.`

type quizPayload struct {
	Questions []model.Question `json:"questions"`
}

type feedbackPayload struct {
	Feedback string `json:"feedback"`
}

func (g *quizGenerator) GenerateQuiz(ctx context.Context, topic string, count int) ([]model.Question, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic must not be empty")
	}
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}

	system := fmt.Sprintf(quizSystemInstruction, count)
	prompt := fmt.Sprintf("Generate a multiple-choice quiz about %q using simple, clear language.", topic)

	var lastErr error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		raw, err := g.llm.Generate(ctx, system, prompt)
		if err != nil {
			lastErr = err
			log.Warn().Err(err).Int("attempt", attempt+1).Str("topic", topic).Msg("Quiz generation call failed")
			continue
		}

		questions, err := parseQuizPayload(raw, count)
		if err != nil {
			lastErr = err
			log.Warn().Err(err).Int("attempt", attempt+1).Str("topic", topic).Msg("Quiz generation returned invalid payload")
			continue
		}
		return questions, nil
	}

	return nil, fmt.Errorf("quiz generation failed after %d attempts: %w", g.maxRetries+1, lastErr)
}

// parseQuizPayload parses normalized model output and enforces the full item
// shape: count questions, 4 options each, correctIndex in range. Blank item
// IDs are backfilled so every question is addressable on the client.
func parseQuizPayload(raw string, count int) ([]model.Question, error) {
	cleaned := normalizeModelJSON(raw)

	var payload quizPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrModelOutput, err)
	}

	if len(payload.Questions) != count {
		return nil, fmt.Errorf("%w: expected %d questions, got %d", util.ErrModelOutput, count, len(payload.Questions))
	}

	for i := range payload.Questions {
		q := &payload.Questions[i]
		if q.Question == "" {
			return nil, fmt.Errorf("%w: question %d has empty text", util.ErrModelOutput, i)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d options, want 4", util.ErrModelOutput, i, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			return nil, fmt.Errorf("%w: question %d correctIndex %d out of range", util.ErrModelOutput, i, q.CorrectIndex)
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
	}
	return payload.Questions, nil
}

func (g *quizGenerator) GenerateFeedback(ctx context.Context, topic string, score, total int) (string, error) {
	if total < 1 {
		return "", fmt.Errorf("total must be at least 1, got %d", total)
	}
	if score < 0 || score > total {
		return "", fmt.Errorf("score %d out of range 0..%d", score, total)
	}

	prompt := fmt.Sprintf("The user completed a quiz on %q and scored %d out of %d.", topic, score, total)

	raw, err := g.llm.Generate(ctx, feedbackSystemInstruction, prompt)
	if err != nil {
		return "", err
	}

	var payload feedbackPayload
	if err := json.Unmarshal([]byte(normalizeModelJSON(raw)), &payload); err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrModelOutput, err)
	}
	if payload.Feedback == "" {
		return "", fmt.Errorf("%w: empty feedback field", util.ErrModelOutput)
	}
	return payload.Feedback, nil
}
