package service

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/kvnhng/quizmint/config"
	"github.com/kvnhng/quizmint/internal/util"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// LLMClient wraps a single generative-text call: system instruction and user
// prompt in, raw text out. No retry at this layer; retry policy belongs to
// callers.
type LLMClient interface {
	Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}

type geminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(cfg *config.Config) (LLMClient, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Quiz generation will be non-functional.")
		return &geminiClient{modelName: cfg.Gemini.Model}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiClient{client: client, modelName: cfg.Gemini.Model}, nil
}

func (c *geminiClient) Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("%w: gemini client not initialized", util.ErrModelCall)
	}

	// GenerativeModel is a lightweight handle; building one per call keeps
	// the per-request system instruction off shared state.
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(0.3)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		log.Error().Err(err).Str("model", c.modelName).Msg("Gemini API call failed")
		return "", fmt.Errorf("%w: %v", util.ErrModelCall, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no candidates returned", util.ErrModelCall)
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: no text returned", util.ErrModelCall)
	}
	return text, nil
}
