// Package gemini completes prompts with the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Provider sends single-turn prompts to a Gemini model.
type Provider struct {
	client    *genai.Client
	model     string
	maxTokens int32
	log       *slog.Logger
}

// NewProvider creates a Provider. baseURL overrides the API endpoint when
// not empty.
func NewProvider(ctx context.Context, apiKey, model string, maxTokens int64, baseURL string, logger *slog.Logger) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Provider{
		client:    client,
		model:     model,
		maxTokens: int32(maxTokens),
		log:       logger.With("adapter", "gemini"),
	}, nil
}

// Complete returns the text of the model's reply to prompt.
// Failures wrap domain.ErrExternalService.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	p.log.DebugContext(ctx, "gemini request", slog.String("model", p.model), slog.Int("prompt_len", len(prompt)))

	result, err := p.client.Models.GenerateContent(ctx, p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{MaxOutputTokens: p.maxTokens},
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w: %w", domain.ErrExternalService, err)
	}
	return strings.TrimSpace(result.Text()), nil
}
