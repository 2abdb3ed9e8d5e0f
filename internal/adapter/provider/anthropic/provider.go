// Package anthropic completes prompts with the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Provider sends single-turn prompts to Claude.
type Provider struct {
	client    sdk.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewProvider creates a Provider. Extra request options (base URL, retries)
// are mainly useful in tests.
func NewProvider(apiKey, model string, maxTokens int64, logger *slog.Logger, opts ...option.RequestOption) *Provider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Provider{
		client:    sdk.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Complete returns the text of the model's reply to prompt.
// Failures wrap domain.ErrExternalService.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	p.log.DebugContext(ctx, "anthropic request", slog.String("model", p.model), slog.Int("prompt_len", len(prompt)))

	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages.new: %w: %w", domain.ErrExternalService, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
