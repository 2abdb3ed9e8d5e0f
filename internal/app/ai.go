package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/mynetwrk-backend/internal/config"
)

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// newCompleter builds the configured text-completion provider. It returns
// a nil interface, never a typed nil, when AI is disabled.
func newCompleter(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (completer, error) {
	switch cfg.Provider {
	case config.AIProviderAnthropic:
		logger.Info("ai provider enabled", slog.String("provider", cfg.Provider), slog.String("model", cfg.AnthropicModel))
		return anthropic.NewProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.MaxTokens, logger), nil
	case config.AIProviderGemini:
		p, err := gemini.NewProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxTokens, "", logger)
		if err != nil {
			return nil, err
		}
		logger.Info("ai provider enabled", slog.String("provider", cfg.Provider), slog.String("model", cfg.GeminiModel))
		return p, nil
	case "", config.AIProviderNone:
		logger.Info("ai provider disabled")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
