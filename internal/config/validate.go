package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if len(c.Auth.AllowedProviders()) == 0 {
		return fmt.Errorf("at least one OAuth provider must be configured (Google)")
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.Ledger.MaxNotesLength <= 0 || c.Ledger.MaxNotesLength > 10000 {
		return fmt.Errorf("ledger.max_notes_length must be in 1..10000 (got %d)", c.Ledger.MaxNotesLength)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *AIConfig) validate() error {
	a.Provider = strings.ToLower(strings.TrimSpace(a.Provider))

	switch a.Provider {
	case "", AIProviderNone:
		return nil
	case AIProviderAnthropic:
		if a.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required for provider %q", a.Provider)
		}
	case AIProviderGemini:
		if a.GeminiAPIKey == "" {
			return fmt.Errorf("gemini_api_key is required for provider %q", a.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", a.Provider)
	}

	if a.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", a.MaxTokens)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", r.RequestsPerMinute)
	}
	if r.AuthRequestsPerMinute <= 0 {
		return fmt.Errorf("auth_requests_per_minute must be > 0 (got %d)", r.AuthRequestsPerMinute)
	}
	if r.AIRequestsPerMinute <= 0 {
		return fmt.Errorf("ai_requests_per_minute must be > 0 (got %d)", r.AIRequestsPerMinute)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}
