// Package assistant rewrites user text with a language model. It is a paid
// feature and fails open: when the model is unavailable the caller gets
// the original text back.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// DefaultTimeout bounds a completion when no timeout is configured.
const DefaultTimeout = 20 * time.Second

// MaxTextLength caps the input text.
const MaxTextLength = 10000

// completer produces a text completion for a prompt.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service implements the AI text assistant.
type Service struct {
	log      *slog.Logger
	users    userRepo
	provider completer
	timeout  time.Duration
}

// NewService creates a new assistant service. A nil provider disables the
// model; queries then echo their input.
func NewService(log *slog.Logger, users userRepo, provider completer, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		log:      log.With("service", "assistant"),
		users:    users,
		provider: provider,
		timeout:  timeout,
	}
}

// QueryInput is one rewrite request. An empty Prompt means SUMMARY.
type QueryInput struct {
	Text   string
	Prompt domain.AIPrompt
}

func (i *QueryInput) applyDefaults() {
	if i.Prompt == "" {
		i.Prompt = domain.AIPromptSummary
	}
}

// Validate checks all fields and collects all errors.
func (i QueryInput) Validate() error {
	var errs []domain.FieldError

	if i.Prompt != "" && !i.Prompt.IsValid() {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "must be SUMMARY or SPELLING"})
	}
	if len(i.Text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", MaxTextLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Query applies the prompt to the text and returns the model's answer.
// Unsubscribed users get domain.ErrPaidFeature. Empty text is returned
// as is. Provider failures are logged and the original text is returned.
func (s *Service) Query(ctx context.Context, userID uuid.UUID, input QueryInput) (string, error) {
	input.applyDefaults()
	if err := input.Validate(); err != nil {
		return "", err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("assistant.Query: %w", err)
	}
	if !user.Subscribed {
		return "", domain.ErrPaidFeature
	}

	if strings.TrimSpace(input.Text) == "" {
		return input.Text, nil
	}
	if s.provider == nil {
		s.log.WarnContext(ctx, "assistant disabled, returning input",
			slog.String("user_id", userID.String()))
		return input.Text, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	answer, err := s.provider.Complete(callCtx, input.Prompt.Instruction()+input.Text)
	if err == nil && strings.TrimSpace(answer) == "" {
		err = fmt.Errorf("empty completion: %w", domain.ErrExternalService)
	}
	if err != nil {
		s.log.WarnContext(ctx, "ExternalServiceError",
			slog.String("user_id", userID.String()),
			slog.String("prompt", input.Prompt.String()),
			slog.Duration("elapsed", time.Since(started)),
			slog.String("error", err.Error()),
		)
		return input.Text, nil
	}

	s.log.InfoContext(ctx, "assistant query",
		slog.String("user_id", userID.String()),
		slog.String("prompt", input.Prompt.String()),
		slog.Duration("elapsed", time.Since(started)),
	)
	return answer, nil
}
