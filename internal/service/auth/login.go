package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/auth"
	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Login exchanges an OAuth code for a token pair. The user is looked up by
// (provider, provider id) and created with a default config on first login.
// Only the avatar is refreshed from the provider afterwards; the name
// belongs to the user.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(s.cfg.AllowedProviders()); err != nil {
		return nil, err
	}

	identity, err := s.oauth.VerifyCode(ctx, input.Provider, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.Login oauth verification: %w", err)
	}
	if identity.Provider != "" && identity.Provider != input.Provider {
		return nil, fmt.Errorf("auth.Login: identity from %q for provider %q: %w",
			identity.Provider, input.Provider, domain.ErrUnauthorized)
	}
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))

	user, err := s.users.GetByOAuth(ctx, input.Provider, identity.ProviderID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		user, err = s.register(ctx, input.Provider, identity)
		if err != nil {
			return nil, err
		}
		s.log.InfoContext(ctx, "user registered via oauth",
			slog.String("user_id", user.ID.String()),
			slog.String("provider", input.Provider))

	case err != nil:
		return nil, fmt.Errorf("auth.Login get user: %w", err)

	default:
		if avatarChanged(user, identity) {
			user, err = s.users.Update(ctx, user.ID, domain.UserUpdateParams{AvatarURL: identity.AvatarURL})
			if err != nil {
				return nil, fmt.Errorf("auth.Login update avatar: %w", err)
			}
		}
		s.log.InfoContext(ctx, "user logged in via oauth",
			slog.String("user_id", user.ID.String()),
			slog.String("provider", input.Provider))
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}
	return result, nil
}

// register creates the user and its default config in one transaction.
// A concurrent first login for the same identity resolves to the winner.
func (s *Service) register(ctx context.Context, provider string, identity *auth.OAuthIdentity) (*domain.User, error) {
	var created *domain.User

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:            uuid.New(),
			Email:         identity.Email,
			Name:          initialName(identity),
			AvatarURL:     identity.AvatarURL,
			OAuthProvider: provider,
			OAuthID:       identity.ProviderID,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if err := s.configs.EnsureConfig(txCtx, user.ID); err != nil {
			return fmt.Errorf("create config: %w", err)
		}

		created = user
		return nil
	})
	if err == nil {
		return created, nil
	}

	if errors.Is(err, domain.ErrAlreadyExists) {
		user, retryErr := s.users.GetByOAuth(ctx, provider, identity.ProviderID)
		if retryErr == nil {
			return user, nil
		}
		return nil, domain.ErrAlreadyExists
	}
	return nil, fmt.Errorf("auth.Login register user: %w", err)
}
