package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Me returns the user with config and timezone. A user without a stored
// config gets the defaults.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}

	cfg, err := s.configs.GetConfig(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		def := domain.DefaultConfig(userID)
		cfg = &def
	case err != nil:
		return nil, fmt.Errorf("user.Me: %w", err)
	}

	profile := &domain.Profile{User: user, Config: cfg}
	if cfg.TimezoneID != nil {
		tz, err := s.configs.GetTimezone(ctx, *cfg.TimezoneID)
		if err != nil {
			return nil, fmt.Errorf("user.Me: %w", err)
		}
		profile.Timezone = tz
	}
	return profile, nil
}

// Init makes sure the user has a config row and returns the profile.
// Calling it again is a no-op.
func (s *Service) Init(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if err := s.configs.EnsureConfig(ctx, userID); err != nil {
		return nil, fmt.Errorf("user.Init: %w", err)
	}
	return s.Me(ctx, userID)
}

// UpdateProfile updates the user's name and email.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	params := input.params()

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		updated, err = s.users.Update(txCtx, userID, params)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		changes := buildProfileChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &userID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}

func buildProfileChanges(old, updated *domain.User) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if old.Email != updated.Email {
		changes["email"] = map[string]any{"old": old.Email, "new": updated.Email}
	}
	return changes
}
