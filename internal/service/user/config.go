package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// timezoneRef renders a timezone id inside a ReferenceError.
type timezoneRef int

func (r timezoneRef) String() string { return strconv.Itoa(int(r)) }

// UpdateConfig creates or patches the user's config.
// An unknown timezone yields a ReferenceError and nothing is written.
func (s *Service) UpdateConfig(ctx context.Context, userID uuid.UUID, input UpdateConfigInput) (*domain.Config, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.TimezoneID != nil {
		_, err := s.configs.GetTimezone(ctx, *input.TimezoneID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewReferenceError(domain.EntityTypeTimezone, timezoneRef(*input.TimezoneID))
		}
		if err != nil {
			return nil, fmt.Errorf("user.UpdateConfig: %w", err)
		}
	}

	patch := domain.ConfigPatch{
		ReminderEmails: input.ReminderEmails,
		KeepInTouch:    input.KeepInTouch,
		TimezoneID:     input.TimezoneID,
	}

	var updated *domain.Config
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.configs.UpsertConfig(txCtx, userID, patch)
		if err != nil {
			return fmt.Errorf("upsert config: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &userID,
			Action:     domain.AuditActionUpdate,
			Changes:    buildConfigChanges(input),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateConfig: %w", err)
	}

	s.log.InfoContext(ctx, "config updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}

// ListTimezones returns the timezone reference table.
func (s *Service) ListTimezones(ctx context.Context) ([]*domain.Timezone, error) {
	zones, err := s.configs.ListTimezones(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListTimezones: %w", err)
	}
	return zones, nil
}

func buildConfigChanges(input UpdateConfigInput) map[string]any {
	changes := make(map[string]any)
	if input.ReminderEmails != nil {
		changes["reminder_emails"] = *input.ReminderEmails
	}
	if input.KeepInTouch != nil {
		changes["keep_in_touch"] = *input.KeepInTouch
	}
	if input.TimezoneID != nil {
		changes["timezone_id"] = *input.TimezoneID
	}
	return changes
}
