package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Delete removes an interaction owned by userID, re-derives its contact's
// cached fields from the remaining set and returns the deleted row.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Interaction, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var deleted *domain.Interaction
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.interactions.GetByID(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("get interaction: %w", err)
		}
		if err := s.contacts.LockForUpdate(txCtx, userID, existing.ContactID); err != nil {
			return fmt.Errorf("lock contact: %w", err)
		}

		deleted, err = s.interactions.Delete(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("delete interaction: %w", err)
		}

		if _, err := s.recompute(txCtx, existing.ContactID); err != nil {
			return err
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeInteraction,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"contact_id": existing.ContactID.String(),
				"date":       existing.Date,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "interaction deleted",
		slog.String("user_id", userID.String()),
		slog.String("interaction_id", id.String()),
	)
	return deleted, nil
}
