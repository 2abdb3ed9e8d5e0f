package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Recompute re-derives the cached last-interaction fields of a contact
// owned by userID. It joins the caller's transaction when there is one.
func (s *Service) Recompute(ctx context.Context, userID, contactID uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.contacts.LockForUpdate(txCtx, userID, contactID); err != nil {
			return fmt.Errorf("lock contact: %w", err)
		}
		_, err := s.recompute(txCtx, contactID)
		return err
	})
	if err != nil {
		return fmt.Errorf("ledger.Recompute: %w", err)
	}
	return nil
}

// recompute rescans the contact's interactions and stores the summary.
// The caller must hold the contact row lock. Returns the rescanned set.
func (s *Service) recompute(ctx context.Context, contactID uuid.UUID) ([]*domain.Interaction, error) {
	all, err := s.interactions.ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("rescan interactions: %w", err)
	}

	last := domain.DeriveLastInteraction(all)
	date, typeName := last.Fields()
	if err := s.contacts.SetLastInteraction(ctx, contactID, date, typeName); err != nil {
		return nil, fmt.Errorf("set last interaction: %w", err)
	}

	s.log.DebugContext(ctx, "last interaction recomputed",
		slog.String("contact_id", contactID.String()),
		slog.Int("interactions", len(all)),
	)
	return all, nil
}
