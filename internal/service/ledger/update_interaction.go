package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Update replaces date, notes and type of an interaction owned by userID
// and refreshes its contact's cached fields. A foreign interaction yields
// domain.ErrNotFound before the type is checked.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, input UpdateInteractionInput) (*domain.Interaction, error) {
	input.Notes = domain.TrimOrNil(input.Notes)
	if err := input.Validate(s.maxNotesLength); err != nil {
		return nil, err
	}

	var updated *domain.Interaction
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.interactions.GetByID(txCtx, userID, input.ID)
		if err != nil {
			return fmt.Errorf("get interaction: %w", err)
		}
		if err := s.checkType(txCtx, userID, input.TypeID); err != nil {
			return err
		}
		if err := s.contacts.LockForUpdate(txCtx, userID, old.ContactID); err != nil {
			return fmt.Errorf("lock contact: %w", err)
		}

		written, err := s.interactions.Update(txCtx, userID, &domain.Interaction{
			ID:     input.ID,
			TypeID: input.TypeID,
			Date:   input.Date,
			Notes:  input.Notes,
		})
		if err != nil {
			return fmt.Errorf("update interaction: %w", err)
		}

		all, err := s.recompute(txCtx, old.ContactID)
		if err != nil {
			return err
		}
		updated = written
		if fresh := findByID(all, written.ID); fresh != nil {
			updated = fresh
		}

		if changes := buildInteractionChanges(old, updated); len(changes) > 0 {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeInteraction,
				EntityID:   &input.ID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.Update: %w", err)
	}

	s.log.InfoContext(ctx, "interaction updated",
		slog.String("user_id", userID.String()),
		slog.String("interaction_id", input.ID.String()),
	)
	return updated, nil
}

// buildInteractionChanges returns only changed fields for audit.
func buildInteractionChanges(old, updated *domain.Interaction) map[string]any {
	changes := make(map[string]any)
	if !old.Date.Equal(updated.Date) {
		changes["date"] = map[string]any{"old": old.Date, "new": updated.Date}
	}
	if old.TypeID != updated.TypeID {
		changes["type_id"] = map[string]any{"old": old.TypeID.String(), "new": updated.TypeID.String()}
	}
	if !equalNotes(old.Notes, updated.Notes) {
		changes["notes"] = map[string]any{"old": old.Notes, "new": updated.Notes}
	}
	return changes
}

func equalNotes(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
