package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Create logs a new interaction and refreshes the contact's cached fields.
// Returns a ReferenceError when the contact is not owned by userID or the
// type is neither global nor owned; nothing is written in that case.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInteractionInput) (*domain.Interaction, error) {
	input.Notes = domain.TrimOrNil(input.Notes)
	if err := input.Validate(s.maxNotesLength); err != nil {
		return nil, err
	}

	if err := s.checkContact(ctx, userID, input.ContactID); err != nil {
		return nil, err
	}
	if err := s.checkType(ctx, userID, input.TypeID); err != nil {
		return nil, err
	}

	var created *domain.Interaction
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.contacts.LockForUpdate(txCtx, userID, input.ContactID); err != nil {
			return fmt.Errorf("lock contact: %w", err)
		}

		inserted, err := s.interactions.Create(txCtx, &domain.Interaction{
			ID:        uuid.New(),
			UserID:    userID,
			ContactID: input.ContactID,
			TypeID:    input.TypeID,
			Date:      input.Date,
			Notes:     input.Notes,
		})
		if err != nil {
			return fmt.Errorf("create interaction: %w", err)
		}

		all, err := s.recompute(txCtx, input.ContactID)
		if err != nil {
			return err
		}
		created = inserted
		if fresh := findByID(all, inserted.ID); fresh != nil {
			created = fresh
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeInteraction,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"contact_id": input.ContactID.String(),
				"type_id":    input.TypeID.String(),
				"date":       input.Date,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.Create: %w", err)
	}

	s.log.InfoContext(ctx, "interaction created",
		slog.String("user_id", userID.String()),
		slog.String("interaction_id", created.ID.String()),
		slog.String("contact_id", created.ContactID.String()),
	)
	return created, nil
}
