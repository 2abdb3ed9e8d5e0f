package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// DeleteContact removes a contact with its interactions and memberships.
func (s *Service) DeleteContact(ctx context.Context, userID, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.contacts.GetByID(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("get contact: %w", err)
		}

		if err := s.contacts.Delete(txCtx, userID, id); err != nil {
			return fmt.Errorf("delete contact: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeContact,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"full_name": old.FullName},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("directory.DeleteContact: %w", err)
	}

	s.log.InfoContext(ctx, "contact deleted",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", id.String()),
	)
	return nil
}
