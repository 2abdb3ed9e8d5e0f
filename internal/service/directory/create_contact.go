package directory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// CreateContact creates a contact and links it to the given groups.
// Every group id is checked before anything is written; one foreign or
// unknown id fails the whole operation with a ReferenceError.
func (s *Service) CreateContact(ctx context.Context, userID uuid.UUID, input CreateContactInput) (*domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	groupIDs := uniqueIDs(input.GroupIDs)
	if err := s.checkGroups(ctx, userID, groupIDs); err != nil {
		return nil, err
	}

	fullName := strings.TrimSpace(input.FullName)

	var created *domain.Contact
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.contacts.Create(txCtx, &domain.Contact{
			ID:       uuid.New(),
			UserID:   userID,
			FullName: fullName,
			Avatar:   domain.TrimOrNil(input.Avatar),
			FirstMet: input.FirstMet,
			Notes:    domain.TrimOrNil(input.Notes),
			Email:    domain.TrimOrNil(input.Email),
			Phone:    domain.TrimOrNil(input.Phone),
		})
		if err != nil {
			return fmt.Errorf("create contact: %w", err)
		}

		if len(groupIDs) > 0 {
			if err := s.groups.ReplaceMemberships(txCtx, created.ID, groupIDs); err != nil {
				return fmt.Errorf("link groups: %w", err)
			}
		}

		changes := map[string]any{"full_name": fullName}
		if len(groupIDs) > 0 {
			changes["group_ids"] = idStrings(groupIDs)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeContact,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("directory.CreateContact: %w", err)
	}

	s.log.InfoContext(ctx, "contact created",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", created.ID.String()),
		slog.Int("groups", len(groupIDs)),
	)
	return created, nil
}
