package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// AddToGroup links a contact to a group. Both must be owned by the user.
// Adding an existing member is a no-op.
func (s *Service) AddToGroup(ctx context.Context, userID, contactID, groupID uuid.UUID) error {
	if err := s.checkPair(ctx, userID, contactID, groupID); err != nil {
		return err
	}

	if err := s.groups.AddMember(ctx, contactID, groupID); err != nil {
		return fmt.Errorf("directory.AddToGroup: %w", err)
	}

	s.log.InfoContext(ctx, "contact added to group",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", contactID.String()),
		slog.String("group_id", groupID.String()),
	)
	return nil
}

// RemoveFromGroup unlinks a contact from a group. Both must be owned by the
// user; removing a non-member is a no-op.
func (s *Service) RemoveFromGroup(ctx context.Context, userID, contactID, groupID uuid.UUID) error {
	if err := s.checkPair(ctx, userID, contactID, groupID); err != nil {
		return err
	}

	if err := s.groups.RemoveMember(ctx, contactID, groupID); err != nil {
		return fmt.Errorf("directory.RemoveFromGroup: %w", err)
	}

	s.log.InfoContext(ctx, "contact removed from group",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", contactID.String()),
		slog.String("group_id", groupID.String()),
	)
	return nil
}

// AddManyContacts links many contacts to one group. All ids are checked
// first; one foreign or unknown contact fails the whole batch.
// Returns the number of new links.
func (s *Service) AddManyContacts(ctx context.Context, userID, groupID uuid.UUID, contactIDs []uuid.UUID) (int, error) {
	if len(contactIDs) == 0 {
		return 0, domain.NewValidationError("contact_ids", "at least one contact required")
	}
	if errs := validateIDs("contact_ids", contactIDs); len(errs) > 0 {
		return 0, domain.NewValidationErrors(errs)
	}

	if _, err := s.getGroup(ctx, userID, groupID); err != nil {
		return 0, err
	}
	ids := uniqueIDs(contactIDs)
	if err := s.checkContacts(ctx, userID, ids); err != nil {
		return 0, err
	}

	var linked int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		linked, err = s.groups.AddMembers(txCtx, groupID, ids)
		if err != nil {
			return fmt.Errorf("add members: %w", err)
		}
		if linked == 0 {
			return nil
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeGroup,
			EntityID:   &groupID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"added_contacts": idStrings(ids)},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("directory.AddManyContacts: %w", err)
	}

	s.log.InfoContext(ctx, "contacts added to group",
		slog.String("user_id", userID.String()),
		slog.String("group_id", groupID.String()),
		slog.Int("requested", len(ids)),
		slog.Int("linked", linked),
	)
	return linked, nil
}

// checkPair verifies ownership of a contact and a group.
func (s *Service) checkPair(ctx context.Context, userID, contactID, groupID uuid.UUID) error {
	ok, err := s.contacts.Exists(ctx, userID, contactID)
	if err != nil {
		return fmt.Errorf("check contact: %w", err)
	}
	if !ok {
		return domain.NewReferenceError(domain.EntityTypeContact, contactID)
	}
	_, err = s.getGroup(ctx, userID, groupID)
	return err
}
