package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// UpdateContact applies a partial update. When GroupIDs is set the contact's
// memberships are replaced by exactly that set, validated before any write.
func (s *Service) UpdateContact(ctx context.Context, userID uuid.UUID, input UpdateContactInput) (*domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var groupIDs []uuid.UUID
	if input.GroupIDs != nil {
		groupIDs = uniqueIDs(*input.GroupIDs)
		if err := s.checkGroups(ctx, userID, groupIDs); err != nil {
			return nil, err
		}
	}

	params := input.params()

	var updated *domain.Contact
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.contacts.GetByID(txCtx, userID, input.ID)
		if err != nil {
			return fmt.Errorf("get contact: %w", err)
		}

		updated, err = s.contacts.Update(txCtx, userID, input.ID, params)
		if err != nil {
			return fmt.Errorf("update contact: %w", err)
		}

		if input.GroupIDs != nil {
			if err := s.groups.ReplaceMemberships(txCtx, input.ID, groupIDs); err != nil {
				return fmt.Errorf("replace groups: %w", err)
			}
		}

		changes := buildContactChanges(old, updated)
		if input.GroupIDs != nil {
			changes["group_ids"] = idStrings(groupIDs)
		}
		if len(changes) > 0 {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeContact,
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
		return nil, fmt.Errorf("directory.UpdateContact: %w", err)
	}

	s.log.InfoContext(ctx, "contact updated",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", input.ID.String()),
	)
	return updated, nil
}

// buildContactChanges returns only changed fields for audit.
// Avatars are reported as changed without their content.
func buildContactChanges(old, updated *domain.Contact) map[string]any {
	changes := make(map[string]any)
	if old.FullName != updated.FullName {
		changes["full_name"] = map[string]any{"old": old.FullName, "new": updated.FullName}
	}
	diffText(changes, "notes", old.Notes, updated.Notes)
	diffText(changes, "email", old.Email, updated.Email)
	diffText(changes, "phone", old.Phone, updated.Phone)
	if !equalStr(old.Avatar, updated.Avatar) {
		changes["avatar"] = map[string]any{"changed": true}
	}
	if !equalTime(old.FirstMet, updated.FirstMet) {
		changes["first_met"] = map[string]any{"old": old.FirstMet, "new": updated.FirstMet}
	}
	return changes
}

func diffText(changes map[string]any, field string, old, updated *string) {
	if !equalStr(old, updated) {
		changes[field] = map[string]any{"old": old, "new": updated}
	}
}
