package directory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// ListGroups returns the user's groups with member counts, sorted by name.
func (s *Service) ListGroups(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	groups, err := s.groups.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("directory.ListGroups: %w", err)
	}
	return groups, nil
}

// GetGroup returns a group with its members ordered by full name.
func (s *Service) GetGroup(ctx context.Context, userID, id uuid.UUID) (*domain.GroupDetail, error) {
	var (
		group    *domain.Group
		contacts []*domain.Contact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		group, err = s.groups.GetByID(gctx, userID, id)
		if err != nil {
			return fmt.Errorf("get group: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		contacts, err = s.contacts.ListByGroup(gctx, userID, id, domain.ContactOrderByFullName)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("directory.GetGroup: %w", err)
	}

	return &domain.GroupDetail{Group: group, Contacts: contacts}, nil
}

// CreateGroup creates a group for the user.
func (s *Service) CreateGroup(ctx context.Context, userID uuid.UUID, input CreateGroupInput) (*domain.Group, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	icon := strings.TrimSpace(input.Icon)
	description := domain.TrimOrNil(input.Description)

	var created *domain.Group
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.groups.Create(txCtx, &domain.Group{
			ID:          uuid.New(),
			UserID:      userID,
			Icon:        icon,
			Name:        name,
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("create group: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeGroup,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"name": name, "icon": icon},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("directory.CreateGroup: %w", err)
	}

	s.log.InfoContext(ctx, "group created",
		slog.String("user_id", userID.String()),
		slog.String("group_id", created.ID.String()),
		slog.String("name", name),
	)
	return created, nil
}

// UpdateGroup applies a partial group update.
func (s *Service) UpdateGroup(ctx context.Context, userID uuid.UUID, input UpdateGroupInput) (*domain.Group, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.GroupUpdateParams{
		Icon:        trimKeepEmpty(input.Icon),
		Name:        trimKeepEmpty(input.Name),
		Description: trimKeepEmpty(input.Description),
	}

	var updated *domain.Group
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.groups.GetByID(txCtx, userID, input.ID)
		if err != nil {
			return fmt.Errorf("get group: %w", err)
		}

		updated, err = s.groups.Update(txCtx, userID, input.ID, params)
		if err != nil {
			return fmt.Errorf("update group: %w", err)
		}

		changes := buildGroupChanges(old, updated)
		if len(changes) > 0 {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeGroup,
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
		return nil, fmt.Errorf("directory.UpdateGroup: %w", err)
	}

	s.log.InfoContext(ctx, "group updated",
		slog.String("user_id", userID.String()),
		slog.String("group_id", input.ID.String()),
	)
	return updated, nil
}

// DeleteGroup removes a group. Memberships cascade; contacts stay.
func (s *Service) DeleteGroup(ctx context.Context, userID, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.groups.GetByID(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("get group: %w", err)
		}

		if err := s.groups.Delete(txCtx, userID, id); err != nil {
			return fmt.Errorf("delete group: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeGroup,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":    old.Name,
				"members": old.ContactCount,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("directory.DeleteGroup: %w", err)
	}

	s.log.InfoContext(ctx, "group deleted",
		slog.String("user_id", userID.String()),
		slog.String("group_id", id.String()),
	)
	return nil
}

// buildGroupChanges returns only changed fields for audit.
func buildGroupChanges(old, updated *domain.Group) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if old.Icon != updated.Icon {
		changes["icon"] = map[string]any{"old": old.Icon, "new": updated.Icon}
	}
	if !equalStr(old.Description, updated.Description) {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	return changes
}
