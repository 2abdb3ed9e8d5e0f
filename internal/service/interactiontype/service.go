// Package interactiontype manages the interaction types a user can attach
// to interactions. Global types are shared and read-only.
package interactiontype

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

type typeRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.InteractionType, error)
	Create(ctx context.Context, t *domain.InteractionType) (*domain.InteractionType, error)
	Rename(ctx context.Context, userID, id uuid.UUID, name string) (*domain.InteractionType, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type interactionRepo interface {
	ContactIDsByType(ctx context.Context, typeID uuid.UUID) ([]uuid.UUID, error)
}

// recomputer refreshes the cached last-interaction fields of a contact.
type recomputer interface {
	Recompute(ctx context.Context, userID, contactID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements interaction type management.
type Service struct {
	log          *slog.Logger
	types        typeRepo
	interactions interactionRepo
	ledger       recomputer
	audit        auditLogger
	tx           txManager
}

// NewService creates a new interaction type service.
func NewService(
	log *slog.Logger,
	types typeRepo,
	interactions interactionRepo,
	ledger recomputer,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:          log.With("service", "interactiontype"),
		types:        types,
		interactions: interactions,
		ledger:       ledger,
		audit:        audit,
		tx:           tx,
	}
}

// List returns the user's own types and all global types, sorted by name.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*domain.InteractionType, error) {
	types, err := s.types.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("interactiontype.List: %w", err)
	}
	return types, nil
}

// Create adds a type owned by the user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.InteractionType, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	var created *domain.InteractionType
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.types.Create(txCtx, &domain.InteractionType{
			ID:     uuid.New(),
			UserID: &userID,
			Name:   name,
		})
		if err != nil {
			return fmt.Errorf("create type: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeInteractionType,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"name": name},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("interactiontype.Create: %w", err)
	}

	s.log.InfoContext(ctx, "interaction type created",
		slog.String("user_id", userID.String()),
		slog.String("type_id", created.ID.String()),
	)
	return created, nil
}

// Update renames a type owned by the user. Contacts whose cached
// last-interaction type is derived from it are refreshed in the same
// transaction. Global types yield domain.ErrNotFound.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, name string) (*domain.InteractionType, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	var (
		renamed  *domain.InteractionType
		affected []uuid.UUID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		renamed, err = s.types.Rename(txCtx, userID, id, name)
		if err != nil {
			return fmt.Errorf("rename type: %w", err)
		}

		affected, err = s.interactions.ContactIDsByType(txCtx, id)
		if err != nil {
			return fmt.Errorf("find affected contacts: %w", err)
		}
		for _, contactID := range affected {
			if err := s.ledger.Recompute(txCtx, userID, contactID); err != nil {
				return err
			}
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeInteractionType,
			EntityID:   &id,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"name": map[string]any{"new": name}},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("interactiontype.Update: %w", err)
	}

	s.log.InfoContext(ctx, "interaction type renamed",
		slog.String("user_id", userID.String()),
		slog.String("type_id", id.String()),
		slog.Int("contacts_refreshed", len(affected)),
	)
	return renamed, nil
}

// Delete removes a type owned by the user.
// Returns domain.ErrConflict while interactions still reference it.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.types.Delete(txCtx, userID, id); err != nil {
			return fmt.Errorf("delete type: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeInteractionType,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("interactiontype.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "interaction type deleted",
		slog.String("user_id", userID.String()),
		slog.String("type_id", id.String()),
	)
	return nil
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < domain.MinTypeNameLength || n > domain.MaxTypeNameLength {
		return domain.NewValidationError("name",
			fmt.Sprintf("must be between %d and %d characters", domain.MinTypeNameLength, domain.MaxTypeNameLength))
	}
	return nil
}
