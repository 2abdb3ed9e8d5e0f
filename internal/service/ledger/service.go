// Package ledger owns interactions and keeps each contact's cached
// last_interaction and last_interaction_type fields in step with them.
//
// Every mutation runs in one transaction that locks the contact row,
// writes the interaction, rescans the contact's interactions and stores
// the derived summary. Concurrent writes to the same contact serialize on
// the row lock.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

type interactionRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Interaction, error)
	Create(ctx context.Context, it *domain.Interaction) (*domain.Interaction, error)
	Update(ctx context.Context, userID uuid.UUID, it *domain.Interaction) (*domain.Interaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Interaction, error)
	ListByContact(ctx context.Context, contactID uuid.UUID) ([]*domain.Interaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Interaction, error)
}

type contactRepo interface {
	LockForUpdate(ctx context.Context, userID, id uuid.UUID) error
	SetLastInteraction(ctx context.Context, id uuid.UUID, date *time.Time, typeName *string) error
}

// ownershipChecker answers whether referenced entities belong to the user.
type ownershipChecker interface {
	ContactExistsForUser(ctx context.Context, contactID, userID uuid.UUID) (bool, error)
	InteractionTypeIsUsable(ctx context.Context, typeID, userID uuid.UUID) (bool, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the interaction ledger.
type Service struct {
	log            *slog.Logger
	interactions   interactionRepo
	contacts       contactRepo
	refs           ownershipChecker
	audit          auditLogger
	tx             txManager
	maxNotesLength int
}

// NewService creates a new ledger service. A non-positive maxNotesLength
// falls back to domain.MaxInteractionNotesLength.
func NewService(
	log *slog.Logger,
	interactions interactionRepo,
	contacts contactRepo,
	refs ownershipChecker,
	audit auditLogger,
	tx txManager,
	maxNotesLength int,
) *Service {
	if maxNotesLength <= 0 {
		maxNotesLength = domain.MaxInteractionNotesLength
	}
	return &Service{
		log:            log.With("service", "ledger"),
		interactions:   interactions,
		contacts:       contacts,
		refs:           refs,
		audit:          audit,
		tx:             tx,
		maxNotesLength: maxNotesLength,
	}
}

// checkType returns a ReferenceError when the type is neither global nor owned.
func (s *Service) checkType(ctx context.Context, userID, typeID uuid.UUID) error {
	ok, err := s.refs.InteractionTypeIsUsable(ctx, typeID, userID)
	if err != nil {
		return fmt.Errorf("check interaction type: %w", err)
	}
	if !ok {
		return domain.NewReferenceError(domain.EntityTypeInteractionType, typeID)
	}
	return nil
}

// checkContact returns a ReferenceError when the contact is not owned.
func (s *Service) checkContact(ctx context.Context, userID, contactID uuid.UUID) error {
	ok, err := s.refs.ContactExistsForUser(ctx, contactID, userID)
	if err != nil {
		return fmt.Errorf("check contact: %w", err)
	}
	if !ok {
		return domain.NewReferenceError(domain.EntityTypeContact, contactID)
	}
	return nil
}

// findByID picks the interaction with the given id from a rescan.
func findByID(list []*domain.Interaction, id uuid.UUID) *domain.Interaction {
	for _, it := range list {
		if it.ID == id {
			return it
		}
	}
	return nil
}
