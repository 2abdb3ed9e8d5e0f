package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// GetAll returns every interaction of the user, newest first, each with
// its contact summary and type name.
func (s *Service) GetAll(ctx context.Context, userID uuid.UUID) ([]*domain.Interaction, error) {
	list, err := s.interactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger.GetAll: %w", err)
	}
	return list, nil
}

// GetAllByContactID returns the interactions of one contact, newest first.
// A contact not owned by userID yields a ReferenceError.
func (s *Service) GetAllByContactID(ctx context.Context, userID, contactID uuid.UUID) ([]*domain.Interaction, error) {
	if err := s.checkContact(ctx, userID, contactID); err != nil {
		return nil, err
	}

	list, err := s.interactions.ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("ledger.GetAllByContactID: %w", err)
	}
	return list, nil
}
