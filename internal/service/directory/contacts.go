package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// ListContacts returns all contacts of the user ordered by full name.
func (s *Service) ListContacts(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error) {
	contacts, err := s.contacts.List(ctx, userID, domain.ContactOrderByFullName)
	if err != nil {
		return nil, fmt.Errorf("directory.ListContacts: %w", err)
	}
	return contacts, nil
}

// ListContactsPage returns one page of the user's contacts with the total count.
func (s *Service) ListContactsPage(ctx context.Context, userID uuid.UUID, input ContactPageInput) (*domain.ContactPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalized()

	offset := (input.Page - 1) * input.PageSize
	contacts, total, err := s.contacts.ListPage(ctx, userID, input.OrderBy, input.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("directory.ListContactsPage: %w", err)
	}

	return &domain.ContactPage{
		Contacts: contacts,
		Total:    total,
		Page:     input.Page,
		PageSize: input.PageSize,
	}, nil
}

// GetContact returns a contact owned by the user.
func (s *Service) GetContact(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error) {
	c, err := s.contacts.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("directory.GetContact: %w", err)
	}
	return c, nil
}

// ListContactsByGroup returns the members of a group owned by the user.
// A foreign or unknown group yields a ReferenceError.
func (s *Service) ListContactsByGroup(ctx context.Context, userID, groupID uuid.UUID, orderBy domain.ContactOrderBy) ([]*domain.Contact, error) {
	if orderBy != "" && !orderBy.IsValid() {
		return nil, domain.NewValidationError("order_by", "unknown value")
	}
	if _, err := s.getGroup(ctx, userID, groupID); err != nil {
		return nil, err
	}

	contacts, err := s.contacts.ListByGroup(ctx, userID, groupID, orderBy.OrDefault())
	if err != nil {
		return nil, fmt.Errorf("directory.ListContactsByGroup: %w", err)
	}
	return contacts, nil
}

// ListContactsNotInGroup returns the user's contacts that could be added to
// the group, optionally filtered by a case-insensitive name substring.
func (s *Service) ListContactsNotInGroup(ctx context.Context, userID, groupID uuid.UUID, search string) ([]*domain.Contact, error) {
	if _, err := s.getGroup(ctx, userID, groupID); err != nil {
		return nil, err
	}

	contacts, err := s.contacts.ListNotInGroup(ctx, userID, groupID, domain.NormalizeQuery(search))
	if err != nil {
		return nil, fmt.Errorf("directory.ListContactsNotInGroup: %w", err)
	}
	return contacts, nil
}
