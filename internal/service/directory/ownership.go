package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// ContactExistsForUser reports whether the contact exists and is owned by userID.
func (s *Service) ContactExistsForUser(ctx context.Context, contactID, userID uuid.UUID) (bool, error) {
	ok, err := s.contacts.Exists(ctx, userID, contactID)
	if err != nil {
		return false, fmt.Errorf("directory.ContactExistsForUser: %w", err)
	}
	return ok, nil
}

// InteractionTypeIsUsable reports whether the type is global or owned by userID.
func (s *Service) InteractionTypeIsUsable(ctx context.Context, typeID, userID uuid.UUID) (bool, error) {
	_, err := s.types.GetUsable(ctx, userID, typeID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("directory.InteractionTypeIsUsable: %w", err)
	}
	return true, nil
}

// checkGroups fails with a ReferenceError unless every id is a group owned
// by userID. ids must be free of duplicates.
func (s *Service) checkGroups(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := s.groups.CountOwned(ctx, userID, ids)
	if err != nil {
		return fmt.Errorf("count owned groups: %w", err)
	}
	if n != len(ids) {
		return domain.NewReferenceError(domain.EntityTypeGroup, idList(ids))
	}
	return nil
}

// checkContacts is checkGroups for contacts.
func (s *Service) checkContacts(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := s.contacts.CountOwned(ctx, userID, ids)
	if err != nil {
		return fmt.Errorf("count owned contacts: %w", err)
	}
	if n != len(ids) {
		return domain.NewReferenceError(domain.EntityTypeContact, idList(ids))
	}
	return nil
}

// getGroup loads a group that must exist for the operation to proceed.
// A missing group is a broken reference, not a missing resource.
func (s *Service) getGroup(ctx context.Context, userID, groupID uuid.UUID) (*domain.Group, error) {
	g, err := s.groups.GetByID(ctx, userID, groupID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewReferenceError(domain.EntityTypeGroup, groupID)
	}
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	return g, nil
}

// idList renders a batch of ids for error messages.
type idList []uuid.UUID

func (l idList) String() string {
	if len(l) == 1 {
		return l[0].String()
	}
	return fmt.Sprintf("%v", idStrings(l))
}
