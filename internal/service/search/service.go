// Package search implements free-text search over a user's contacts and
// interaction notes.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

type contactRepo interface {
	Search(ctx context.Context, userID uuid.UUID, pattern string) ([]*domain.Contact, error)
}

type interactionRepo interface {
	SearchNotes(ctx context.Context, userID uuid.UUID, pattern string) ([]*domain.Interaction, error)
}

// Service implements contact search.
type Service struct {
	log          *slog.Logger
	contacts     contactRepo
	interactions interactionRepo
}

// NewService creates a new search service.
func NewService(log *slog.Logger, contacts contactRepo, interactions interactionRepo) *Service {
	return &Service{
		log:          log.With("service", "search"),
		contacts:     contacts,
		interactions: interactions,
	}
}

// Search returns the user's contacts matching query case-insensitively in
// full name, phone, email or notes, or through the notes of one of their
// interactions. Each match carries only the interactions whose own notes
// match. Only surrounding whitespace is trimmed; inner whitespace must match
// exactly. An empty query returns an empty result without touching the store.
func (s *Service) Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.ContactMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.ContactMatch{}, nil
	}
	pattern := domain.ContainsPattern(query)

	var (
		contacts []*domain.Contact
		notes    []*domain.Interaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = s.contacts.Search(gctx, userID, pattern)
		if err != nil {
			return fmt.Errorf("search contacts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		notes, err = s.interactions.SearchNotes(gctx, userID, pattern)
		if err != nil {
			return fmt.Errorf("search interaction notes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search.Search: %w", err)
	}

	byContact := make(map[uuid.UUID][]*domain.Interaction, len(notes))
	for _, it := range notes {
		byContact[it.ContactID] = append(byContact[it.ContactID], it)
	}

	matches := make([]domain.ContactMatch, len(contacts))
	for i, c := range contacts {
		its := byContact[c.ID]
		if its == nil {
			its = []*domain.Interaction{}
		}
		matches[i] = domain.ContactMatch{Contact: c, Interactions: its}
	}

	s.log.DebugContext(ctx, "search",
		slog.String("user_id", userID.String()),
		slog.Int("contacts", len(matches)),
		slog.Int("interactions", len(notes)),
	)
	return matches, nil
}
