// Package directory manages contacts, groups and the membership between
// them. It also answers the ownership questions other services ask before
// they reference a contact or an interaction type.
package directory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

type contactRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error)
	Exists(ctx context.Context, userID, id uuid.UUID) (bool, error)
	CountOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
	List(ctx context.Context, userID uuid.UUID, orderBy domain.ContactOrderBy) ([]*domain.Contact, error)
	ListPage(ctx context.Context, userID uuid.UUID, orderBy domain.ContactOrderBy, limit, offset int) ([]*domain.Contact, int, error)
	ListByGroup(ctx context.Context, userID, groupID uuid.UUID, orderBy domain.ContactOrderBy) ([]*domain.Contact, error)
	ListNotInGroup(ctx context.Context, userID, groupID uuid.UUID, search string) ([]*domain.Contact, error)
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	Update(ctx context.Context, userID, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type groupRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Group, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error)
	CountOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
	Create(ctx context.Context, g *domain.Group) (*domain.Group, error)
	Update(ctx context.Context, userID, id uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	AddMember(ctx context.Context, contactID, groupID uuid.UUID) error
	RemoveMember(ctx context.Context, contactID, groupID uuid.UUID) error
	AddMembers(ctx context.Context, groupID uuid.UUID, contactIDs []uuid.UUID) (int, error)
	ReplaceMemberships(ctx context.Context, contactID uuid.UUID, groupIDs []uuid.UUID) error
}

type interactionTypeRepo interface {
	GetUsable(ctx context.Context, userID, id uuid.UUID) (*domain.InteractionType, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Page size bounds for paginated contact listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxBatchSize    = 200
)

// Service implements contact and group management.
type Service struct {
	log      *slog.Logger
	contacts contactRepo
	groups   groupRepo
	types    interactionTypeRepo
	audit    auditLogger
	tx       txManager
}

// NewService creates a new directory service.
func NewService(
	log *slog.Logger,
	contacts contactRepo,
	groups groupRepo,
	types interactionTypeRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:      log.With("service", "directory"),
		contacts: contacts,
		groups:   groups,
		types:    types,
		audit:    audit,
		tx:       tx,
	}
}

// uniqueIDs drops duplicates, keeping the first occurrence.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func equalStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
