// Package interactiontype implements the InteractionType repository using PostgreSQL.
// Types with a NULL user_id are global and visible to every user.
package interactiontype

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// interactionTypeFK is the constraint name on interactions.type_id.
const interactionTypeFK = "interactions_type_fk"

// Repo provides interaction type persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new interaction type repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type typeRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    *uuid.UUID `db:"user_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r typeRow) toDomain() *domain.InteractionType {
	return &domain.InteractionType{ID: r.ID, UserID: r.UserID, Name: r.Name, CreatedAt: r.CreatedAt}
}

const typeColumns = `id, user_id, name, created_at`

// GetUsable returns the type when it is global or owned by userID.
// Returns domain.ErrNotFound otherwise.
func (r *Repo) GetUsable(ctx context.Context, userID, id uuid.UUID) (*domain.InteractionType, error) {
	var row typeRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+typeColumns+` FROM interaction_types
		 WHERE id = $1 AND (user_id IS NULL OR user_id = $2)`,
		id, userID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "interaction_type", id)
	}
	return row.toDomain(), nil
}

// List returns the user's own types plus all global types, ordered by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.InteractionType, error) {
	var rows []typeRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+typeColumns+` FROM interaction_types
		 WHERE user_id IS NULL OR user_id = $1
		 ORDER BY name, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list interaction types: %w", err)
	}

	types := make([]*domain.InteractionType, len(rows))
	for i := range rows {
		types[i] = rows[i].toDomain()
	}
	return types, nil
}

// Create inserts a type owned by t.UserID.
func (r *Repo) Create(ctx context.Context, t *domain.InteractionType) (*domain.InteractionType, error) {
	var row typeRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO interaction_types (id, user_id, name) VALUES ($1, $2, $3) RETURNING `+typeColumns,
		t.ID, t.UserID, t.Name,
	)
	if err != nil {
		return nil, postgres.MapError(err, "interaction_type", t.ID)
	}
	return row.toDomain(), nil
}

// Rename changes the name of a type owned by userID.
// Global types and foreign types yield domain.ErrNotFound.
func (r *Repo) Rename(ctx context.Context, userID, id uuid.UUID, name string) (*domain.InteractionType, error) {
	var row typeRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE interaction_types SET name = $3 WHERE id = $1 AND user_id = $2 RETURNING `+typeColumns,
		id, userID, name,
	)
	if err != nil {
		return nil, postgres.MapError(err, "interaction_type", id)
	}
	return row.toDomain(), nil
}

// Delete removes a type owned by userID.
// Returns domain.ErrConflict while interactions still reference it.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM interaction_types WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		if postgres.IsForeignKeyViolation(err, interactionTypeFK) {
			return fmt.Errorf("interaction_type %s: %w", id, domain.ErrConflict)
		}
		return postgres.MapError(err, "interaction_type", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("interaction_type %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// EnsureGlobal inserts the named global types that do not exist yet.
// Returns the number of types created.
func (r *Repo) EnsureGlobal(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`INSERT INTO interaction_types (name)
		 SELECT unnest($1::text[])
		 ON CONFLICT (name) WHERE user_id IS NULL DO NOTHING`,
		names,
	)
	if err != nil {
		return 0, postgres.MapError(err, "interaction_type", "global")
	}
	return int(tag.RowsAffected()), nil
}
