// Package interaction implements the Interaction repository using PostgreSQL.
// Reads always join the interaction type name; user-wide listings also join
// a contact summary.
package interaction

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Repo provides interaction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new interaction repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type interactionRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ContactID uuid.UUID `db:"contact_id"`
	TypeID    uuid.UUID `db:"type_id"`
	Date      time.Time `db:"date"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	TypeName  string    `db:"type_name"`

	// Present only in user-wide listings.
	ContactName   *string `db:"contact_name"`
	ContactAvatar *string `db:"contact_avatar"`
}

func (r interactionRow) toDomain() *domain.Interaction {
	it := &domain.Interaction{
		ID:        r.ID,
		UserID:    r.UserID,
		ContactID: r.ContactID,
		TypeID:    r.TypeID,
		Date:      r.Date,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		TypeName:  r.TypeName,
	}
	if r.ContactName != nil {
		it.Contact = &domain.ContactSummary{ID: r.ContactID, FullName: *r.ContactName, Avatar: r.ContactAvatar}
	}
	return it
}

func toDomainList(rows []interactionRow) []*domain.Interaction {
	out := make([]*domain.Interaction, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out
}

var interactionColumns = []string{
	"i.id", "i.user_id", "i.contact_id", "i.type_id", "i.date", "i.notes", "i.created_at", "i.updated_at",
	"t.name AS type_name",
}

func withType() sq.SelectBuilder {
	return postgres.Builder.Select(interactionColumns...).
		From("interactions i").
		Join("interaction_types t ON t.id = i.type_id")
}

func withContact() sq.SelectBuilder {
	return withType().
		Columns("c.full_name AS contact_name", "c.avatar AS contact_avatar").
		Join("contacts c ON c.id = i.contact_id")
}

// newestFirst orders by date, then creation time, then id, all descending.
var newestFirst = []string{"i.date DESC", "i.created_at DESC", "i.id DESC"}

func (r *Repo) selectMany(ctx context.Context, b sq.SelectBuilder) ([]*domain.Interaction, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build interaction query: %w", err)
	}

	var rows []interactionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select interactions: %w", err)
	}
	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an interaction owned by userID with its type name.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Interaction, error) {
	query, args, err := withType().Where(sq.Eq{"i.id": id, "i.user_id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build interaction query: %w", err)
	}

	var row interactionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "interaction", id)
	}
	return row.toDomain(), nil
}

// ListByContact returns every interaction of a contact, newest first.
// This is the full rescan the ledger derives cached fields from.
func (r *Repo) ListByContact(ctx context.Context, contactID uuid.UUID) ([]*domain.Interaction, error) {
	return r.selectMany(ctx, withType().
		Where(sq.Eq{"i.contact_id": contactID}).
		OrderBy(newestFirst...))
}

// ListByUser returns every interaction of the user with contact summaries, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Interaction, error) {
	return r.selectMany(ctx, withContact().
		Where(sq.Eq{"i.user_id": userID}).
		OrderBy(newestFirst...))
}

// SearchNotes returns the user's interactions whose notes match the ILIKE pattern.
func (r *Repo) SearchNotes(ctx context.Context, userID uuid.UUID, pattern string) ([]*domain.Interaction, error) {
	return r.selectMany(ctx, withType().
		Where(sq.Eq{"i.user_id": userID}).
		Where(sq.ILike{"i.notes": pattern}).
		OrderBy(newestFirst...))
}

// ContactIDsByType returns the distinct contacts that have at least one
// interaction of the given type.
func (r *Repo) ContactIDsByType(ctx context.Context, typeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids,
		`SELECT DISTINCT contact_id FROM interactions WHERE type_id = $1 ORDER BY contact_id`, typeID)
	if err != nil {
		return nil, fmt.Errorf("contact ids by type: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an interaction. TypeName is not filled; the caller
// already knows it.
func (r *Repo) Create(ctx context.Context, it *domain.Interaction) (*domain.Interaction, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created := *it
	err := q.QueryRow(ctx,
		`INSERT INTO interactions (id, user_id, contact_id, type_id, date, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		it.ID, it.UserID, it.ContactID, it.TypeID, it.Date, it.Notes,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "interaction", it.ID)
	}
	return &created, nil
}

// Update overwrites date, notes and type of an interaction owned by userID.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, it *domain.Interaction) (*domain.Interaction, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	updated := *it
	err := q.QueryRow(ctx,
		`UPDATE interactions SET date = $3, notes = $4, type_id = $5, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING contact_id, created_at, updated_at`,
		it.ID, userID, it.Date, it.Notes, it.TypeID,
	).Scan(&updated.ContactID, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "interaction", it.ID)
	}
	updated.UserID = userID
	return &updated, nil
}

// Delete removes an interaction owned by userID and returns the deleted row.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Interaction, error) {
	var row interactionRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`WITH deleted AS (
		     DELETE FROM interactions WHERE id = $1 AND user_id = $2
		     RETURNING id, user_id, contact_id, type_id, date, notes, created_at, updated_at
		 )
		 SELECT d.id, d.user_id, d.contact_id, d.type_id, d.date, d.notes, d.created_at, d.updated_at,
		        t.name AS type_name
		 FROM deleted d
		 JOIN interaction_types t ON t.id = d.type_id`,
		id, userID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "interaction", id)
	}
	return row.toDomain(), nil
}
