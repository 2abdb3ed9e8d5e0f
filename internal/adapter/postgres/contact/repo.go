// Package contact implements the Contact repository using PostgreSQL.
// Dynamic listing and partial updates are built with squirrel; rows are
// scanned with scany.
package contact

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

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new contact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var contactColumns = []string{
	"c.id", "c.user_id", "c.full_name", "c.avatar", "c.first_met", "c.notes", "c.email", "c.phone",
	"c.last_interaction", "c.last_interaction_type", "c.created_at", "c.updated_at",
}

// contactRow mirrors the contacts table for scany.
type contactRow struct {
	ID                  uuid.UUID  `db:"id"`
	UserID              uuid.UUID  `db:"user_id"`
	FullName            string     `db:"full_name"`
	Avatar              *string    `db:"avatar"`
	FirstMet            *time.Time `db:"first_met"`
	Notes               *string    `db:"notes"`
	Email               *string    `db:"email"`
	Phone               *string    `db:"phone"`
	LastInteraction     *time.Time `db:"last_interaction"`
	LastInteractionType *string    `db:"last_interaction_type"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (r contactRow) toDomain() *domain.Contact {
	return &domain.Contact{
		ID:                  r.ID,
		UserID:              r.UserID,
		FullName:            r.FullName,
		Avatar:              r.Avatar,
		FirstMet:            r.FirstMet,
		Notes:               r.Notes,
		Email:               r.Email,
		Phone:               r.Phone,
		LastInteraction:     r.LastInteraction,
		LastInteractionType: r.LastInteractionType,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func toDomainList(rows []contactRow) []*domain.Contact {
	out := make([]*domain.Contact, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out
}

// orderClauses maps a ContactOrderBy to ORDER BY expressions.
// Every ordering ends with full name and id to keep pages stable.
func orderClauses(orderBy domain.ContactOrderBy) []string {
	switch orderBy.OrDefault() {
	case domain.ContactOrderByLastInteraction:
		return []string{"c.last_interaction DESC NULLS LAST", "c.full_name", "c.id"}
	case domain.ContactOrderByFirstMet:
		return []string{"c.first_met DESC NULLS LAST", "c.full_name", "c.id"}
	case domain.ContactOrderByCreatedAt:
		return []string{"c.created_at DESC", "c.id"}
	default:
		return []string{"c.full_name", "c.id"}
	}
}

func (r *Repo) selectContacts(ctx context.Context, b sq.SelectBuilder) ([]*domain.Contact, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contact query: %w", err)
	}

	var rows []contactRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	return toDomainList(rows), nil
}

func baseSelect(userID uuid.UUID) sq.SelectBuilder {
	return postgres.Builder.Select(contactColumns...).
		From("contacts c").
		Where(sq.Eq{"c.user_id": userID})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a contact owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error) {
	query, args, err := baseSelect(userID).Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contact query: %w", err)
	}

	var row contactRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}
	return row.toDomain(), nil
}

// Exists reports whether the contact exists and is owned by userID.
func (r *Repo) Exists(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM contacts WHERE id = $1 AND user_id = $2)`, id, userID,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "contact", id)
	}
	return exists, nil
}

// CountOwned returns how many of ids are contacts owned by userID.
// Duplicates in ids are counted once.
func (r *Repo) CountOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM contacts WHERE user_id = $1 AND id = ANY($2::uuid[])`, userID, ids,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count owned contacts: %w", err)
	}
	return n, nil
}

// LockForUpdate takes a row lock on the contact for the rest of the
// surrounding transaction. Must be called inside TxManager.RunInTx.
func (r *Repo) LockForUpdate(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var locked uuid.UUID
	err := q.QueryRow(ctx,
		`SELECT id FROM contacts WHERE id = $1 AND user_id = $2 FOR UPDATE`, id, userID,
	).Scan(&locked)
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}
	return nil
}

// List returns every contact of the user in the given order.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, orderBy domain.ContactOrderBy) ([]*domain.Contact, error) {
	return r.selectContacts(ctx, baseSelect(userID).OrderBy(orderClauses(orderBy)...))
}

// ListPage returns one page of contacts and the total number of contacts.
func (r *Repo) ListPage(ctx context.Context, userID uuid.UUID, orderBy domain.ContactOrderBy, limit, offset int) ([]*domain.Contact, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM contacts WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	contacts, err := r.selectContacts(ctx, baseSelect(userID).
		OrderBy(orderClauses(orderBy)...).
		Limit(uint64(limit)).
		Offset(uint64(offset)))
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// ListByGroup returns the members of a group.
func (r *Repo) ListByGroup(ctx context.Context, userID, groupID uuid.UUID, orderBy domain.ContactOrderBy) ([]*domain.Contact, error) {
	return r.selectContacts(ctx, baseSelect(userID).
		Join("contact_groups cg ON cg.contact_id = c.id").
		Where(sq.Eq{"cg.group_id": groupID}).
		OrderBy(orderClauses(orderBy)...))
}

// ListNotInGroup returns the user's contacts that are not members of the
// group, optionally filtered by a case-insensitive name substring.
func (r *Repo) ListNotInGroup(ctx context.Context, userID, groupID uuid.UUID, search string) ([]*domain.Contact, error) {
	b := baseSelect(userID).
		Where(sq.Expr(`NOT EXISTS (SELECT 1 FROM contact_groups cg WHERE cg.contact_id = c.id AND cg.group_id = ?)`, groupID))
	if search != "" {
		b = b.Where(sq.ILike{"c.full_name": domain.ContainsPattern(search)})
	}
	return r.selectContacts(ctx, b.OrderBy(orderClauses(domain.ContactOrderByFullName)...))
}

// Search returns contacts whose full name, phone, email or notes match the
// pattern, or that own an interaction whose notes match it.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, pattern string) ([]*domain.Contact, error) {
	b := baseSelect(userID).
		Where(sq.Or{
			sq.ILike{"c.full_name": pattern},
			sq.ILike{"c.phone": pattern},
			sq.ILike{"c.email": pattern},
			sq.ILike{"c.notes": pattern},
			sq.Expr(`EXISTS (SELECT 1 FROM interactions i WHERE i.contact_id = c.id AND i.notes ILIKE ?)`, pattern),
		}).
		OrderBy(orderClauses(domain.ContactOrderByFullName)...)
	return r.selectContacts(ctx, b)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new contact. The cached interaction fields always start empty.
func (r *Repo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	query, args, err := postgres.Builder.Insert("contacts").
		Columns("id", "user_id", "full_name", "avatar", "first_met", "notes", "email", "phone").
		Values(c.ID, c.UserID, c.FullName, c.Avatar, c.FirstMet, c.Notes, c.Email, c.Phone).
		Suffix("RETURNING id, user_id, full_name, avatar, first_met, notes, email, phone, last_interaction, last_interaction_type, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert contact: %w", err)
	}

	var row contactRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "contact", c.ID)
	}
	return row.toDomain(), nil
}

// Update applies the non-nil fields of params. Pointer to "" clears a
// nullable text column.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, userID, id)
	}

	set := map[string]any{"updated_at": sq.Expr("now()")}
	if params.FullName != nil {
		set["full_name"] = *params.FullName
	}
	if params.Avatar != nil {
		set["avatar"] = nullIfEmpty(params.Avatar)
	}
	if params.ClearFirstMet {
		set["first_met"] = nil
	} else if params.FirstMet != nil {
		set["first_met"] = *params.FirstMet
	}
	if params.Notes != nil {
		set["notes"] = nullIfEmpty(params.Notes)
	}
	if params.Email != nil {
		set["email"] = nullIfEmpty(params.Email)
	}
	if params.Phone != nil {
		set["phone"] = nullIfEmpty(params.Phone)
	}

	query, args, err := postgres.Builder.Update("contacts").
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING id, user_id, full_name, avatar, first_met, notes, email, phone, last_interaction, last_interaction_type, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update contact: %w", err)
	}

	var row contactRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}
	return row.toDomain(), nil
}

// Delete removes a contact. Interactions and memberships cascade.
// Returns domain.ErrNotFound if the contact does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetLastInteraction overwrites the cached last-interaction fields.
// Both values are nil or both are set.
func (r *Repo) SetLastInteraction(ctx context.Context, id uuid.UUID, date *time.Time, typeName *string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE contacts SET last_interaction = $2, last_interaction_type = $3 WHERE id = $1`,
		id, date, typeName,
	)
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
