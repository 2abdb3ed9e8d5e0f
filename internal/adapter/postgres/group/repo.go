// Package group implements the Group repository using PostgreSQL.
// It provides CRUD operations for user-defined groups and M2M contact
// membership via the contact_groups join table.
package group

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

// GroupWithContactID is the batch result type for GetByContactIDs.
// It embeds domain.Group and adds ContactID for grouping by the caller.
type GroupWithContactID struct {
	ContactID uuid.UUID
	domain.Group
}

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type groupRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Icon         string    `db:"icon"`
	Name         string    `db:"name"`
	Description  *string   `db:"description"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	ContactCount int       `db:"contact_count"`
}

func (r groupRow) toDomain() *domain.Group {
	return &domain.Group{
		ID:           r.ID,
		UserID:       r.UserID,
		Icon:         r.Icon,
		Name:         r.Name,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		ContactCount: r.ContactCount,
	}
}

const groupReturning = `RETURNING id, user_id, icon, name, description, created_at, updated_at,
    (SELECT count(*) FROM contact_groups cg WHERE cg.group_id = groups.id)::int AS contact_count`

func selectGroups(userID uuid.UUID) sq.SelectBuilder {
	return postgres.Builder.Select(
		"g.id", "g.user_id", "g.icon", "g.name", "g.description", "g.created_at", "g.updated_at",
		"(SELECT count(*) FROM contact_groups cg WHERE cg.group_id = g.id)::int AS contact_count",
	).
		From("groups g").
		Where(sq.Eq{"g.user_id": userID})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a group owned by userID with its member count.
// Returns domain.ErrNotFound if the group does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Group, error) {
	query, args, err := selectGroups(userID).Where(sq.Eq{"g.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build group query: %w", err)
	}

	var row groupRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	return row.toDomain(), nil
}

// List returns all groups of the user with member counts, ordered by name.
// Returns an empty slice (not nil) when the user has no groups.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	query, args, err := selectGroups(userID).OrderBy("g.name", "g.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build group query: %w", err)
	}

	var rows []groupRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	groups := make([]*domain.Group, len(rows))
	for i := range rows {
		groups[i] = rows[i].toDomain()
	}
	return groups, nil
}

// CountOwned returns how many of ids are groups owned by userID.
func (r *Repo) CountOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM groups WHERE user_id = $1 AND id = ANY($2::uuid[])`, userID, ids,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count owned groups: %w", err)
	}
	return n, nil
}

// GetByContactIDs returns groups for multiple contacts (batch for DataLoader).
// Results include ContactID for grouping by the caller.
func (r *Repo) GetByContactIDs(ctx context.Context, contactIDs []uuid.UUID) ([]GroupWithContactID, error) {
	if len(contactIDs) == 0 {
		return []GroupWithContactID{}, nil
	}

	var rows []struct {
		ContactID uuid.UUID `db:"contact_id"`
		groupRow
	}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT cg.contact_id, g.id, g.user_id, g.icon, g.name, g.description, g.created_at, g.updated_at,
		        0 AS contact_count
		 FROM contact_groups cg
		 JOIN groups g ON g.id = cg.group_id
		 WHERE cg.contact_id = ANY($1::uuid[])
		 ORDER BY cg.contact_id, g.name`,
		contactIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("get groups by contact_ids: %w", err)
	}

	result := make([]GroupWithContactID, len(rows))
	for i, row := range rows {
		result[i] = GroupWithContactID{ContactID: row.ContactID, Group: *row.groupRow.toDomain()}
	}
	return result, nil
}

// CountMembersByGroupIDs returns the member count per group (batch for DataLoader).
// Groups without members are absent from the map.
func (r *Repo) CountMembersByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(groupIDs))
	if len(groupIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		GroupID uuid.UUID `db:"group_id"`
		N       int       `db:"n"`
	}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT group_id, count(*)::int AS n FROM contact_groups
		 WHERE group_id = ANY($1::uuid[])
		 GROUP BY group_id`,
		groupIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("count members by group_ids: %w", err)
	}

	for _, row := range rows {
		counts[row.GroupID] = row.N
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new group and returns the persisted domain.Group.
func (r *Repo) Create(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	var row groupRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO groups (id, user_id, icon, name, description)
		 VALUES ($1, $2, $3, $4, $5) `+groupReturning,
		g.ID, g.UserID, g.Icon, g.Name, g.Description,
	)
	if err != nil {
		return nil, postgres.MapError(err, "group", g.ID)
	}
	return row.toDomain(), nil
}

// Update modifies a group using partial update params.
// Returns domain.ErrNotFound if the group does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error) {
	set := map[string]any{"updated_at": sq.Expr("now()")}
	if params.Icon != nil {
		set["icon"] = *params.Icon
	}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Description != nil {
		if *params.Description == "" {
			// ptr("") means clear (set NULL in DB).
			set["description"] = nil
		} else {
			set["description"] = *params.Description
		}
	}

	query, args, err := postgres.Builder.Update("groups").
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(groupReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update group: %w", err)
	}

	var row groupRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	return row.toDomain(), nil
}

// Delete removes a group. CASCADE deletes contact_groups; contacts are NOT affected.
// Returns domain.ErrNotFound if the group does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM groups WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return postgres.MapError(err, "group", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddMember links a contact to a group.
// Idempotent: linking the same pair twice is NOT an error (ON CONFLICT DO NOTHING).
func (r *Repo) AddMember(ctx context.Context, contactID, groupID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO contact_groups (contact_id, group_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		contactID, groupID,
	)
	if err != nil {
		return postgres.MapError(err, "contact_group", contactID)
	}
	return nil
}

// RemoveMember removes the link between a contact and a group.
// Not an error if the link does not exist (0 rows affected is OK).
func (r *Repo) RemoveMember(ctx context.Context, contactID, groupID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM contact_groups WHERE contact_id = $1 AND group_id = $2`, contactID, groupID)
	if err != nil {
		return postgres.MapError(err, "contact_group", contactID)
	}
	return nil
}

// AddMembers links many contacts to one group.
// Returns the number of new links created (existing links are skipped).
func (r *Repo) AddMembers(ctx context.Context, groupID uuid.UUID, contactIDs []uuid.UUID) (int, error) {
	if len(contactIDs) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`INSERT INTO contact_groups (contact_id, group_id)
		 SELECT unnest($1::uuid[]), $2
		 ON CONFLICT DO NOTHING`,
		contactIDs, groupID,
	)
	if err != nil {
		return 0, postgres.MapError(err, "contact_group", groupID)
	}
	return int(tag.RowsAffected()), nil
}

// ReplaceMemberships sets the contact's groups to exactly groupIDs.
// Must be called inside a transaction.
func (r *Repo) ReplaceMemberships(ctx context.Context, contactID uuid.UUID, groupIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if groupIDs == nil {
		// a NULL array would make the NOT ANY predicate NULL and keep every row
		groupIDs = []uuid.UUID{}
	}

	if _, err := q.Exec(ctx,
		`DELETE FROM contact_groups WHERE contact_id = $1 AND NOT (group_id = ANY($2::uuid[]))`,
		contactID, groupIDs,
	); err != nil {
		return postgres.MapError(err, "contact_group", contactID)
	}

	if len(groupIDs) == 0 {
		return nil
	}

	if _, err := q.Exec(ctx,
		`INSERT INTO contact_groups (contact_id, group_id)
		 SELECT $1, unnest($2::uuid[])
		 ON CONFLICT DO NOTHING`,
		contactID, groupIDs,
	); err != nil {
		return postgres.MapError(err, "contact_group", contactID)
	}
	return nil
}
