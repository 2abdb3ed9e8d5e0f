// Package user implements the User, Config and Timezone repositories using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Repo provides user, config and timezone persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, COALESCE(name, ''), avatar_url, subscribed, oauth_provider, oauth_id, created_at, updated_at`

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByOAuth returns the user linked to an OAuth identity.
func (r *Repo) GetByOAuth(ctx context.Context, provider, oauthID string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE oauth_provider = $1 AND oauth_id = $2`,
		provider, oauthID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", provider+":"+oauthID)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO users (id, email, name, avatar_url, oauth_provider, oauth_id, subscribed, created_at, updated_at)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
		 RETURNING `+userColumns,
		u.ID, u.Email, u.Name, u.AvatarURL, u.OAuthProvider, u.OAuthID, u.Subscribed, u.CreatedAt, u.UpdatedAt,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// Update applies the non-nil fields of params. An empty Name or AvatarURL
// clears the column.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`UPDATE users SET
		     name       = CASE WHEN $2::text IS NULL THEN name ELSE NULLIF($2, '') END,
		     email      = COALESCE($3, email),
		     avatar_url = CASE WHEN $4::text IS NULL THEN avatar_url ELSE NULLIF($4, '') END,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, params.Name, params.Email, params.AvatarURL,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Config operations
// ---------------------------------------------------------------------------

const configColumns = `user_id, reminder_emails, keep_in_touch, timezone_id, updated_at`

// GetConfig returns the config row of a user.
func (r *Repo) GetConfig(ctx context.Context, userID uuid.UUID) (*domain.Config, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+configColumns+` FROM user_configs WHERE user_id = $1`, userID)
	c, err := scanConfig(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_config", userID)
	}
	return c, nil
}

// EnsureConfig inserts the default config row when none exists.
// Idempotent.
func (r *Repo) EnsureConfig(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	def := domain.DefaultConfig(userID)
	_, err := q.Exec(ctx,
		`INSERT INTO user_configs (user_id, reminder_emails, keep_in_touch)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO NOTHING`,
		def.UserID, def.ReminderEmails, def.KeepInTouch,
	)
	if err != nil {
		return postgres.MapError(err, "user_config", userID)
	}
	return nil
}

// UpsertConfig creates or updates the config row. Nil patch fields keep the
// stored value, or take the default on insert.
func (r *Repo) UpsertConfig(ctx context.Context, userID uuid.UUID, patch domain.ConfigPatch) (*domain.Config, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	def := domain.DefaultConfig(userID)
	row := q.QueryRow(ctx,
		`INSERT INTO user_configs (user_id, reminder_emails, keep_in_touch, timezone_id)
		 VALUES ($1, COALESCE($2, $5), COALESCE($3, $6), $4)
		 ON CONFLICT (user_id) DO UPDATE SET
		     reminder_emails = COALESCE($2, user_configs.reminder_emails),
		     keep_in_touch   = COALESCE($3, user_configs.keep_in_touch),
		     timezone_id     = COALESCE($4, user_configs.timezone_id),
		     updated_at      = now()
		 RETURNING `+configColumns,
		userID, patch.ReminderEmails, patch.KeepInTouch, patch.TimezoneID,
		def.ReminderEmails, def.KeepInTouch,
	)
	c, err := scanConfig(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_config", userID)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.AvatarURL, &u.Subscribed,
		&u.OAuthProvider, &u.OAuthID, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func scanConfig(row pgx.Row) (*domain.Config, error) {
	var c domain.Config
	if err := row.Scan(&c.UserID, &c.ReminderEmails, &c.KeepInTouch, &c.TimezoneID, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
