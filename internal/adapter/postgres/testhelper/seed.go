package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user and its config row with default values.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:            uuid.New(),
		Email:         "u-" + suffix + "@example.com",
		Name:          "User " + suffix,
		OAuthProvider: "google",
		OAuthID:       "oauth-" + suffix,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, oauth_provider, oauth_id, subscribed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Name, user.OAuthProvider, user.OAuthID, user.Subscribed, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	cfg := domain.DefaultConfig(user.ID)
	_, err = pool.Exec(ctx,
		`INSERT INTO user_configs (user_id, reminder_emails, keep_in_touch, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		cfg.UserID, cfg.ReminderEmails, cfg.KeepInTouch, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user_configs: %v", err)
	}

	return user
}

// SeedTimezone inserts a timezone with a random id above the seeded range.
func SeedTimezone(t *testing.T, pool *pgxpool.Pool) domain.Timezone {
	t.Helper()

	tz := domain.Timezone{
		ID:        10000 + int(uuid.New().ID()%1_000_000),
		Name:      "Test/Zone-" + uniqueSuffix(),
		NameShort: "TST",
		Offset:    "+01:00",
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO timezones (id, name, name_short, utc_offset) VALUES ($1, $2, $3, $4)`,
		tz.ID, tz.Name, tz.NameShort, tz.Offset,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTimezone: %v", err)
	}
	return tz
}

// SeedContact creates a contact owned by userID with no cached interaction.
func SeedContact(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, fullName string) domain.Contact {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Contact{
		ID:        uuid.New(),
		UserID:    userID,
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO contacts (id, user_id, full_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.UserID, c.FullName, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact: %v", err)
	}
	return c
}

// SeedGroup creates a group owned by userID.
func SeedGroup(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Group {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	g := domain.Group{
		ID:        uuid.New(),
		UserID:    userID,
		Icon:      "👥",
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO groups (id, user_id, icon, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID, g.UserID, g.Icon, g.Name, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}
	return g
}

// SeedMembership adds a contact to a group.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, contactID, groupID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO contact_groups (contact_id, group_id) VALUES ($1, $2)`,
		contactID, groupID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMembership: %v", err)
	}
}

// SeedInteractionType creates an interaction type. A nil userID creates a
// global type; its name gets a unique suffix to respect the global name index.
func SeedInteractionType(t *testing.T, pool *pgxpool.Pool, userID *uuid.UUID, name string) domain.InteractionType {
	t.Helper()

	if userID == nil {
		name = name + "-" + uniqueSuffix()
	}
	it := domain.InteractionType{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO interaction_types (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		it.ID, it.UserID, it.Name, it.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInteractionType: %v", err)
	}
	return it
}

// SeedInteraction inserts an interaction directly, bypassing the ledger.
// Cached contact fields are NOT updated.
func SeedInteraction(t *testing.T, pool *pgxpool.Pool, userID, contactID uuid.UUID, typ domain.InteractionType, date time.Time, notes *string) domain.Interaction {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	it := domain.Interaction{
		ID:        uuid.New(),
		UserID:    userID,
		ContactID: contactID,
		TypeID:    typ.ID,
		Date:      date.UTC().Truncate(time.Microsecond),
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
		TypeName:  typ.Name,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO interactions (id, user_id, contact_id, type_id, date, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		it.ID, it.UserID, it.ContactID, it.TypeID, it.Date, it.Notes, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInteraction: %v", err)
	}
	return it
}
