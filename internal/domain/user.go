package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID            uuid.UUID
	Email         string
	Name          string
	AvatarURL     *string
	Subscribed    bool
	OAuthProvider string
	OAuthID       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserUpdateParams holds optional profile fields; nil = don't change.
type UserUpdateParams struct {
	Name      *string
	Email     *string
	AvatarURL *string
}

// Config holds per-user preferences.
type Config struct {
	UserID         uuid.UUID
	ReminderEmails bool
	KeepInTouch    bool
	TimezoneID     *int
	UpdatedAt      time.Time
}

// DefaultConfig returns the Config a user starts with.
func DefaultConfig(userID uuid.UUID) Config {
	return Config{
		UserID:         userID,
		ReminderEmails: true,
		KeepInTouch:    true,
	}
}

// ConfigPatch is a partial Config update; nil fields are left unchanged
// (or take the default when the config row does not exist yet).
type ConfigPatch struct {
	ReminderEmails *bool
	KeepInTouch    *bool
	TimezoneID     *int
}

// Timezone is a row of the static timezone reference table.
type Timezone struct {
	ID        int
	Name      string
	NameShort string
	Offset    string
}

// Profile is a user together with its settings.
type Profile struct {
	User     *User
	Config   *Config
	Timezone *Timezone
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
