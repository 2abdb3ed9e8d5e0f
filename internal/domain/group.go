package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a user-defined set of contacts.
type Group struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Icon         string
	Name         string
	Description  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ContactCount int // computed field, not stored in DB
}

// GroupUpdateParams holds optional fields for a group update.
type GroupUpdateParams struct {
	Icon        *string
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
}

// GroupDetail is a group together with its member contacts.
type GroupDetail struct {
	Group    *Group
	Contacts []*Contact
}
