package domain

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// MaxInteractionNotesLength is the default limit for interaction notes.
const MaxInteractionNotesLength = 250

// InteractionType classifies interactions. A nil UserID marks a global type
// shared by every user.
type InteractionType struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Name      string
	CreatedAt time.Time
}

// IsGlobal reports whether the type is shared across all users.
func (t *InteractionType) IsGlobal() bool {
	return t.UserID == nil
}

// UsableBy reports whether userID may attach this type to an interaction.
func (t *InteractionType) UsableBy(userID uuid.UUID) bool {
	return t.UserID == nil || *t.UserID == userID
}

// Interaction is a single logged contact with a person.
type Interaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ContactID uuid.UUID
	TypeID    uuid.UUID
	Date      time.Time
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined on read.
	TypeName string
	Contact  *ContactSummary
}

// LastInteraction is the cached summary stored on a contact.
type LastInteraction struct {
	Date     time.Time
	TypeName string
}

// DeriveLastInteraction selects the interaction with the greatest Date and
// returns its date and type name, or nil for an empty set.
//
// Equal dates are ordered by CreatedAt, then by the greater UUID bytes, so
// the result does not depend on the order of the input.
func DeriveLastInteraction(interactions []*Interaction) *LastInteraction {
	var latest *Interaction
	for _, it := range interactions {
		if it == nil {
			continue
		}
		if latest == nil || after(it, latest) {
			latest = it
		}
	}
	if latest == nil {
		return nil
	}
	return &LastInteraction{Date: latest.Date, TypeName: latest.TypeName}
}

func after(a, b *Interaction) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) > 0
}

// Fields splits the summary into the two nullable contact columns.
func (l *LastInteraction) Fields() (*time.Time, *string) {
	if l == nil {
		return nil, nil
	}
	date, name := l.Date, l.TypeName
	return &date, &name
}
