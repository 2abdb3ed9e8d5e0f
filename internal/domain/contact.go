package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits shared by validation and the database CHECK constraints.
const (
	MaxContactNameLength  = 50
	MaxContactNotesLength = 1500
	MaxAvatarLength       = 10000
	MaxEmailLength        = 50
	MaxPhoneLength        = 30
	MaxGroupNameLength    = 20
	MaxGroupIconLength    = 16
	MaxGroupDescLength    = 250
	MinTypeNameLength     = 3
	MaxTypeNameLength     = 25
	MaxUserNameLength     = 20
)

// Contact is a person tracked by a user.
// LastInteraction and LastInteractionType are maintained by the ledger only.
type Contact struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	FullName            string
	Avatar              *string
	FirstMet            *time.Time
	Notes               *string
	Email               *string
	Phone               *string
	LastInteraction     *time.Time
	LastInteractionType *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ContactUpdateParams holds optional fields for a contact update.
// nil = don't change; pointer to "" = clear.
type ContactUpdateParams struct {
	FullName *string
	Avatar   *string
	FirstMet *time.Time
	Notes    *string
	Email    *string
	Phone    *string

	ClearFirstMet bool // sets first_met to NULL; wins over FirstMet
}

// IsEmpty reports whether no column would change.
func (p ContactUpdateParams) IsEmpty() bool {
	return p.FullName == nil && p.Avatar == nil && p.FirstMet == nil &&
		p.Notes == nil && p.Email == nil && p.Phone == nil && !p.ClearFirstMet
}

// ContactSummary is the slice of a contact embedded in interaction listings.
type ContactSummary struct {
	ID       uuid.UUID
	FullName string
	Avatar   *string
}

// ContactPage is one page of a paginated contact listing.
type ContactPage struct {
	Contacts []*Contact
	Total    int
	Page     int
	PageSize int
}

// ContactMatch is a search hit: the contact and those of its interactions
// whose notes matched the query.
type ContactMatch struct {
	Contact      *Contact
	Interactions []*Interaction
}
