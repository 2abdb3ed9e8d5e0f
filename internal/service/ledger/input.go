package ledger

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// CreateInteractionInput holds the parameters for logging an interaction.
type CreateInteractionInput struct {
	ContactID uuid.UUID
	TypeID    uuid.UUID
	Date      time.Time
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i CreateInteractionInput) Validate(maxNotes int) error {
	var errs []domain.FieldError

	if i.ContactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contact_id", Message: "required"})
	}
	errs = append(errs, validateCommon(i.TypeID, i.Date, i.Notes, maxNotes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInteractionInput replaces date, notes and type of an interaction.
// The contact of an interaction never changes.
type UpdateInteractionInput struct {
	ID     uuid.UUID
	TypeID uuid.UUID
	Date   time.Time
	Notes  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInteractionInput) Validate(maxNotes int) error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateCommon(i.TypeID, i.Date, i.Notes, maxNotes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateCommon(typeID uuid.UUID, date time.Time, notes *string, maxNotes int) []domain.FieldError {
	var errs []domain.FieldError
	if typeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "required"})
	}
	if date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if notes != nil && utf8.RuneCountInString(*notes) > maxNotes {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", maxNotes)})
	}
	return errs
}
