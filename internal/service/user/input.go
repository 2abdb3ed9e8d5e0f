package user

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// Nil fields are left unchanged; an empty Name clears it.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Email == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.Name != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Name)) > domain.MaxUserNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", domain.MaxUserNameLength)})
	}

	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		switch {
		case email == "":
			errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
		case len(email) > domain.MaxEmailLength:
			errs = append(errs, domain.FieldError{Field: "email", Message: fmt.Sprintf("max %d characters", domain.MaxEmailLength)})
		case !domain.IsValidEmail(email):
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) params() domain.UserUpdateParams {
	var p domain.UserUpdateParams
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		p.Email = &email
	}
	return p
}

// UpdateConfigInput holds parameters for the config upsert.
// All fields are optional (nil = don't change).
type UpdateConfigInput struct {
	ReminderEmails *bool
	KeepInTouch    *bool
	TimezoneID     *int
}

// Validate validates the update config input.
func (i UpdateConfigInput) Validate() error {
	if i.TimezoneID != nil && *i.TimezoneID <= 0 {
		return domain.NewValidationError("timezone_id", "must be positive")
	}
	return nil
}
