package directory

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// CreateContactInput holds the parameters for creating a contact.
type CreateContactInput struct {
	FullName string
	FirstMet *time.Time
	Avatar   *string
	Notes    *string
	Email    *string
	Phone    *string
	GroupIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateContactInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateFullName(i.FullName)...)
	errs = append(errs, validateContactFields(i.Avatar, i.Notes, i.Email, i.Phone)...)
	errs = append(errs, validateIDs("group_ids", i.GroupIDs)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateContactInput holds a partial contact update.
// Text fields: nil = don't change; pointer to "" = clear.
// GroupIDs: nil = don't change; non-nil replaces the memberships.
type UpdateContactInput struct {
	ID            uuid.UUID
	FullName      *string
	FirstMet      *time.Time
	ClearFirstMet bool
	Avatar        *string
	Notes         *string
	Email         *string
	Phone         *string
	GroupIDs      *[]uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateContactInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.FullName != nil {
		errs = append(errs, validateFullName(*i.FullName)...)
	}
	errs = append(errs, validateContactFields(i.Avatar, i.Notes, i.Email, i.Phone)...)
	if i.GroupIDs != nil {
		errs = append(errs, validateIDs("group_ids", *i.GroupIDs)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateContactInput) params() domain.ContactUpdateParams {
	p := domain.ContactUpdateParams{
		FirstMet:      i.FirstMet,
		ClearFirstMet: i.ClearFirstMet,
		Avatar:        trimKeepEmpty(i.Avatar),
		Notes:         trimKeepEmpty(i.Notes),
		Email:         trimKeepEmpty(i.Email),
		Phone:         trimKeepEmpty(i.Phone),
	}
	if i.FullName != nil {
		name := strings.TrimSpace(*i.FullName)
		p.FullName = &name
	}
	return p
}

// ContactPageInput selects one page of the contact listing. Page is 1-based.
type ContactPageInput struct {
	Page     int
	PageSize int
	OrderBy  domain.ContactOrderBy
}

// Validate checks all fields and collects all errors.
func (i ContactPageInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.PageSize < 0 || i.PageSize > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: fmt.Sprintf("must be between 1 and %d", MaxPageSize)})
	}
	if i.OrderBy != "" && !i.OrderBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "order_by", Message: "unknown value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalized fills defaults for zero values.
func (i ContactPageInput) normalized() ContactPageInput {
	if i.Page == 0 {
		i.Page = 1
	}
	if i.PageSize == 0 {
		i.PageSize = DefaultPageSize
	}
	i.OrderBy = i.OrderBy.OrDefault()
	return i
}

// CreateGroupInput holds the parameters for creating a group.
type CreateGroupInput struct {
	Icon        string
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateGroupInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateGroupName(i.Name)...)
	errs = append(errs, validateIcon(i.Icon)...)
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > domain.MaxGroupDescLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", domain.MaxGroupDescLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateGroupInput holds a partial group update.
type UpdateGroupInput struct {
	ID          uuid.UUID
	Icon        *string
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateGroupInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Icon == nil && i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateGroupName(*i.Name)...)
	}
	if i.Icon != nil {
		errs = append(errs, validateIcon(*i.Icon)...)
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > domain.MaxGroupDescLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", domain.MaxGroupDescLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateFullName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "full_name", Message: "required"}}
	}
	if utf8.RuneCountInString(name) > domain.MaxContactNameLength {
		return []domain.FieldError{{Field: "full_name", Message: fmt.Sprintf("max %d characters", domain.MaxContactNameLength)}}
	}
	return nil
}

func validateContactFields(avatar, notes, email, phone *string) []domain.FieldError {
	var errs []domain.FieldError
	if avatar != nil && len(*avatar) > domain.MaxAvatarLength {
		errs = append(errs, domain.FieldError{Field: "avatar", Message: fmt.Sprintf("max %d characters", domain.MaxAvatarLength)})
	}
	if notes != nil && utf8.RuneCountInString(strings.TrimSpace(*notes)) > domain.MaxContactNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", domain.MaxContactNotesLength)})
	}
	if email != nil {
		e := strings.TrimSpace(*email)
		switch {
		case len(e) > domain.MaxEmailLength:
			errs = append(errs, domain.FieldError{Field: "email", Message: fmt.Sprintf("max %d characters", domain.MaxEmailLength)})
		case e != "" && !domain.IsValidEmail(e):
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}
	if phone != nil && utf8.RuneCountInString(strings.TrimSpace(*phone)) > domain.MaxPhoneLength {
		errs = append(errs, domain.FieldError{Field: "phone", Message: fmt.Sprintf("max %d characters", domain.MaxPhoneLength)})
	}
	return errs
}

func validateGroupName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if utf8.RuneCountInString(name) > domain.MaxGroupNameLength {
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", domain.MaxGroupNameLength)}}
	}
	return nil
}

func validateIcon(icon string) []domain.FieldError {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return []domain.FieldError{{Field: "icon", Message: "required"}}
	}
	if utf8.RuneCountInString(icon) > domain.MaxGroupIconLength {
		return []domain.FieldError{{Field: "icon", Message: fmt.Sprintf("max %d characters", domain.MaxGroupIconLength)}}
	}
	return nil
}

func validateIDs(field string, ids []uuid.UUID) []domain.FieldError {
	if len(ids) > MaxBatchSize {
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("max %d ids per request", MaxBatchSize)}}
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return []domain.FieldError{{Field: field, Message: "contains an empty id"}}
		}
	}
	return nil
}

// trimKeepEmpty trims a pointer string but keeps "" so it still means "clear".
func trimKeepEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
