package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// dateLayout is the calendar-date form accepted next to RFC 3339.
const dateLayout = "2006-01-02"

// jsonDate accepts either an RFC 3339 timestamp or a plain calendar date.
type jsonDate struct {
	time.Time
}

func (d *jsonDate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *jsonDate) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// optional distinguishes an absent JSON field from an explicit null.
type optional[T any] struct {
	Set   bool
	Value *T
}

func (o *optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type groupChip struct {
	ID           uuid.UUID `json:"id"`
	Icon         string    `json:"icon"`
	Name         string    `json:"name"`
	ContactCount int       `json:"contactCount"`
}

type contactResponse struct {
	ID                  uuid.UUID   `json:"id"`
	FullName            string      `json:"fullName"`
	Avatar              *string     `json:"avatar"`
	FirstMet            *time.Time  `json:"firstMet"`
	Notes               *string     `json:"notes"`
	Email               *string     `json:"email"`
	Phone               *string     `json:"phone"`
	LastInteraction     *time.Time  `json:"lastInteraction"`
	LastInteractionType *string     `json:"lastInteractionType"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
	Groups              []groupChip `json:"groups"`
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:                  c.ID,
		FullName:            c.FullName,
		Avatar:              c.Avatar,
		FirstMet:            c.FirstMet,
		Notes:               c.Notes,
		Email:               c.Email,
		Phone:               c.Phone,
		LastInteraction:     c.LastInteraction,
		LastInteractionType: c.LastInteractionType,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func toGroupChips(groups []domain.Group, counts map[uuid.UUID]int) []groupChip {
	chips := make([]groupChip, len(groups))
	for i, g := range groups {
		chips[i] = groupChip{ID: g.ID, Icon: g.Icon, Name: g.Name, ContactCount: counts[g.ID]}
	}
	return chips
}

type contactPageResponse struct {
	Contacts []contactResponse `json:"contacts"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

type groupResponse struct {
	ID           uuid.UUID `json:"id"`
	Icon         string    `json:"icon"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	ContactCount int       `json:"contactCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toGroupResponse(g *domain.Group) groupResponse {
	return groupResponse{
		ID:           g.ID,
		Icon:         g.Icon,
		Name:         g.Name,
		Description:  g.Description,
		ContactCount: g.ContactCount,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

type groupDetailResponse struct {
	groupResponse
	Contacts []contactResponse `json:"contacts"`
}

type contactSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Avatar   *string   `json:"avatar"`
}

type interactionResponse struct {
	ID        uuid.UUID               `json:"id"`
	ContactID uuid.UUID               `json:"contactId"`
	TypeID    uuid.UUID               `json:"typeId"`
	Type      string                  `json:"type"`
	Date      time.Time               `json:"date"`
	Notes     *string                 `json:"notes"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
	Contact   *contactSummaryResponse `json:"contact,omitempty"`
}

func toInteractionResponse(it *domain.Interaction) interactionResponse {
	resp := interactionResponse{
		ID:        it.ID,
		ContactID: it.ContactID,
		TypeID:    it.TypeID,
		Type:      it.TypeName,
		Date:      it.Date,
		Notes:     it.Notes,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
	if it.Contact != nil {
		resp.Contact = &contactSummaryResponse{
			ID:       it.Contact.ID,
			FullName: it.Contact.FullName,
			Avatar:   it.Contact.Avatar,
		}
	}
	return resp
}

func toInteractionResponses(items []*domain.Interaction) []interactionResponse {
	out := make([]interactionResponse, len(items))
	for i, it := range items {
		out[i] = toInteractionResponse(it)
	}
	return out
}

type interactionTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Global    bool      `json:"global"`
	CreatedAt time.Time `json:"createdAt"`
}

func toInteractionTypeResponse(t *domain.InteractionType) interactionTypeResponse {
	return interactionTypeResponse{ID: t.ID, Name: t.Name, Global: t.IsGlobal(), CreatedAt: t.CreatedAt}
}

type userResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	AvatarURL  *string   `json:"avatarUrl"`
	Subscribed bool      `json:"subscribed"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		AvatarURL:  u.AvatarURL,
		Subscribed: u.Subscribed,
		CreatedAt:  u.CreatedAt,
	}
}

type configResponse struct {
	ReminderEmails bool `json:"reminderEmails"`
	KeepInTouch    bool `json:"keepInTouch"`
	TimezoneID     *int `json:"timezoneId"`
}

func toConfigResponse(c *domain.Config) configResponse {
	return configResponse{ReminderEmails: c.ReminderEmails, KeepInTouch: c.KeepInTouch, TimezoneID: c.TimezoneID}
}

type timezoneResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	NameShort string `json:"nameShort"`
	Offset    string `json:"offset"`
}

func toTimezoneResponse(tz *domain.Timezone) *timezoneResponse {
	if tz == nil {
		return nil
	}
	return &timezoneResponse{ID: tz.ID, Name: tz.Name, NameShort: tz.NameShort, Offset: tz.Offset}
}

type profileResponse struct {
	User     userResponse      `json:"user"`
	Config   configResponse    `json:"config"`
	Timezone *timezoneResponse `json:"timezone"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		User:     toUserResponse(p.User),
		Config:   toConfigResponse(p.Config),
		Timezone: toTimezoneResponse(p.Timezone),
	}
}

type contactMatchResponse struct {
	contactResponse
	Interactions []interactionResponse `json:"interactions"`
}
