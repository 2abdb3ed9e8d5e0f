package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
	"github.com/heartmarshall/mynetwrk-backend/internal/service/directory"
	"github.com/heartmarshall/mynetwrk-backend/internal/transport/rest/loader"
)

// contactService is the slice of the directory service used by ContactHandler.
type contactService interface {
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error)
	ListContactsPage(ctx context.Context, userID uuid.UUID, input directory.ContactPageInput) (*domain.ContactPage, error)
	GetContact(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error)
	CreateContact(ctx context.Context, userID uuid.UUID, input directory.CreateContactInput) (*domain.Contact, error)
	UpdateContact(ctx context.Context, userID uuid.UUID, input directory.UpdateContactInput) (*domain.Contact, error)
	DeleteContact(ctx context.Context, userID, id uuid.UUID) error
	AddToGroup(ctx context.Context, userID, contactID, groupID uuid.UUID) error
	RemoveFromGroup(ctx context.Context, userID, contactID, groupID uuid.UUID) error
}

// ContactHandler serves /api/contacts.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

type createContactRequest struct {
	FullName string      `json:"fullName"`
	FirstMet *jsonDate   `json:"firstMet"`
	Avatar   *string     `json:"avatar"`
	Notes    *string     `json:"notes"`
	Email    *string     `json:"email"`
	Phone    *string     `json:"phone"`
	GroupIDs []uuid.UUID `json:"groupIds"`
}

type updateContactRequest struct {
	FullName *string            `json:"fullName"`
	FirstMet optional[jsonDate] `json:"firstMet"`
	Avatar   optional[string]   `json:"avatar"`
	Notes    optional[string]   `json:"notes"`
	Email    optional[string]   `json:"email"`
	Phone    optional[string]   `json:"phone"`
	GroupIDs *[]uuid.UUID       `json:"groupIds"`
}

// clearable maps an explicit null to "" (clear) and an absent field to nil.
func clearable(o optional[string]) *string {
	if !o.Set {
		return nil
	}
	if o.Value == nil {
		empty := ""
		return &empty
	}
	return o.Value
}

// List handles GET /api/contacts. With any paging parameter it returns one page.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	if !q.Has("page") && !q.Has("pageSize") && !q.Has("orderBy") {
		contacts, err := h.svc.ListContacts(r.Context(), userID)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		resp, err := withGroups(r.Context(), contacts)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	input := directory.ContactPageInput{OrderBy: domain.ContactOrderBy(q.Get("orderBy"))}
	if input.Page, err = queryInt(q.Get("page"), "page"); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if input.PageSize, err = queryInt(q.Get("pageSize"), "page_size"); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListContactsPage(r.Context(), userID, input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	contacts, err := withGroups(r.Context(), page.Contacts)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, contactPageResponse{
		Contacts: contacts,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

// Get handles GET /api/contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.GetContact(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeContact(w, r, http.StatusOK, c)
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req createContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateContact(r.Context(), userID, directory.CreateContactInput{
		FullName: req.FullName,
		FirstMet: req.FirstMet.ptr(),
		Avatar:   req.Avatar,
		Notes:    req.Notes,
		Email:    req.Email,
		Phone:    req.Phone,
		GroupIDs: req.GroupIDs,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeContact(w, r, http.StatusCreated, c)
}

// Update handles PATCH /api/contacts/{id}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := directory.UpdateContactInput{
		ID:       id,
		FullName: req.FullName,
		Avatar:   clearable(req.Avatar),
		Notes:    clearable(req.Notes),
		Email:    clearable(req.Email),
		Phone:    clearable(req.Phone),
		GroupIDs: req.GroupIDs,
	}
	if req.FirstMet.Set {
		if req.FirstMet.Value == nil {
			input.ClearFirstMet = true
		} else {
			input.FirstMet = req.FirstMet.Value.ptr()
		}
	}

	c, err := h.svc.UpdateContact(r.Context(), userID, input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeContact(w, r, http.StatusOK, c)
}

// Delete handles DELETE /api/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteContact(r.Context(), userID, id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddToGroup handles PUT /api/contacts/{id}/groups/{groupId}.
func (h *ContactHandler) AddToGroup(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.svc.AddToGroup)
}

// RemoveFromGroup handles DELETE /api/contacts/{id}/groups/{groupId}.
func (h *ContactHandler) RemoveFromGroup(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.svc.RemoveFromGroup)
}

func (h *ContactHandler) membership(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, contactID, groupID uuid.UUID) error) {
	userID, contactID, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	groupID, err := pathUUID(r, "groupId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := op(r.Context(), userID, contactID, groupID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContactHandler) writeContact(w http.ResponseWriter, r *http.Request, status int, c *domain.Contact) {
	resp, err := withGroups(r.Context(), []*domain.Contact{c})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, resp[0])
}

// withGroups converts contacts and attaches their group chips. Groups and
// their member counts are each loaded in one batch.
func withGroups(ctx context.Context, contacts []*domain.Contact) ([]contactResponse, error) {
	out := make([]contactResponse, len(contacts))
	if len(contacts) == 0 {
		return out, nil
	}
	loaders := loader.FromContext(ctx)

	ids := make([]uuid.UUID, len(contacts))
	for i, c := range contacts {
		ids[i] = c.ID
	}
	groups, err := loaders.GroupsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	var groupIDs []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, gs := range groups {
		for _, g := range gs {
			if !seen[g.ID] {
				seen[g.ID] = true
				groupIDs = append(groupIDs, g.ID)
			}
		}
	}
	counts := make(map[uuid.UUID]int, len(groupIDs))
	if len(groupIDs) > 0 {
		n, err := loaders.MemberCountsFor(ctx, groupIDs)
		if err != nil {
			return nil, err
		}
		for i, id := range groupIDs {
			counts[id] = n[i]
		}
	}

	for i, c := range contacts {
		out[i] = toContactResponse(c)
		out[i].Groups = toGroupChips(groups[i], counts)
	}
	return out, nil
}

func userAndPathID(r *http.Request, name string) (uuid.UUID, uuid.UUID, error) {
	userID, err := requireUserID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := pathUUID(r, name)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, id, nil
}

func queryInt(raw, field string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be an integer")
	}
	return n, nil
}
