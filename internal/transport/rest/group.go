package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
	"github.com/heartmarshall/mynetwrk-backend/internal/service/directory"
)

// groupService is the slice of the directory service used by GroupHandler.
type groupService interface {
	ListGroups(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error)
	GetGroup(ctx context.Context, userID, id uuid.UUID) (*domain.GroupDetail, error)
	CreateGroup(ctx context.Context, userID uuid.UUID, input directory.CreateGroupInput) (*domain.Group, error)
	UpdateGroup(ctx context.Context, userID uuid.UUID, input directory.UpdateGroupInput) (*domain.Group, error)
	DeleteGroup(ctx context.Context, userID, id uuid.UUID) error
	AddManyContacts(ctx context.Context, userID, groupID uuid.UUID, contactIDs []uuid.UUID) (int, error)
	ListContactsByGroup(ctx context.Context, userID, groupID uuid.UUID, orderBy domain.ContactOrderBy) ([]*domain.Contact, error)
	ListContactsNotInGroup(ctx context.Context, userID, groupID uuid.UUID, search string) ([]*domain.Contact, error)
}

// GroupHandler serves /api/groups.
type GroupHandler struct {
	svc groupService
	log *slog.Logger
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc groupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, log: logger.With("handler", "group")}
}

type createGroupRequest struct {
	Icon        string  `json:"icon"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateGroupRequest struct {
	Icon        *string          `json:"icon"`
	Name        *string          `json:"name"`
	Description optional[string] `json:"description"`
}

type addContactsRequest struct {
	ContactIDs []uuid.UUID `json:"contactIds"`
}

type addContactsResponse struct {
	Added int `json:"added"`
}

// List handles GET /api/groups.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	groups, err := h.svc.ListGroups(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]groupResponse, len(groups))
	for i, g := range groups {
		resp[i] = toGroupResponse(g)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/groups/{id}.
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	detail, err := h.svc.GetGroup(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	contacts, err := withGroups(r.Context(), detail.Contacts)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, groupDetailResponse{
		groupResponse: toGroupResponse(detail.Group),
		Contacts:      contacts,
	})
}

// Create handles POST /api/groups.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req createGroupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	g, err := h.svc.CreateGroup(r.Context(), userID, directory.CreateGroupInput{
		Icon:        req.Icon,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupResponse(g))
}

// Update handles PATCH /api/groups/{id}.
func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateGroupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	g, err := h.svc.UpdateGroup(r.Context(), userID, directory.UpdateGroupInput{
		ID:          id,
		Icon:        req.Icon,
		Name:        req.Name,
		Description: clearable(req.Description),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(g))
}

// Delete handles DELETE /api/groups/{id}.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteGroup(r.Context(), userID, id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddContacts handles POST /api/groups/{id}/contacts.
func (h *GroupHandler) AddContacts(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req addContactsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	added, err := h.svc.AddManyContacts(r.Context(), userID, id, req.ContactIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, addContactsResponse{Added: added})
}

// Contacts handles GET /api/groups/{id}/contacts?orderBy=.
func (h *GroupHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	orderBy := domain.ContactOrderBy(r.URL.Query().Get("orderBy"))
	contacts, err := h.svc.ListContactsByGroup(r.Context(), userID, id, orderBy)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeContacts(w, r, contacts)
}

// Candidates handles GET /api/groups/{id}/candidates?search=.
func (h *GroupHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	contacts, err := h.svc.ListContactsNotInGroup(r.Context(), userID, id, r.URL.Query().Get("search"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeContacts(w, r, contacts)
}

func (h *GroupHandler) writeContacts(w http.ResponseWriter, r *http.Request, contacts []*domain.Contact) {
	resp, err := withGroups(r.Context(), contacts)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
