package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

type interactionTypeService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.InteractionType, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.InteractionType, error)
	Update(ctx context.Context, userID, id uuid.UUID, name string) (*domain.InteractionType, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// InteractionTypeHandler serves /api/interaction-types.
type InteractionTypeHandler struct {
	svc interactionTypeService
	log *slog.Logger
}

// NewInteractionTypeHandler creates an InteractionTypeHandler.
func NewInteractionTypeHandler(svc interactionTypeService, logger *slog.Logger) *InteractionTypeHandler {
	return &InteractionTypeHandler{svc: svc, log: logger.With("handler", "interaction_type")}
}

type interactionTypeRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/interaction-types.
func (h *InteractionTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	types, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]interactionTypeResponse, len(types))
	for i, t := range types {
		resp[i] = toInteractionTypeResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/interaction-types.
func (h *InteractionTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req interactionTypeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Create(r.Context(), userID, req.Name)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInteractionTypeResponse(t))
}

// Update handles PATCH /api/interaction-types/{id}.
func (h *InteractionTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req interactionTypeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Update(r.Context(), userID, id, req.Name)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInteractionTypeResponse(t))
}

// Delete handles DELETE /api/interaction-types/{id}.
func (h *InteractionTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
