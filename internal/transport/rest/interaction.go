package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
	"github.com/heartmarshall/mynetwrk-backend/internal/service/ledger"
)

// ledgerService is the interaction ledger as used by InteractionHandler.
type ledgerService interface {
	GetAll(ctx context.Context, userID uuid.UUID) ([]*domain.Interaction, error)
	GetAllByContactID(ctx context.Context, userID, contactID uuid.UUID) ([]*domain.Interaction, error)
	Create(ctx context.Context, userID uuid.UUID, input ledger.CreateInteractionInput) (*domain.Interaction, error)
	Update(ctx context.Context, userID uuid.UUID, input ledger.UpdateInteractionInput) (*domain.Interaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Interaction, error)
}

// InteractionHandler serves /api/interactions.
type InteractionHandler struct {
	svc ledgerService
	log *slog.Logger
}

// NewInteractionHandler creates an InteractionHandler.
func NewInteractionHandler(svc ledgerService, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{svc: svc, log: logger.With("handler", "interaction")}
}

type createInteractionRequest struct {
	ContactID uuid.UUID `json:"contactId"`
	TypeID    uuid.UUID `json:"typeId"`
	Date      jsonDate  `json:"date"`
	Notes     *string   `json:"notes"`
}

type updateInteractionRequest struct {
	TypeID uuid.UUID `json:"typeId"`
	Date   jsonDate  `json:"date"`
	Notes  *string   `json:"notes"`
}

// List handles GET /api/interactions.
func (h *InteractionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items, err := h.svc.GetAll(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInteractionResponses(items))
}

// ListByContact handles GET /api/contacts/{id}/interactions.
func (h *InteractionHandler) ListByContact(w http.ResponseWriter, r *http.Request) {
	userID, contactID, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items, err := h.svc.GetAllByContactID(r.Context(), userID, contactID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInteractionResponses(items))
}

// Create handles POST /api/interactions.
func (h *InteractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req createInteractionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	it, err := h.svc.Create(r.Context(), userID, ledger.CreateInteractionInput{
		ContactID: req.ContactID,
		TypeID:    req.TypeID,
		Date:      req.Date.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInteractionResponse(it))
}

// Update handles PUT /api/interactions/{id}.
func (h *InteractionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateInteractionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	it, err := h.svc.Update(r.Context(), userID, ledger.UpdateInteractionInput{
		ID:     id,
		TypeID: req.TypeID,
		Date:   req.Date.Time,
		Notes:  req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInteractionResponse(it))
}

// Delete handles DELETE /api/interactions/{id} and returns the deleted row.
func (h *InteractionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, err := userAndPathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	it, err := h.svc.Delete(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInteractionResponse(it))
}
