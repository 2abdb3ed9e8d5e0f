package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
	"github.com/heartmarshall/mynetwrk-backend/internal/service/assistant"
)

type searchService interface {
	Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.ContactMatch, error)
}

type assistantService interface {
	Query(ctx context.Context, userID uuid.UUID, input assistant.QueryInput) (string, error)
}

// SearchHandler serves /api/search.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /api/search?q=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	matches, err := h.svc.Search(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	contacts := make([]*domain.Contact, len(matches))
	for i, m := range matches {
		contacts[i] = m.Contact
	}
	withChips, err := withGroups(r.Context(), contacts)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]contactMatchResponse, len(matches))
	for i, m := range matches {
		resp[i] = contactMatchResponse{
			contactResponse: withChips[i],
			Interactions:    toInteractionResponses(m.Interactions),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// AssistantHandler serves /api/ai.
type AssistantHandler struct {
	svc assistantService
	log *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(svc assistantService, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, log: logger.With("handler", "assistant")}
}

type aiQueryRequest struct {
	Text   string `json:"text"`
	Prompt string `json:"prompt"`
}

type aiQueryResponse struct {
	Text string `json:"text"`
}

// Query handles POST /api/ai/query.
func (h *AssistantHandler) Query(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req aiQueryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	text, err := h.svc.Query(r.Context(), userID, assistant.QueryInput{
		Text:   req.Text,
		Prompt: domain.AIPrompt(req.Prompt),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, aiQueryResponse{Text: text})
}
