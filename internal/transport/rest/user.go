package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
	"github.com/heartmarshall/mynetwrk-backend/internal/service/user"
)

type userService interface {
	Me(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Init(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input user.UpdateProfileInput) (*domain.User, error)
	UpdateConfig(ctx context.Context, userID uuid.UUID, input user.UpdateConfigInput) (*domain.Config, error)
	ListTimezones(ctx context.Context) ([]*domain.Timezone, error)
}

// UserHandler serves /api/me and /api/timezones.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type updateConfigRequest struct {
	ReminderEmails *bool `json:"reminderEmails"`
	KeepInTouch    *bool `json:"keepInTouch"`
	TimezoneID     *int  `json:"timezoneId"`
}

// Me handles GET /api/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	h.profile(w, r, h.svc.Me)
}

// Init handles POST /api/me/init.
func (h *UserHandler) Init(w http.ResponseWriter, r *http.Request) {
	h.profile(w, r, h.svc.Init)
}

func (h *UserHandler) profile(w http.ResponseWriter, r *http.Request, load func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := load(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// UpdateProfile handles PATCH /api/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), userID, user.UpdateProfileInput{Name: req.Name, Email: req.Email})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateConfig handles PUT /api/me/config.
func (h *UserHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateConfigRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	cfg, err := h.svc.UpdateConfig(r.Context(), userID, user.UpdateConfigInput{
		ReminderEmails: req.ReminderEmails,
		KeepInTouch:    req.KeepInTouch,
		TimezoneID:     req.TimezoneID,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toConfigResponse(cfg))
}

// Timezones handles GET /api/timezones.
func (h *UserHandler) Timezones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.svc.ListTimezones(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]*timezoneResponse, len(zones))
	for i, tz := range zones {
		resp[i] = toTimezoneResponse(tz)
	}
	writeJSON(w, http.StatusOK, resp)
}
