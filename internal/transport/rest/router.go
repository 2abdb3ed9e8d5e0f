package rest

import (
	"net/http"

	"github.com/heartmarshall/mynetwrk-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health          *HealthHandler
	Auth            *AuthHandler
	Contact         *ContactHandler
	Group           *GroupHandler
	Interaction     *InteractionHandler
	InteractionType *InteractionTypeHandler
	User            *UserHandler
	Search          *SearchHandler
	Assistant       *AssistantHandler
}

// RouterMiddleware holds the per-route-class middleware applied by NewRouter.
type RouterMiddleware struct {
	// Auth resolves the bearer token; applied to /api/* and /auth/logout.
	Auth middleware.Middleware
	// Loaders injects per-request dataloaders; applied to /api/*.
	Loaders middleware.Middleware
	// AuthLimit limits the unauthenticated auth endpoints.
	AuthLimit middleware.Middleware
	// APILimit limits authenticated API traffic.
	APILimit middleware.Middleware
	// AILimit additionally limits the AI endpoint.
	AILimit middleware.Middleware
}

// NewRouter wires all routes onto a ServeMux.
func NewRouter(h Handlers, mw RouterMiddleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	public := middleware.Chain(mw.AuthLimit)
	mux.Handle("POST /auth/login", public(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /auth/refresh", public(http.HandlerFunc(h.Auth.Refresh)))
	mux.Handle("POST /auth/logout", middleware.Chain(mw.AuthLimit, mw.Auth)(http.HandlerFunc(h.Auth.Logout)))

	api := middleware.Chain(mw.Auth, mw.APILimit, mw.Loaders)
	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, api(fn))
	}

	route("GET /api/contacts", h.Contact.List)
	route("POST /api/contacts", h.Contact.Create)
	route("GET /api/contacts/{id}", h.Contact.Get)
	route("PATCH /api/contacts/{id}", h.Contact.Update)
	route("DELETE /api/contacts/{id}", h.Contact.Delete)
	route("PUT /api/contacts/{id}/groups/{groupId}", h.Contact.AddToGroup)
	route("DELETE /api/contacts/{id}/groups/{groupId}", h.Contact.RemoveFromGroup)
	route("GET /api/contacts/{id}/interactions", h.Interaction.ListByContact)

	route("GET /api/groups", h.Group.List)
	route("POST /api/groups", h.Group.Create)
	route("GET /api/groups/{id}", h.Group.Get)
	route("PATCH /api/groups/{id}", h.Group.Update)
	route("DELETE /api/groups/{id}", h.Group.Delete)
	route("GET /api/groups/{id}/contacts", h.Group.Contacts)
	route("POST /api/groups/{id}/contacts", h.Group.AddContacts)
	route("GET /api/groups/{id}/candidates", h.Group.Candidates)

	route("GET /api/interactions", h.Interaction.List)
	route("POST /api/interactions", h.Interaction.Create)
	route("PUT /api/interactions/{id}", h.Interaction.Update)
	route("DELETE /api/interactions/{id}", h.Interaction.Delete)

	route("GET /api/interaction-types", h.InteractionType.List)
	route("POST /api/interaction-types", h.InteractionType.Create)
	route("PATCH /api/interaction-types/{id}", h.InteractionType.Update)
	route("DELETE /api/interaction-types/{id}", h.InteractionType.Delete)

	route("GET /api/me", h.User.Me)
	route("PATCH /api/me", h.User.UpdateProfile)
	route("PUT /api/me/config", h.User.UpdateConfig)
	route("POST /api/me/init", h.User.Init)
	route("GET /api/timezones", h.User.Timezones)

	route("GET /api/search", h.Search.Search)
	mux.Handle("POST /api/ai/query", middleware.Chain(mw.Auth, mw.APILimit, mw.AILimit)(http.HandlerFunc(h.Assistant.Query)))

	return mux
}
