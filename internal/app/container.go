package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/contact"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/group"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/interaction"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/interactiontype"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/mynetwrk-backend/internal/auth"
	"github.com/heartmarshall/mynetwrk-backend/internal/config"
	"github.com/heartmarshall/mynetwrk-backend/internal/service/assistant"
	authsvc "github.com/heartmarshall/mynetwrk-backend/internal/service/auth"
	"github.com/heartmarshall/mynetwrk-backend/internal/service/directory"
	typesvc "github.com/heartmarshall/mynetwrk-backend/internal/service/interactiontype"
	"github.com/heartmarshall/mynetwrk-backend/internal/service/ledger"
	"github.com/heartmarshall/mynetwrk-backend/internal/service/search"
	usersvc "github.com/heartmarshall/mynetwrk-backend/internal/service/user"
	"github.com/heartmarshall/mynetwrk-backend/internal/transport/middleware"
	"github.com/heartmarshall/mynetwrk-backend/internal/transport/rest"
	"github.com/heartmarshall/mynetwrk-backend/internal/transport/rest/loader"
)

// container holds the wired HTTP stack and whatever must be stopped with it.
type container struct {
	handler     http.Handler
	limiter     *middleware.RateLimiter
	closeSchema func() error
}

func (c *container) close() {
	c.limiter.Stop()
	c.closeSchema() //nolint:errcheck
}

func newAuthService(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *authsvc.Service {
	users := user.New(pool)
	return authsvc.NewService(
		logger,
		users,
		users,
		token.New(pool),
		postgres.NewTxManager(pool),
		google.NewVerifier(google.Config{
			ClientID:     cfg.Auth.GoogleClientID,
			ClientSecret: cfg.Auth.GoogleClientSecret,
			RedirectURI:  cfg.Auth.GoogleRedirectURI,
		}, logger),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
	)
}

func newContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*container, error) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	users := user.New(pool)
	contacts := contact.New(pool)
	groups := group.New(pool)
	interactions := interaction.New(pool)
	types := interactiontype.New(pool)
	auditRepo := audit.New(pool)

	// Services.
	authService := newAuthService(cfg, logger, pool)
	directoryService := directory.NewService(logger, contacts, groups, types, auditRepo, txm)
	ledgerService := ledger.NewService(logger, interactions, contacts, directoryService, auditRepo, txm, cfg.Ledger.MaxNotesLength)
	typeService := typesvc.NewService(logger, types, interactions, ledgerService, auditRepo, txm)
	userService := usersvc.NewService(logger, users, users, auditRepo, txm)
	searchService := search.NewService(logger, contacts, interactions)

	completer, err := newCompleter(ctx, cfg.AI, logger)
	if err != nil {
		return nil, fmt.Errorf("ai provider: %w", err)
	}
	assistantService := assistant.NewService(logger, users, completer, cfg.AI.Timeout)

	schema, closeSchema, err := newSchemaReporter(pool)
	if err != nil {
		return nil, fmt.Errorf("schema reporter: %w", err)
	}

	// Handlers.
	handlers := rest.Handlers{
		Health:          rest.NewHealthHandler(pool, schema, BuildVersion()),
		Auth:            rest.NewAuthHandler(authService, logger),
		Contact:         rest.NewContactHandler(directoryService, logger),
		Group:           rest.NewGroupHandler(directoryService, logger),
		Interaction:     rest.NewInteractionHandler(ledgerService, logger),
		InteractionType: rest.NewInteractionTypeHandler(typeService, logger),
		User:            rest.NewUserHandler(userService, logger),
		Search:          rest.NewSearchHandler(searchService, logger),
		Assistant:       rest.NewAssistantHandler(assistantService, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	router := rest.NewRouter(handlers, rest.RouterMiddleware{
		Auth:      middleware.Auth(authService),
		Loaders:   loader.Middleware(groups),
		AuthLimit: limiter.Limit("auth", cfg.RateLimit.AuthRequestsPerMinute, middleware.ByIP),
		APILimit:  limiter.Limit("api", cfg.RateLimit.RequestsPerMinute, middleware.ByUser),
		AILimit:   limiter.Limit("ai", cfg.RateLimit.AIRequestsPerMinute, middleware.ByUser),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	return &container{handler: handler, limiter: limiter, closeSchema: closeSchema}, nil
}
