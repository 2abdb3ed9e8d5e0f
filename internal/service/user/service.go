package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
}

// configRepo defines the config and timezone storage needed by user service.
type configRepo interface {
	GetConfig(ctx context.Context, userID uuid.UUID) (*domain.Config, error)
	EnsureConfig(ctx context.Context, userID uuid.UUID) error
	UpsertConfig(ctx context.Context, userID uuid.UUID, patch domain.ConfigPatch) (*domain.Config, error)
	GetTimezone(ctx context.Context, id int) (*domain.Timezone, error)
	ListTimezones(ctx context.Context) ([]*domain.Timezone, error)
}

// auditLogger records mutation events.
type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile and config operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	configs configRepo
	audit   auditLogger
	tx      txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	configs configRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		configs: configs,
		audit:   audit,
		tx:      tx,
	}
}
