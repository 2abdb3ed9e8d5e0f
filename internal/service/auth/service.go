// Package auth implements OAuth login and refresh-token rotation.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynetwrk-backend/internal/auth"
	"github.com/heartmarshall/mynetwrk-backend/internal/config"
	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByOAuth(ctx context.Context, provider, oauthID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
}

// configRepo creates the default config of a new user.
type configRepo interface {
	EnsureConfig(ctx context.Context, userID uuid.UUID) error
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// oauthVerifier defines the OAuth verification interface needed by auth service.
type oauthVerifier interface {
	VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	configs configRepo
	tokens  tokenRepo
	tx      txManager
	oauth   oauthVerifier
	jwt     jwtManager
	cfg     config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	configs configRepo,
	tokens tokenRepo,
	tx txManager,
	oauth oauthVerifier,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "auth"),
		users:   users,
		configs: configs,
		tokens:  tokens,
		tx:      tx,
		oauth:   oauth,
		jwt:     jwt,
		cfg:     cfg,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}

// initialName derives a display name that fits the user name limit.
func initialName(identity *auth.OAuthIdentity) string {
	name := ""
	if identity.Name != nil {
		name = strings.TrimSpace(*identity.Name)
	}
	if name == "" {
		if at := strings.IndexByte(identity.Email, '@'); at > 0 {
			name = identity.Email[:at]
		}
	}
	if utf8.RuneCountInString(name) > domain.MaxUserNameLength {
		name = string([]rune(name)[:domain.MaxUserNameLength])
	}
	return name
}

// avatarChanged reports whether the provider sent a different avatar.
func avatarChanged(user *domain.User, identity *auth.OAuthIdentity) bool {
	if identity.AvatarURL == nil {
		return false
	}
	return user.AvatarURL == nil || *user.AvatarURL != *identity.AvatarURL
}
