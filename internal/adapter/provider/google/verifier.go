// Package google resolves a Google OAuth authorization code into the
// identity MyNetwrk keys its users by: provider "google" plus the OpenID
// subject.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/mynetwrk-backend/internal/auth"
	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Provider is the provider name stored in users.oauth_provider.
const Provider = "google"

const (
	defaultTokenURL    = "https://oauth2.googleapis.com/token"
	defaultUserinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	retryBackoff       = 500 * time.Millisecond
)

// Config holds the OAuth client registration. Empty endpoint URLs fall
// back to Google's public endpoints.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	TokenURL     string
	UserinfoURL  string
	Timeout      time.Duration
}

// Verifier exchanges authorization codes for OAuth identities.
type Verifier struct {
	cfg    Config
	client *http.Client
	log    *slog.Logger
}

// NewVerifier creates a Google verifier.
func NewVerifier(cfg Config, logger *slog.Logger) *Verifier {
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}
	if cfg.UserinfoURL == "" {
		cfg.UserinfoURL = defaultUserinfoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Verifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    logger.With("adapter", "google_oauth"),
	}
}

type tokenReply struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
}

// claims are the OpenID Connect userinfo fields MyNetwrk reads.
type claims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// VerifyCode returns the identity behind code. A provider other than
// "google" is rejected. Rejected codes and unverified emails wrap
// domain.ErrUnauthorized; an unreachable Google wraps
// domain.ErrExternalService.
func (v *Verifier) VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error) {
	if provider != Provider {
		return nil, fmt.Errorf("google: provider %q: %w", provider, domain.ErrUnauthorized)
	}

	token, err := v.exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	c, err := v.userinfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if !c.EmailVerified {
		return nil, fmt.Errorf("google: email not verified: %w", domain.ErrUnauthorized)
	}

	identity := &auth.OAuthIdentity{
		Provider:   Provider,
		ProviderID: c.Subject,
		Email:      c.Email,
	}
	if name := strings.TrimSpace(c.Name); name != "" {
		identity.Name = &name
	}
	if c.Picture != "" {
		identity.AvatarURL = &c.Picture
	}

	v.log.DebugContext(ctx, "google identity resolved", slog.String("subject", c.Subject))
	return identity, nil
}

func (v *Verifier) exchange(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {v.cfg.ClientID},
		"client_secret": {v.cfg.ClientSecret},
		"redirect_uri":  {v.cfg.RedirectURI},
	}.Encode()

	status, body, err := v.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.TokenURL, strings.NewReader(form))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
	if err != nil {
		v.log.ErrorContext(ctx, "google token exchange failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("google: token exchange: %w", domain.ErrExternalService)
	}

	var reply tokenReply
	_ = json.Unmarshal(body, &reply)

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		v.log.WarnContext(ctx, "google rejected code", slog.Int("status", status), slog.String("error", reply.Error))
		return "", fmt.Errorf("google: invalid or expired code: %w", domain.ErrUnauthorized)
	case status != http.StatusOK:
		v.log.ErrorContext(ctx, "google token exchange failed", slog.Int("status", status))
		return "", fmt.Errorf("google: token exchange status %d: %w", status, domain.ErrExternalService)
	case reply.AccessToken == "":
		return "", fmt.Errorf("google: token response without access_token: %w", domain.ErrExternalService)
	}
	return reply.AccessToken, nil
}

func (v *Verifier) userinfo(ctx context.Context, accessToken string) (*claims, error) {
	status, body, err := v.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.cfg.UserinfoURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		return req, nil
	})
	if err != nil {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google: userinfo: %w", domain.ErrExternalService)
	}
	if status != http.StatusOK {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.Int("status", status))
		return nil, fmt.Errorf("google: userinfo status %d: %w", status, domain.ErrExternalService)
	}

	var c claims
	if err := json.Unmarshal(body, &c); err != nil || c.Subject == "" || c.Email == "" {
		return nil, fmt.Errorf("google: incomplete userinfo: %w", domain.ErrExternalService)
	}
	return &c, nil
}

// do sends the request built by newReq and retries once after a network
// error or a 5xx answer.
func (v *Verifier) do(ctx context.Context, newReq func() (*http.Request, error)) (int, []byte, error) {
	var lastErr error
	for attempt := range 2 {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			}
		}

		req, err := newReq()
		if err != nil {
			return 0, nil, err
		}
		resp, err := v.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return 0, nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			if attempt == 0 {
				continue
			}
		}
		return resp.StatusCode, body, nil
	}
	return 0, nil, lastErr
}
