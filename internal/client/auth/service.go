// Package auth manages the client-side session: it calls the server and
// keeps the returned tokens in local storage.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	clientapi "github.com/iudanet/authmodule/internal/client/api"
	"github.com/iudanet/authmodule/internal/client/storage"
	"github.com/iudanet/authmodule/pkg/api"
)

var (
	// ErrNotAuthenticated means no session is stored locally.
	ErrNotAuthenticated = errors.New("not authenticated, run 'authctl login' first")

	// ErrNoRefreshToken means the session was created without "remember me".
	ErrNoRefreshToken = errors.New("no refresh token available, log in with --remember")

	// ErrSessionExpired means the stored session was rejected by the server
	// and could not be renewed. Local tokens have been removed.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// Session is the state reported by Status.
type Session struct {
	Auth *storage.AuthData
	User *api.User
	// Refreshed is set when the access token was renewed during the check.
	Refreshed bool
}

// Service is the client-side auth flow.
type Service struct {
	api    API
	store  storage.AuthStorage
	clock  clockwork.Clock
	logger *zap.Logger
}

// NewService creates the session service. A nil clock means the real clock.
func NewService(a API, store storage.AuthStorage, clock clockwork.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: a, store: store, clock: clock, logger: logger}
}

// Login authenticates and stores the returned tokens. A refresh token is
// only issued by the server when remember is set.
func (s *Service) Login(ctx context.Context, usernameOrEmail, password string, remember bool) (*storage.AuthData, error) {
	resp, err := s.api.Login(ctx, api.LoginRequest{
		UsernameOrEmail: usernameOrEmail,
		Password:        password,
		RememberMe:      remember,
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.Token == "" {
		return nil, fmt.Errorf("login failed: %s", resp.Message)
	}

	data := s.authData(resp, nil)
	if err := s.store.SaveAuth(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	return data, nil
}

// Register creates an account. The user must log in afterwards; the
// token returned by the server is not stored.
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("registration failed: %s", resp.Message)
	}
	return resp, nil
}

// Refresh exchanges the stored refresh token for a new token pair.
// A rejected refresh token removes the local session.
func (s *Service) Refresh(ctx context.Context) (*storage.AuthData, error) {
	current, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, current)
}

// Status validates the stored access token with the server. If it has been
// rejected and a refresh token is stored, the session is renewed once.
func (s *Service) Status(ctx context.Context) (*Session, error) {
	current, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.Validate(ctx, current.AccessToken)
	switch {
	case err == nil && resp.Success:
		return &Session{Auth: current, User: resp.User}, nil
	case err != nil && !clientapi.IsStatus(err, http.StatusUnauthorized):
		return nil, err
	}

	if !current.HasRefreshToken() {
		s.clear(ctx)
		return nil, ErrSessionExpired
	}

	renewed, err := s.refresh(ctx, current)
	if err != nil {
		return nil, err
	}

	resp, err = s.api.Validate(ctx, renewed.AccessToken)
	if err != nil {
		return nil, err
	}
	return &Session{Auth: renewed, User: resp.User, Refreshed: true}, nil
}

// Logout tells the server and always removes the local session, even when
// the server cannot be reached.
func (s *Service) Logout(ctx context.Context) error {
	current, err := s.store.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to read auth data: %w", err)
	}

	if current.AccessToken != "" {
		if err := s.api.Logout(ctx, current.AccessToken); err != nil {
			s.logger.Warn("Server logout failed", zap.Error(err))
		}
	}

	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	return nil
}

// Users lists accounts using the stored access token.
func (s *Service) Users(ctx context.Context) ([]api.UserSummary, error) {
	current, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.Users(ctx, current.AccessToken)
}

func (s *Service) current(ctx context.Context) (*storage.AuthData, error) {
	current, err := s.store.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read auth data: %w", err)
	}
	return current, nil
}

func (s *Service) refresh(ctx context.Context, current *storage.AuthData) (*storage.AuthData, error) {
	if !current.HasRefreshToken() {
		return nil, ErrNoRefreshToken
	}

	resp, err := s.api.Refresh(ctx, current.RefreshToken)
	if err != nil {
		if clientapi.IsStatus(err, http.StatusUnauthorized) {
			s.clear(ctx)
			return nil, fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return nil, err
	}
	if !resp.Success || resp.Token == "" {
		s.clear(ctx)
		return nil, fmt.Errorf("%w: %s", ErrSessionExpired, resp.Message)
	}

	data := s.authData(resp, current)
	if err := s.store.SaveAuth(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}
	return data, nil
}

// authData builds the stored session from a successful response. Fields the
// response omits are carried over from prev.
func (s *Service) authData(resp *api.AuthResponse, prev *storage.AuthData) *storage.AuthData {
	data := &storage.AuthData{
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
		SavedAt:      s.clock.Now(),
	}
	if prev != nil {
		*data = *prev
		data.AccessToken = resp.Token
		data.SavedAt = s.clock.Now()
		if resp.RefreshToken != "" {
			data.RefreshToken = resp.RefreshToken
		}
	}
	if resp.ExpiresAt != nil {
		data.ExpiresAt = *resp.ExpiresAt
	}
	if u := resp.User; u != nil {
		data.UserID = u.ID
		data.Username = u.Username
		data.Email = u.Email
		data.UserType = u.UserType
	}
	return data
}

func (s *Service) clear(ctx context.Context) {
	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		s.logger.Warn("Failed to remove local session", zap.Error(err))
	}
}
