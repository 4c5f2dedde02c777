// Package auth implements the authentication core: login, registration,
// token validation, refresh-token rotation and role checks.
//
// Every operation returns a *models.AuthResult; failures of the credential
// store or the hashing pool are folded into the result and never returned as
// errors.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/iudanet/authmodule/internal/models"
	"github.com/iudanet/authmodule/internal/server/storage"
)

const (
	// RememberMeRefreshTTL is the lifetime of a refresh token granted at login.
	RememberMeRefreshTTL = 30 * 24 * time.Hour
	// RotatedRefreshTTL is the lifetime of a refresh token issued on rotation.
	RotatedRefreshTTL = 7 * 24 * time.Hour
)

const (
	msgInvalidCredentials = "Invalid username/email or password"
	msgAccountDeactivated = "Account is deactivated"
	msgLoginSuccessful    = "Login successful"
	msgUsernameExists     = "Username already exists"
	msgEmailExists        = "Email already exists"
	msgRegistered         = "Registration successful"
	msgInvalidToken       = "Invalid token"
	msgUserUnavailable    = "User not found or inactive"
	msgTokenValid         = "Token is valid"
	msgInvalidRefresh     = "Invalid refresh token"
	msgRefreshExpired     = "Refresh token has expired"
	msgRefreshed          = "Token refreshed successfully"
)

// Operation names used in failure messages and metrics.
const (
	OpLogin    = "Login"
	OpRegister = "Registration"
	OpValidate = "Token validation"
	OpRefresh  = "Token refresh"
	OpLogout   = "Logout"
)

// TokenEngine issues and verifies access tokens.
type TokenEngine interface {
	IssueAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken() (string, error)
	Validate(token string) bool
	SubjectID(token string) (string, bool)
	RoleClaim(token string) (models.UserType, bool)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, hashed, password string) (bool, error)
}

// Recorder receives the outcome of every auth operation.
type Recorder interface {
	AuthOperation(operation string, kind models.FailureKind)
}

type nopRecorder struct{}

func (nopRecorder) AuthOperation(string, models.FailureKind) {}

// Service is the auth core. It holds no per-session state and is safe for
// concurrent use.
type Service struct {
	logger   *zap.Logger
	store    storage.UserStorage
	tokens   TokenEngine
	hasher   PasswordHasher
	clock    clockwork.Clock
	recorder Recorder
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the real clock.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

// WithRecorder attaches an outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService creates the auth core.
func NewService(logger *zap.Logger, store storage.UserStorage, tokens TokenEngine, hasher PasswordHasher, opts ...Option) *Service {
	s := &Service{
		logger:   logger.Named("auth"),
		store:    store,
		tokens:   tokens,
		hasher:   hasher,
		clock:    clockwork.NewRealClock(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login authenticates by username or email. With RememberMe a 30-day refresh
// token is stored on the user and returned.
func (s *Service) Login(ctx context.Context, creds models.Credentials) *models.AuthResult {
	return s.finish(OpLogin, s.login(ctx, creds))
}

func (s *Service) login(ctx context.Context, creds models.Credentials) *models.AuthResult {
	user, err := s.store.GetUserByUsernameOrEmail(ctx, creds.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.Warn("login failed: user not found")
			return models.Fail(models.FailureAuthentication, msgInvalidCredentials)
		}
		return s.infraFailure(OpLogin, err)
	}

	if !user.IsActive {
		s.logger.Warn("login failed: account deactivated", zap.Int64("user_id", user.ID))
		return models.Fail(models.FailureAuthentication, msgAccountDeactivated)
	}

	ok, err := s.hasher.Verify(ctx, user.PasswordHash, creds.Password)
	if err != nil {
		return s.infraFailure(OpLogin, err)
	}
	if !ok {
		s.logger.Warn("login failed: invalid password", zap.Int64("user_id", user.ID))
		return models.Fail(models.FailureAuthentication, msgInvalidCredentials)
	}

	token, expiresAt, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return s.infraFailure(OpLogin, err)
	}

	result := &models.AuthResult{
		Success:   true,
		Message:   msgLoginSuccessful,
		Token:     token,
		ExpiresAt: &expiresAt,
		User:      user,
	}

	if creds.RememberMe {
		refreshToken, err := s.grantRefreshToken(ctx, user, RememberMeRefreshTTL)
		if err != nil {
			return s.infraFailure(OpLogin, err)
		}
		result.RefreshToken = refreshToken
	}

	s.logger.Info("user logged in",
		zap.Int64("user_id", user.ID),
		zap.Bool("remember_me", creds.RememberMe))

	return result
}

// Register creates an active account and returns an access token. The
// username is checked before the email, and no refresh token is issued.
func (s *Service) Register(ctx context.Context, reg models.Registration) *models.AuthResult {
	return s.finish(OpRegister, s.register(ctx, reg))
}

func (s *Service) register(ctx context.Context, reg models.Registration) *models.AuthResult {
	exists, err := s.store.UsernameExists(ctx, reg.Username)
	if err != nil {
		return s.infraFailure(OpRegister, err)
	}
	if exists {
		s.logger.Warn("registration rejected: username taken")
		return models.Fail(models.FailureConflict, msgUsernameExists)
	}

	exists, err = s.store.EmailExists(ctx, reg.Email)
	if err != nil {
		return s.infraFailure(OpRegister, err)
	}
	if exists {
		s.logger.Warn("registration rejected: email taken")
		return models.Fail(models.FailureConflict, msgEmailExists)
	}

	if !reg.UserType.Valid() {
		return s.infraFailure(OpRegister, models.ErrUnknownUserType)
	}

	hash, err := s.hasher.Hash(ctx, reg.Password)
	if err != nil {
		return s.infraFailure(OpRegister, err)
	}

	now := s.clock.Now().UTC()
	user := &models.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		UserType:     reg.UserType,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, storage.ErrUsernameTaken):
			return models.Fail(models.FailureConflict, msgUsernameExists)
		case errors.Is(err, storage.ErrEmailTaken):
			return models.Fail(models.FailureConflict, msgEmailExists)
		}
		return s.infraFailure(OpRegister, err)
	}

	token, expiresAt, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return s.infraFailure(OpRegister, err)
	}

	s.logger.Info("user registered",
		zap.Int64("user_id", user.ID),
		zap.Stringer("user_type", user.UserType))

	return &models.AuthResult{
		Success:   true,
		Message:   msgRegistered,
		Token:     token,
		ExpiresAt: &expiresAt,
		User:      user,
	}
}

// ValidateToken checks an access token and loads its active owner.
func (s *Service) ValidateToken(ctx context.Context, token string) *models.AuthResult {
	return s.finish(OpValidate, s.validateToken(ctx, token))
}

func (s *Service) validateToken(ctx context.Context, token string) *models.AuthResult {
	subject, ok := s.tokens.SubjectID(token)
	if !ok {
		return models.Fail(models.FailureAuthentication, msgInvalidToken)
	}

	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return models.Fail(models.FailureAuthentication, msgInvalidToken)
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		return s.infraFailure(OpValidate, err)
	}
	if user == nil || !user.IsActive {
		return models.Fail(models.FailureAuthentication, msgUserUnavailable)
	}

	return &models.AuthResult{
		Success: true,
		Message: msgTokenValid,
		User:    user,
	}
}

// RefreshToken exchanges a refresh token for a new access token and rotates
// the refresh token with a 7-day lifetime.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) *models.AuthResult {
	return s.finish(OpRefresh, s.refreshToken(ctx, refreshToken))
}

func (s *Service) refreshToken(ctx context.Context, refreshToken string) *models.AuthResult {
	user, err := s.store.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.Fail(models.FailureAuthentication, msgInvalidRefresh)
		}
		return s.infraFailure(OpRefresh, err)
	}

	if !user.IsActive {
		return models.Fail(models.FailureAuthentication, msgAccountDeactivated)
	}

	if user.RefreshTokenExpired(s.clock.Now()) {
		s.logger.Info("refresh token expired", zap.Int64("user_id", user.ID))
		return models.Fail(models.FailureAuthentication, msgRefreshExpired)
	}

	token, expiresAt, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return s.infraFailure(OpRefresh, err)
	}

	rotated, err := s.grantRefreshToken(ctx, user, RotatedRefreshTTL)
	if err != nil {
		return s.infraFailure(OpRefresh, err)
	}

	s.logger.Info("refresh token rotated", zap.Int64("user_id", user.ID))

	return &models.AuthResult{
		Success:      true,
		Message:      msgRefreshed,
		Token:        token,
		RefreshToken: rotated,
		ExpiresAt:    &expiresAt,
		User:         user,
	}
}

// Logout always succeeds. Access tokens are not revoked server-side; the
// caller is expected to discard them.
func (s *Service) Logout(_ context.Context, _ string) bool {
	s.recorder.AuthOperation(OpLogout, models.FailureNone)
	return true
}

// IsAdmin reports whether token is valid and carries the Admin role.
func (s *Service) IsAdmin(token string) bool {
	role, ok := s.tokens.RoleClaim(token)
	return ok && role == models.UserTypeAdmin
}

// grantRefreshToken stores a fresh refresh token on user and persists it,
// overwriting any previous one.
func (s *Service) grantRefreshToken(ctx context.Context, user *models.User, ttl time.Duration) (string, error) {
	refreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return "", err
	}

	now := s.clock.Now().UTC()
	user.SetRefreshToken(refreshToken, now.Add(ttl))
	user.Touch(now)

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return refreshToken, nil
}

func (s *Service) infraFailure(op string, err error) *models.AuthResult {
	s.logger.Error("auth operation failed", zap.String("operation", op), zap.Error(err))
	return models.Fail(models.FailureInfrastructure, fmt.Sprintf("%s failed: %s", op, err.Error()))
}

func (s *Service) finish(op string, result *models.AuthResult) *models.AuthResult {
	s.recorder.AuthOperation(op, result.Failure)
	return result
}
