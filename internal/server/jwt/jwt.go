// Package jwt issues and verifies the HS256 access tokens and generates the
// opaque refresh tokens handed out by the auth service.
package jwt

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/authmodule/internal/models"
)

const (
	// MinSecretLength is the minimum HMAC secret size (256 bits).
	MinSecretLength = 32

	// DefaultAccessTokenTTL is the validity window of an access token.
	DefaultAccessTokenTTL = 60 * time.Minute

	refreshTokenBytes = 32

	// expiryLeeway lets the library accept now == exp at second precision;
	// Parse then rejects anything strictly past exp itself.
	expiryLeeway = time.Second
)

var (
	// ErrSecretTooShort is returned by NewService for secrets below MinSecretLength.
	ErrSecretTooShort = fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLength)

	// ErrInvalidToken indicates a token that parsed but did not validate.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired indicates a token whose exp is in the past.
	ErrTokenExpired = errors.New("token has expired")
)

// Config holds the immutable signing configuration.
type Config struct {
	Issuer         string
	Audience       string
	Secret         []byte
	AccessTokenTTL time.Duration
}

// Claims are the claims carried by an access token.
type Claims struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserType `json:"role"`
	jwtlib.RegisteredClaims
}

// Service issues and verifies HS256 access tokens and generates opaque refresh tokens.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	clock  clockwork.Clock
	parser *jwtlib.Parser
	cfg    Config
}

// NewService creates a token service. A nil clock means the real clock.
func NewService(cfg Config, clock clockwork.Clock) (*Service, error) {
	if len(cfg.Secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	// the secret is read-only after startup
	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)
	cfg.Secret = secret

	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(cfg.Issuer),
		jwtlib.WithAudience(cfg.Audience),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithLeeway(expiryLeeway),
		jwtlib.WithTimeFunc(clock.Now),
	)

	return &Service{
		clock:  clock,
		parser: parser,
		cfg:    cfg,
	}, nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *Service) AccessTokenTTL() time.Duration {
	return s.cfg.AccessTokenTTL
}

// IssueAccessToken signs a new access token for user.
func (s *Service) IssueAccessToken(user *models.User) (string, time.Time, error) {
	// claims carry whole seconds, so the reported expiry does too
	now := s.clock.Now().Truncate(jwtlib.TimePrecision)
	expiresAt := now.Add(s.cfg.AccessTokenTTL)

	claims := Claims{
		Name:  user.Username,
		Email: user.Email,
		Role:  user.UserType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    s.cfg.Issuer,
			Audience:  jwtlib.ClaimStrings{s.cfg.Audience},
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			IssuedAt:  jwtlib.NewNumericDate(now),
			NotBefore: jwtlib.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.cfg.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// GenerateRefreshToken returns a random opaque refresh token (256 bits, base64url).
func (s *Service) GenerateRefreshToken() (string, error) {
	tokenBytes := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(tokenBytes), nil
}

// Parse validates token and returns its claims.
func (s *Service) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := s.parser.ParseWithClaims(token, claims, s.keyFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	// a token is still valid at the instant of its expiry
	if s.clock.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// Validate reports whether token has a valid signature, issuer, audience and
// has not expired. Malformed input is simply invalid.
func (s *Service) Validate(token string) bool {
	_, err := s.Parse(token)
	return err == nil
}

// SubjectID returns the subject claim of a valid token.
func (s *Service) SubjectID(token string) (string, bool) {
	claims, err := s.Parse(token)
	if err != nil || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// RoleClaim returns the role claim of a valid token.
func (s *Service) RoleClaim(token string) (models.UserType, bool) {
	claims, err := s.Parse(token)
	if err != nil || !claims.Role.Valid() {
		return models.UserTypeUnknown, false
	}
	return claims.Role, true
}

func (s *Service) keyFunc(token *jwtlib.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwtlib.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.cfg.Secret, nil
}
