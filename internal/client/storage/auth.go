package storage

import (
	"context"
	"time"
)

// AuthStorage persists the client session between invocations.
// It plays the role a browser's localStorage plays for the web frontend.
type AuthStorage interface {
	// SaveAuth replaces the stored session.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth returns the stored session or ErrAuthNotFound.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session. Returns ErrAuthNotFound if
	// there was nothing to remove.
	DeleteAuth(ctx context.Context) error
}

// AuthData is the locally stored session.
type AuthData struct {
	ExpiresAt    time.Time `json:"expiresAt"`
	SavedAt      time.Time `json:"savedAt"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	UserType     string    `json:"userType"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	UserID       int64     `json:"userId"`
}

// HasRefreshToken reports whether the session can be renewed without a
// password, i.e. the login used "remember me".
func (a *AuthData) HasRefreshToken() bool {
	return a.RefreshToken != ""
}

// Expired reports whether the access token expiry has passed at now.
func (a *AuthData) Expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && now.After(a.ExpiresAt)
}
