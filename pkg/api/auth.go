// Package api holds the JSON bodies exchanged between the auth server and
// its clients.
package api

import "time"

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
	RememberMe      bool   `json:"rememberMe"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email,max=100"`
	Password        string `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	UserType        string `json:"userType" validate:"required,usertype"`
	AcceptTerms     bool   `json:"acceptTerms" validate:"eq=true"`
}

// User is the public view of an account. It never carries the password hash
// or refresh token.
type User struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	UserType  string    `json:"userType"`
	ID        int64     `json:"id"`
	IsActive  bool      `json:"isActive"`
}

// AuthResponse is returned by login, register, validate and refresh.
type AuthResponse struct {
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	User         *User      `json:"user,omitempty"`
	Message      string     `json:"message"`
	Token        string     `json:"token,omitempty"`
	RefreshToken string     `json:"refreshToken,omitempty"`
	Success      bool       `json:"success"`
}

// LogoutResponse is returned by POST /api/auth/logout.
type LogoutResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// UserSummary is one row of the admin users listing.
type UserSummary struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	UserType  string    `json:"userType"`
	ID        int64     `json:"id"`
}

// UsersResponse is the body of GET /api/data/users.
type UsersResponse struct {
	Data    []UserSummary `json:"data"`
	Success bool          `json:"success"`
}

// ErrorResponse is the failure envelope of the data endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
