package auth

import (
	"context"

	"github.com/iudanet/authmodule/pkg/api"
)

//go:generate moq -out api_mock_test.go . API

// API is the part of the server client used by the session service.
type API interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Validate(ctx context.Context, token string) (*api.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Users(ctx context.Context, token string) ([]api.UserSummary, error)
}
