package storage

import (
	"context"

	"github.com/iudanet/authmodule/internal/models"
)

//go:generate moq -out ../auth/user_storage_mock_test.go -pkg auth . UserStorage

// UserStorage defines the credential store used by the auth core.
// Lookups return ErrUserNotFound when nothing matches; any other error means
// the store itself failed.
type UserStorage interface {
	// GetUserByID retrieves user by ID
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// GetUserByUsernameOrEmail retrieves the user whose username or email
	// exactly equals s
	GetUserByUsernameOrEmail(ctx context.Context, s string) (*models.User, error)

	// CreateUser persists a new user and assigns user.ID.
	// Returns ErrUsernameTaken or ErrEmailTaken on unique constraint violations
	CreateUser(ctx context.Context, user *models.User) error

	// UpdateUser overwrites every mutable column of the user with the given ID.
	// Concurrent updates are last-writer-wins
	UpdateUser(ctx context.Context, user *models.User) error

	// UsernameExists reports whether the username is taken
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether the email is taken
	EmailExists(ctx context.Context, email string) (bool, error)

	// GetUserByRefreshToken retrieves the user currently holding refresh token
	GetUserByRefreshToken(ctx context.Context, token string) (*models.User, error)
}

// UserLister is implemented by stores that can enumerate accounts
// (used by the admin users endpoint).
type UserLister interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Pinger is implemented by stores that can report their availability.
type Pinger interface {
	Ping(ctx context.Context) error
}
