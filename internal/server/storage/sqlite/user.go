package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/iudanet/authmodule/internal/models"
	"github.com/iudanet/authmodule/internal/server/storage"
)

const userColumns = `id, username, email, password_hash, user_type, is_active,
	refresh_token, refresh_token_expiry, created_at, updated_at`

// CreateUser creates a new user in the storage and assigns user.ID
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, user_type, is_active,
			refresh_token, refresh_token_expiry, created_at, updated_at)
		VALUES (:username, :email, :password_hash, :user_type, :is_active,
			:refresh_token, :refresh_token_expiry, :created_at, :updated_at)
	`

	result, err := s.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if conflict := uniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}
	user.ID = id

	return nil
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// GetUserByUsernameOrEmail retrieves user whose username or email equals s
func (s *Storage) GetUserByUsernameOrEmail(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? OR email = ? ORDER BY id LIMIT 1`
	return s.getUser(ctx, query, login, login)
}

// GetUserByRefreshToken retrieves user holding the refresh token
func (s *Storage) GetUserByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, storage.ErrUserNotFound
	}
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE refresh_token = ?`, token)
}

// UpdateUser overwrites user information by ID
func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET username = :username, email = :email, password_hash = :password_hash,
			user_type = :user_type, is_active = :is_active,
			refresh_token = :refresh_token, refresh_token_expiry = :refresh_token_expiry,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := s.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if conflict := uniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// UsernameExists reports whether the username is taken
func (s *Storage) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, username)
}

// EmailExists reports whether the email is taken
func (s *Storage) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, email)
}

// ListUsers returns all users ordered by ID
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}
	if err := s.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *Storage) getUser(ctx context.Context, query string, args ...any) (*models.User, error) {
	user := &models.User{}
	if err := s.db.GetContext(ctx, user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *Storage) exists(ctx context.Context, query string, arg string) (bool, error) {
	var found bool
	if err := s.db.GetContext(ctx, &found, query, arg); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return found, nil
}

// uniqueViolation maps a unique index failure to the matching storage error,
// or returns nil for any other error.
func uniqueViolation(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return nil
	}

	switch msg := sqliteErr.Error(); {
	case strings.Contains(msg, "users.username"):
		return storage.ErrUsernameTaken
	case strings.Contains(msg, "users.email"):
		return storage.ErrEmailTaken
	default:
		return fmt.Errorf("%w: %s", storage.ErrUserAlreadyExists, msg)
	}
}
