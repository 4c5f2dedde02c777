package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownUserType is returned when a role name does not match any UserType.
var ErrUnknownUserType = errors.New("unknown user type")

// UserType is the closed set of roles a user can hold.
type UserType uint8

const (
	// UserTypeUnknown is the zero value and is never persisted.
	UserTypeUnknown UserType = iota
	UserTypeEndUser
	UserTypeAdmin
	UserTypePartner
)

var userTypeNames = map[UserType]string{
	UserTypeEndUser: "EndUser",
	UserTypeAdmin:   "Admin",
	UserTypePartner: "Partner",
}

// ParseUserType converts a role name ("EndUser", "Admin", "Partner") to a UserType.
// Matching is exact.
func ParseUserType(s string) (UserType, error) {
	for t, name := range userTypeNames {
		if name == s {
			return t, nil
		}
	}
	return UserTypeUnknown, fmt.Errorf("%w: %q", ErrUnknownUserType, s)
}

// Valid reports whether t is one of the known roles.
func (t UserType) Valid() bool {
	_, ok := userTypeNames[t]
	return ok
}

func (t UserType) String() string {
	if name, ok := userTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t UserType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUserType, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *UserType) UnmarshalText(text []byte) error {
	parsed, err := ParseUserType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer; roles are stored by name.
func (t UserType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUserType, uint8(t))
	}
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *UserType) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into UserType", src)
	}
}

// User is an account record.
// PasswordHash and the refresh token pair are never serialized outward.
type User struct {
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
	RefreshToken       *string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiry *time.Time `json:"-" db:"refresh_token_expiry"`
	Username           string     `json:"username" db:"username"`
	Email              string     `json:"email" db:"email"`
	PasswordHash       string     `json:"-" db:"password_hash"`
	ID                 int64      `json:"id" db:"id"`
	UserType           UserType   `json:"userType" db:"user_type"`
	IsActive           bool       `json:"isActive" db:"is_active"`
}

// SetRefreshToken stores a refresh token together with its expiry.
// The previous token, if any, stops being usable once the user is saved.
func (u *User) SetRefreshToken(token string, expiresAt time.Time) {
	u.RefreshToken = &token
	u.RefreshTokenExpiry = &expiresAt
}

// ClearRefreshToken removes the refresh token and its expiry together.
func (u *User) ClearRefreshToken() {
	u.RefreshToken = nil
	u.RefreshTokenExpiry = nil
}

// RefreshTokenExpired reports whether the stored refresh token is missing an
// expiry or the expiry is before now.
func (u *User) RefreshTokenExpired(now time.Time) bool {
	return u.RefreshTokenExpiry == nil || u.RefreshTokenExpiry.Before(now)
}

// Touch bumps UpdatedAt, never moving it before CreatedAt.
func (u *User) Touch(now time.Time) {
	if now.Before(u.CreatedAt) {
		now = u.CreatedAt
	}
	u.UpdatedAt = now
}
