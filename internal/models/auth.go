package models

import "time"

// FailureKind classifies why an auth operation did not succeed.
type FailureKind uint8

const (
	FailureNone FailureKind = iota
	// FailureAuthentication covers bad credentials, inactive accounts and invalid tokens.
	FailureAuthentication
	// FailureConflict covers username/email collisions on registration.
	FailureConflict
	// FailureInfrastructure covers store outages and other unexpected errors.
	FailureInfrastructure
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureAuthentication:
		return "authentication"
	case FailureConflict:
		return "conflict"
	case FailureInfrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

// AuthResult is the outcome of every auth core operation.
// Token, ExpiresAt and User are only set on success; Message is always set.
type AuthResult struct {
	ExpiresAt    *time.Time  `json:"expiresAt,omitempty"`
	User         *User       `json:"user,omitempty"`
	Message      string      `json:"message"`
	Token        string      `json:"token,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Success      bool        `json:"success"`
	Failure      FailureKind `json:"-"`
}

// Fail builds an unsuccessful result.
func Fail(kind FailureKind, message string) *AuthResult {
	return &AuthResult{Success: false, Message: message, Failure: kind}
}

// Credentials are the inputs to a login attempt.
type Credentials struct {
	UsernameOrEmail string
	Password        string
	RememberMe      bool
}

// Registration are the inputs to account creation.
// Format rules are enforced before the auth core is called.
type Registration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	UserType        UserType
	AcceptTerms     bool
}
