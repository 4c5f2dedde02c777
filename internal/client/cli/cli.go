// Package cli implements the authctl commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/authmodule/internal/client/auth"
	"github.com/iudanet/authmodule/internal/client/iocli"
	"github.com/iudanet/authmodule/internal/client/storage"
	"github.com/iudanet/authmodule/pkg/api"
)

// PasswordEnv, when set, is used instead of prompting for a password.
const PasswordEnv = "AUTHCTL_PASSWORD"

//go:generate moq -out session_mock_test.go . Session

// Session is the client-side auth flow the commands drive.
type Session interface {
	Login(ctx context.Context, usernameOrEmail, password string, remember bool) (*storage.AuthData, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Refresh(ctx context.Context) (*storage.AuthData, error)
	Status(ctx context.Context) (*auth.Session, error)
	Logout(ctx context.Context) error
	Users(ctx context.Context) ([]api.UserSummary, error)
}

// Passwords are the non-interactive password sources.
type Passwords struct {
	FromFile string
	FromArgs string
}

// Cli holds the state shared by all commands of one invocation.
type Cli struct {
	io        iocli.IO
	session   Session
	clock     clockwork.Clock
	passwords Passwords
}

// New creates a Cli bound to an already connected session.
func New(io iocli.IO, session Session, clock clockwork.Clock) *Cli {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cli{io: io, session: session, clock: clock}
}

// getPassword reads a password from, in order of priority:
// 1. the AUTHCTL_PASSWORD environment variable
// 2. the file given by --password-file
// 3. the --password flag
// 4. an interactive prompt
func (c *Cli) getPassword(prompt string) (string, error) {
	if passwordFromEnv() {
		return os.Getenv(PasswordEnv), nil
	}

	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", errors.New("password file is empty")
		}
		return password, nil
	}

	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}

func passwordFromEnv() bool {
	return os.Getenv(PasswordEnv) != ""
}

// inputOr returns value when set and otherwise prompts for it.
func (c *Cli) inputOr(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}
