package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/authmodule/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	session, err := c.session.Status(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'authctl login' to authenticate.")
		return nil
	case errors.Is(err, auth.ErrSessionExpired):
		c.io.Println("Status: Session expired")
		c.io.Println()
		c.io.Println("Run 'authctl login' to authenticate again.")
		return nil
	case err != nil:
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	data := session.Auth
	username, email, userType := data.Username, data.Email, data.UserType
	if u := session.User; u != nil {
		username, email, userType = u.Username, u.Email, u.UserType
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", username)
	c.io.Printf("Email: %s\n", email)
	c.io.Printf("User type: %s\n", userType)

	if !data.ExpiresAt.IsZero() {
		c.io.Printf("Token expires: %s\n", data.ExpiresAt.Format(time.RFC3339))
		if remaining := data.ExpiresAt.Sub(c.clock.Now()); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		}
	}

	if data.HasRefreshToken() {
		c.io.Println("Refresh token: stored")
	} else {
		c.io.Println("Refresh token: none")
	}
	if session.Refreshed {
		c.io.Println()
		c.io.Println("✓ Access token was renewed using the refresh token.")
	}

	return nil
}
