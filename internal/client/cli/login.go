package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) loginCommand(with runner) *cobra.Command {
	var (
		username string
		remember bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the server",
		Args:  cobra.NoArgs,
		RunE: with(func(ctx context.Context) error {
			return c.runLogin(ctx, username, remember)
		}),
	}
	cmd.Flags().StringVar(&username, "username", "", "Username or email")
	cmd.Flags().BoolVar(&remember, "remember", false, "Keep a refresh token so the session can be renewed")

	return cmd
}

func (c *Cli) runLogin(ctx context.Context, username string, remember bool) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	usernameOrEmail, err := c.inputOr(username, "Username or email: ")
	if err != nil {
		return err
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	session, err := c.session.Login(ctx, usernameOrEmail, password, remember)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("User type: %s\n", session.UserType)
	if !session.ExpiresAt.IsZero() {
		c.io.Printf("Access token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	}
	if session.HasRefreshToken() {
		c.io.Println("Refresh token stored, run 'authctl refresh' to renew the session.")
	}

	return nil
}
