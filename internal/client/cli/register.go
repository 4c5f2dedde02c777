package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/authmodule/pkg/api"
)

type registerFlags struct {
	username    string
	email       string
	userType    string
	acceptTerms bool
}

func (c *Cli) registerCommand(with runner) *cobra.Command {
	var f registerFlags

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: with(func(ctx context.Context) error {
			return c.runRegister(ctx, f)
		}),
	}
	cmd.Flags().StringVar(&f.username, "username", "", "Username (3-50 characters)")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.userType, "type", "", "User type: EndUser, Admin or Partner (default EndUser)")
	cmd.Flags().BoolVar(&f.acceptTerms, "accept-terms", false, "Accept the terms and conditions")

	return cmd
}

func (c *Cli) runRegister(ctx context.Context, f registerFlags) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.inputOr(f.username, "Username: ")
	if err != nil {
		return err
	}
	email, err := c.inputOr(f.email, "Email: ")
	if err != nil {
		return err
	}

	password, err := c.getPassword("Password (min 6 chars): ")
	if err != nil {
		return err
	}
	confirm := password
	if c.passwordPrompted() {
		confirm, err = c.getPassword("Confirm password: ")
		if err != nil {
			return err
		}
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	userType := f.userType
	if userType == "" {
		userType = "EndUser"
	}

	accept := f.acceptTerms
	if !accept {
		answer, err := c.io.ReadInput("Accept the terms and conditions? [y/N]: ")
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		accept = strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
	}
	if !accept {
		return errors.New("you must accept the terms and conditions")
	}

	c.io.Println()
	c.io.Println("Registering user...")

	resp, err := c.session.Register(ctx, api.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
		UserType:        userType,
		AcceptTerms:     accept,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ " + resp.Message)
	if u := resp.User; u != nil {
		c.io.Printf("User ID: %d\n", u.ID)
		c.io.Printf("Username: %s\n", u.Username)
		c.io.Printf("User type: %s\n", u.UserType)
	}
	c.io.Println()
	c.io.Println("Please run 'authctl login' to start using the service.")

	return nil
}

// passwordPrompted reports whether getPassword falls through to the prompt.
func (c *Cli) passwordPrompted() bool {
	return c.passwords.FromFile == "" && c.passwords.FromArgs == "" && !passwordFromEnv()
}
