package cli

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/iudanet/authmodule/internal/client/iocli"
)

const (
	defaultServerURL = "http://localhost:5000"
	defaultDBPath    = "authctl.db"
)

// Connector opens the session for one invocation. The returned function
// releases it.
type Connector func(ctx context.Context, serverURL, dbPath string) (Session, func() error, error)

// runner adapts a command body to a cobra RunE.
type runner func(fn func(ctx context.Context) error) func(*cobra.Command, []string) error

// Options configure the root command.
type Options struct {
	IO      iocli.IO
	Connect Connector
	Clock   clockwork.Clock
	Version string
}

// NewRootCommand builds the authctl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	c := New(opts.IO, nil, opts.Clock)

	var serverURL, dbPath string

	root := &cobra.Command{
		Use:           "authctl",
		Short:         "Command-line client for the auth server",
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(opts.IO)
	root.SetErr(opts.IO)

	flags := root.PersistentFlags()
	flags.StringVar(&serverURL, "server", defaultServerURL, "Server URL")
	flags.StringVar(&dbPath, "db", defaultDBPath, "Path to local session database")
	flags.StringVar(&c.passwords.FromArgs, "password", "", "Password (not recommended, use "+PasswordEnv+" or --password-file)")
	flags.StringVar(&c.passwords.FromFile, "password-file", "", "Path to file containing the password")

	// with opens the session around fn
	var with runner = func(fn func(ctx context.Context) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			session, release, err := opts.Connect(ctx, serverURL, dbPath)
			if err != nil {
				return fmt.Errorf("failed to open session: %w", err)
			}
			defer func() { _ = release() }()

			c.session = session
			return fn(ctx)
		}
	}

	root.AddCommand(
		c.registerCommand(with),
		c.loginCommand(with),
		&cobra.Command{
			Use:   "logout",
			Short: "Log out and remove the local session",
			Args:  cobra.NoArgs,
			RunE:  with(c.runLogout),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show authentication status",
			Args:  cobra.NoArgs,
			RunE:  with(c.runStatus),
		},
		&cobra.Command{
			Use:   "refresh",
			Short: "Renew the access token using the stored refresh token",
			Args:  cobra.NoArgs,
			RunE:  with(c.runRefresh),
		},
		&cobra.Command{
			Use:   "users",
			Short: "List all users (admin only)",
			Args:  cobra.NoArgs,
			RunE:  with(c.runUsers),
		},
	)

	return root
}
