package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iudanet/authmodule/internal/client/api"
	"github.com/iudanet/authmodule/internal/client/auth"
	"github.com/iudanet/authmodule/internal/client/cli"
	"github.com/iudanet/authmodule/internal/client/iocli"
	"github.com/iudanet/authmodule/internal/client/storage/boltdb"
	"github.com/iudanet/authmodule/internal/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	log, closeLog, err := logger.New(logger.Config{
		Level:  "warn",
		Dev:    true,
		Output: zapcore.Lock(os.Stderr),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cli.Options{
		IO:      iocli.NewStdio(),
		Connect: connector(log),
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
	})

	err = root.ExecuteContext(context.Background())
	_ = closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func connector(log *zap.Logger) cli.Connector {
	return func(ctx context.Context, serverURL, dbPath string) (cli.Session, func() error, error) {
		store, err := boltdb.New(ctx, dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		session := auth.NewService(api.NewClient(serverURL), store, nil, log.Named("session"))
		return session, store.Close, nil
	}
}
