package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/iudanet/authmodule/internal/config"
	"github.com/iudanet/authmodule/internal/crypto"
	"github.com/iudanet/authmodule/internal/logger"
	"github.com/iudanet/authmodule/internal/server/auth"
	"github.com/iudanet/authmodule/internal/server/jwt"
	"github.com/iudanet/authmodule/internal/server/metrics"
	"github.com/iudanet/authmodule/internal/server/router"
	"github.com/iudanet/authmodule/internal/server/storage/sqlite"
	"github.com/iudanet/authmodule/internal/validation"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log, closeLog, err := logger.New(logger.Config{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		Dev:   cfg.LogDev,
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close storage", zap.Error(err))
		}
	}()

	hasher, err := crypto.NewPasswordHasher(cfg.BcryptCost, cfg.HashWorkers)
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}

	tokens, err := jwt.NewService(jwt.Config{
		Secret:         []byte(cfg.JWTSecret),
		Issuer:         cfg.JWTIssuer,
		Audience:       cfg.JWTAudience,
		AccessTokenTTL: cfg.JWTExpiry,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(metrics.Options{Registerer: registry, Gatherer: registry})
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	authService := auth.NewService(log.Named("auth"), store, tokens, hasher, auth.WithRecorder(m))

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: router.New(router.Deps{
			Logger:         log,
			Auth:           authService,
			Store:          store,
			Validator:      validation.New(),
			Metrics:        m,
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Version:        Version,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("version", Version),
			zap.String("database", cfg.DatabasePath),
			zap.Duration("access_token_ttl", tokens.AccessTokenTTL()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server", zap.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("AuthModule Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
