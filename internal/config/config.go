// Package config loads server configuration from the environment, an
// optional .env file and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// MinSecretLength is the minimum JWT signing secret size in bytes.
const MinSecretLength = 32

// Config is the immutable server configuration.
type Config struct {
	HTTPAddr           string
	DatabasePath       string
	JWTSecret          string
	JWTIssuer          string
	JWTAudience        string
	LogLevel           string
	LogFile            string
	CORSAllowedOrigins []string
	JWTExpiry          time.Duration
	ShutdownTimeout    time.Duration
	BcryptCost         int
	HashWorkers        int
	LogDev             bool
	ShowVersion        bool
}

// Default returns the configuration used when nothing is set.
// JWTSecret has no default and must be provided.
func Default() Config {
	return Config{
		HTTPAddr:           ":5000",
		DatabasePath:       "authmodule.db",
		JWTIssuer:          "AuthModule",
		JWTAudience:        "AuthModuleUsers",
		JWTExpiry:          60 * time.Minute,
		BcryptCost:         11,
		HashWorkers:        runtime.GOMAXPROCS(0),
		CORSAllowedOrigins: []string{"*"},
		LogLevel:           "info",
		ShutdownTimeout:    10 * time.Second,
	}
}

// Load reads .env (if present), then the environment, then args.
func Load(args []string) (*Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	return parse(args, os.LookupEnv)
}

func parse(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("authmodule", flag.ContinueOnError)
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Optional log file, rotated daily")
	fs.BoolVar(&cfg.LogDev, "log-dev", cfg.LogDev, "Human-readable development logging")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return &cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("HTTP_ADDR", &c.HTTPAddr)
	str("DATABASE_PATH", &c.DatabasePath)
	str("JWT_SECRET", &c.JWTSecret)
	str("JWT_ISSUER", &c.JWTIssuer)
	str("JWT_AUDIENCE", &c.JWTAudience)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FILE", &c.LogFile)

	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		c.CORSAllowedOrigins = splitList(v)
	}

	var errs []error
	if err := envDuration(lookup, "JWT_EXPIRY", &c.JWTExpiry); err != nil {
		errs = append(errs, err)
	}
	if err := envDuration(lookup, "SHUTDOWN_TIMEOUT", &c.ShutdownTimeout); err != nil {
		errs = append(errs, err)
	}
	if err := envInt(lookup, "BCRYPT_COST", &c.BcryptCost); err != nil {
		errs = append(errs, err)
	}
	if err := envInt(lookup, "HASH_WORKERS", &c.HashWorkers); err != nil {
		errs = append(errs, err)
	}
	if v, ok := lookup("LOG_DEV"); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid LOG_DEV: %w", err))
		}
		c.LogDev = dev
	}

	return errors.Join(errs...)
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if len(c.JWTSecret) < MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", MinSecretLength))
	}
	if c.JWTIssuer == "" {
		errs = append(errs, errors.New("JWT_ISSUER must not be empty"))
	}
	if c.JWTAudience == "" {
		errs = append(errs, errors.New("JWT_AUDIENCE must not be empty"))
	}
	if c.JWTExpiry <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.HashWorkers <= 0 {
		errs = append(errs, errors.New("HASH_WORKERS must be positive"))
	}
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH must not be empty"))
	}

	return errors.Join(errs...)
}

func envDuration(lookup func(string) (string, bool), key string, dst *time.Duration) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func envInt(lookup func(string) (string, bool), key string, dst *int) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
