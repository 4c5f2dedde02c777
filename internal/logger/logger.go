// Package logger builds the process-wide zap logger.
package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	rotationTime = 24 * time.Hour
	maxAge       = 7 * 24 * time.Hour
)

// Config controls logger construction.
type Config struct {
	Level string
	// File, when set, receives a copy of every entry and is rotated daily.
	File string
	// Output is the console sink; nil means stdout.
	Output zapcore.WriteSyncer
	Dev    bool
}

// ParseLevel maps a level name to a zap level; unknown names mean info.
func ParseLevel(l string) zapcore.Level {
	switch strings.ToLower(l) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a logger writing to the console and optionally a rotated file.
// The returned close function flushes and releases the file.
func New(cfg Config) (*zap.Logger, func() error, error) {
	lvl := ParseLevel(cfg.Level)

	var encoder zapcore.Encoder
	if cfg.Dev {
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	out := cfg.Output
	if out == nil {
		out = zapcore.Lock(os.Stdout)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, out, lvl),
	}

	closeFn := func() error { return nil }

	if cfg.File != "" {
		rl, err := rotatelogs.New(
			cfg.File+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithRotationTime(rotationTime),
			rotatelogs.WithMaxAge(maxAge),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		fileEncoderCfg := zap.NewProductionEncoderConfig()
		fileEncoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderCfg), zapcore.AddSync(rl), lvl))
		closeFn = rl.Close
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Dev {
		opts = append(opts, zap.Development())
	}

	log := zap.New(zapcore.NewTee(cores...), opts...)

	return log, func() error {
		_ = log.Sync()
		return closeFn()
	}, nil
}
