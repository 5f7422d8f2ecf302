// Package logging builds the zap logger used by the spantree command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Validation errors.
var (
	ErrInvalidLevel  = errors.New("logging: invalid log level")
	ErrInvalidFormat = errors.New("logging: invalid log format")
)

// Config holds logger configuration options
type Config struct {
	// Format specifies the log output format: "json" or "text" ("console" is an alias)
	Format string
	// Level specifies the minimum log level: "debug", "info", "warn", "error"
	Level string
	// Output specifies where logs are written (defaults to os.Stderr)
	Output io.Writer
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Format: "text",
		Level:  "info",
		Output: os.Stderr,
	}
}

// NewLogger creates a new zap logger based on the provided configuration
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "json", "":
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case "text", "console":
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(output), level)

	return zap.New(core, zap.AddCaller()), nil
}

// DiscardLogger returns a logger that discards all output (useful for tests)
func DiscardLogger() *zap.Logger {
	return zap.NewNop()
}

// ParseLevel converts a string level to zapcore.Level
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
}
