package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logging configuration
type Config struct {
	// Level is the minimum log level
	Level slog.Level

	// Format is the output format: text, json or compact
	Format string

	// Output is the output writer
	Output io.Writer
}

// DefaultConfig returns the default logging configuration
func DefaultConfig() *Config {
	return &Config{
		Level:  slog.LevelInfo,
		Format: "compact",
		Output: os.Stderr,
	}
}

// Initialize initializes the global logger with the given configuration
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	globalLevel.Set(cfg.Level)
	opts := &slog.HandlerOptions{Level: globalLevel}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	case "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		handler = NewCompactHandler(output, opts)
	}
	SetGlobalLogger(slog.New(handler))
}

// SetLevel changes the level of the global logger in place
func SetLevel(level slog.Level) {
	globalLevel.Set(level)
}

// ParseLevel parses a string log level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
