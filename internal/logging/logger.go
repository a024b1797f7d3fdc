// Package logging provides the slog based logger used across dms-go.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	globalLogger *slog.Logger
	globalLevel  = new(slog.LevelVar)
	globalMu     sync.RWMutex
)

func init() {
	globalLevel.Set(slog.LevelInfo)
	globalLogger = slog.New(NewCompactHandler(os.Stderr, &slog.HandlerOptions{Level: globalLevel}))
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *slog.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	GetGlobalLogger().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	GetGlobalLogger().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	GetGlobalLogger().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	GetGlobalLogger().Error(msg, args...)
}

// DebugContext logs a debug message with the logger carried by ctx
func DebugContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).DebugContext(ctx, msg, args...)
}

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger {
	return GetGlobalLogger().With(args...)
}

// Component returns a logger with a component field
func Component(name string) *slog.Logger {
	return With("component", name)
}

// Operation returns a logger with an operation field
func Operation(name string) *slog.Logger {
	return With("operation", name)
}

// SetOutput redirects the global logger to w, keeping the current level.
// Tests use it with io.Discard to silence output.
func SetOutput(w io.Writer) {
	SetGlobalLogger(slog.New(NewCompactHandler(w, &slog.HandlerOptions{Level: globalLevel})))
}
