// Package logger holds the process-wide structured logger used by the std
// packages for rare diagnostic events (page mappings, budget exhaustion,
// foreign deallocations). It discards everything until Init is called.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Writer  io.Writer  // Destination. Default: os.Stderr
	Format  string     // "text" or "json". Default: text
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
}

// Init configures logging. Call from main() before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if strings.EqualFold(opts.Format, "json") {
		L = slog.New(slog.NewJSONHandler(w, handlerOpts))
		return
	}
	L = slog.New(slog.NewTextHandler(w, handlerOpts))
}

// ParseLevel maps a level name ("debug", "info", "warn", "error") to a slog.Level.
// Unknown names map to LevelInfo.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
