// Package logger provides the structured diagnostic logging used by
// ofwirectl. It wraps log/slog with a process-wide logger writing to
// stderr, so command output on stdout stays clean for piping.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	slogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
)

// Init reconfigures the process logger. Verbose enables debug-level
// output.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	InitWithWriter(os.Stderr, level)
}

// InitWithWriter points the logger at a custom writer. Primarily useful
// for tests.
func InitWithWriter(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	slogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return slogger
}

// Debug logs at debug level with structured key-value args.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Info logs at info level with structured key-value args.
func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

// Warn logs at warn level with structured key-value args.
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs at error level with structured key-value args.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}
