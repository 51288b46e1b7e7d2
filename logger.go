package topk

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with selector-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (retention count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// debugEnabled reports whether LogSelect would produce output.
func (l *Logger) debugEnabled() bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// LogSelect logs a completed top-k selection.
func (l *Logger) LogSelect(ctx context.Context, stats SelectStats) {
	l.DebugContext(ctx, "top-k selection completed",
		"scanned", stats.Scanned,
		"retained", stats.Retained,
		"accepted", stats.Accepted,
		"compactions", stats.Compactions,
	)
}

// LogConstruct logs a selector construction.
func (l *Logger) LogConstruct(ctx context.Context, s Strategy, k int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "selector construction failed",
			"strategy", s.String(),
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "selector constructed",
			"strategy", s.String(),
			"k", k,
		)
	}
}
