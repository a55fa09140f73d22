package wordvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with wordvec-specific context.
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

// WithSource adds the model source (path, blob name) to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogLoad logs the outcome of a model load.
func (l *Logger) LogLoad(source string, words, dim, skipped int, err error) {
	if err != nil {
		l.Error("model load failed",
			"source", source,
			"error", err,
		)
		return
	}
	if skipped > 0 {
		l.Warn("model loaded with dropped records",
			"source", source,
			"words", words,
			"dimension", dim,
			"skipped", skipped,
		)
		return
	}
	l.Info("model loaded",
		"source", source,
		"words", words,
		"dimension", dim,
	)
}

// LogRank logs a ranking query.
func (l *Logger) LogRank(topN, results int, err error) {
	if err != nil {
		l.Error("rank failed",
			"topN", topN,
			"error", err,
		)
	} else {
		l.Debug("rank completed",
			"topN", topN,
			"results", results,
		)
	}
}
