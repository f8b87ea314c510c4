package logging

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
)

const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARNING"
	LevelError = "ERROR"
)

// Logger provides structured logging for client operations
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns fallback if none is set.
// A nil fallback yields a no-op logger.
func FromContext(ctx context.Context, fallback Logger) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	if fallback != nil {
		return fallback
	}
	return NoOp()
}

// NoOp returns a logger that discards everything
func NoOp() Logger {
	return noOpLogger{}
}

type noOpLogger struct{}

func (noOpLogger) Log(level, message string, metadata map[string]interface{}) {}

// SlogLogger adapts Logger to a slog.Handler
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps h. Metadata keys are emitted in sorted order.
func NewSlogLogger(h slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(h)}
}

// NewStdLogger creates a logger writing to w through slog's text or JSON
// handler. level is one of debug, info, warn or error; unknown levels fall
// back to info.
func NewStdLogger(w io.Writer, level, format string) *SlogLogger {
	opts := &slog.HandlerOptions{Level: slogLevel(level)}
	if strings.EqualFold(format, "json") {
		return NewSlogLogger(slog.NewJSONHandler(w, opts))
	}
	return NewSlogLogger(slog.NewTextHandler(w, opts))
}

func (l *SlogLogger) Log(level, message string, metadata map[string]interface{}) {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}
	l.logger.LogAttrs(context.Background(), slogLevel(level), message, attrs...)
}

func slogLevel(level string) slog.Level {
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
