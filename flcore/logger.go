package flcore

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
)

// Logger is the structured logger used by vending machines and sessions.
type Logger interface {
	With(args ...any) Logger
	WithGroup(name string) Logger
	Debug(msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
	Info(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	Warn(msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	Error(msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

type slogLogger struct {
	*slog.Logger
}

func (l *slogLogger) With(args ...any) Logger { return &slogLogger{l.Logger.With(args...)} }
func (l *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{l.Logger.WithGroup(name)}
}

// New wraps a slog.Handler as Logger.
func New(h slog.Handler) Logger { return &slogLogger{slog.New(h)} }

// Default wraps slog.Default().
func Default() Logger { return &slogLogger{slog.Default()} }

// Discard drops every record.
func Discard() Logger {
	return New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// NewTextLogger writes text records at or above level to w.
func NewTextLogger(w io.Writer, level slog.Level) Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel converts "debug", "info", "warn" or "error" to slog.Level, defaults to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewTestLogger sends records to t.Log.
func NewTestLogger(t *testing.T, opt ...slogt.Option) Logger {
	return &slogLogger{slogt.New(t, opt...)}
}
