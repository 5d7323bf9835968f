package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "confmerge.logger"

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return Default()
	}
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return Default()
}

// L is FromContext enriched with the command name, when one was stored
// with WithCommand.
func L(ctx context.Context) *slog.Logger {
	l := FromContext(ctx)
	if ctx == nil {
		return l
	}
	if cmd, ok := ctx.Value(commandKey).(string); ok && cmd != "" {
		l = l.With("command", cmd)
	}
	return l
}

const commandKey contextKey = "confmerge.command"

// WithCommand records the running CLI command in the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}
