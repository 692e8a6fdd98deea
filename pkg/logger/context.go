package logger

import (
	"context"

	"github.com/narwhalmedia/cinedex/pkg/interfaces"
)

type contextKey int

const (
	loggerKey contextKey = iota
	sessionIDKey
)

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) interfaces.Logger {
	if l, ok := ctx.Value(loggerKey).(interfaces.Logger); ok {
		return l
	}
	return NewNoop()
}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l interfaces.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// WithSessionID tags ctx with a browsing session id picked up by ZapLogger.WithContext.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}
