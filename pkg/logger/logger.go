package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/narwhalmedia/cinedex/pkg/interfaces"
)

// ZapLogger adapts a zap logger to interfaces.Logger.
type ZapLogger struct {
	logger *zap.Logger
}

// Wrap adapts an existing zap logger.
func Wrap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: l}
}

// Zap exposes the underlying zap logger for libraries that want one (gorm, nats).
func (l *ZapLogger) Zap() *zap.Logger {
	return l.logger
}

func (l *ZapLogger) Debug(msg string, fields ...interfaces.Field) {
	l.logger.Debug(msg, convertFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields ...interfaces.Field) {
	l.logger.Info(msg, convertFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields ...interfaces.Field) {
	l.logger.Warn(msg, convertFields(fields)...)
}

func (l *ZapLogger) Error(msg string, fields ...interfaces.Field) {
	l.logger.Error(msg, convertFields(fields)...)
}

func (l *ZapLogger) Fatal(msg string, fields ...interfaces.Field) {
	l.logger.Fatal(msg, convertFields(fields)...)
}

// WithContext attaches the request id carried by ctx, if any.
func (l *ZapLogger) WithContext(ctx context.Context) interfaces.Logger {
	if id, ok := ctx.Value(sessionIDKey).(string); ok && id != "" {
		return l.WithFields(interfaces.String("session_id", id))
	}
	return l
}

func (l *ZapLogger) WithFields(fields ...interfaces.Field) interfaces.Logger {
	return &ZapLogger{logger: l.logger.With(convertFields(fields)...)}
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func convertFields(fields []interfaces.Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, field := range fields {
		if err, ok := field.Value.(error); ok && field.Key == "error" {
			zapFields[i] = zap.Error(err)
			continue
		}
		zapFields[i] = zap.Any(field.Key, field.Value)
	}
	return zapFields
}

// FromZap returns the zap logger behind l, or a no-op zap logger when l is
// not zap-backed.
func FromZap(l interfaces.Logger) *zap.Logger {
	if z, ok := l.(*ZapLogger); ok {
		return z.logger
	}
	return zap.New(zapcore.NewNopCore())
}

func String(key, value string) interfaces.Field {
	return interfaces.String(key, value)
}

func Int(key string, value int) interfaces.Field {
	return interfaces.Int(key, value)
}

func Error(err error) interfaces.Field {
	return interfaces.Error(err)
}
