package logging

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

// New builds the process logger. Production emits JSON; everything else uses
// the console encoder.
func New(level, env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// WithRequestID stores the request ID in a standard context.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from a standard context.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides operation-scoped logging for services.
type Logger struct {
	z *zap.Logger
}

// NewLogger creates a logger with request context. It falls back to the
// global zap logger, so zap.ReplaceGlobals must run at startup.
func NewLogger(ctx context.Context) *Logger {
	requestID := "unknown"
	if rid := RequestID(ctx); rid != "" {
		requestID = rid
	}
	return &Logger{z: zap.L().With(zap.String("request_id", requestID))}
}

// Zap exposes the underlying logger for callers that need typed fields.
func (l *Logger) Zap() *zap.Logger {
	return l.z
}

func (l *Logger) LogError(operation string, err error, fields ...zap.Field) {
	l.z.Error(operation, append(fields, zap.String("operation", operation), zap.Error(err))...)
}

func (l *Logger) LogErrorf(operation string, format string, args ...interface{}) {
	l.z.Error(fmt.Sprintf(format, args...), zap.String("operation", operation))
}

func (l *Logger) LogInfo(operation string, message string, fields ...zap.Field) {
	l.z.Info(message, append(fields, zap.String("operation", operation))...)
}

func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	l.z.Info(fmt.Sprintf(format, args...), zap.String("operation", operation))
}

func (l *Logger) LogWarn(operation string, message string, fields ...zap.Field) {
	l.z.Warn(message, append(fields, zap.String("operation", operation))...)
}

func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	l.z.Warn(fmt.Sprintf(format, args...), zap.String("operation", operation))
}
