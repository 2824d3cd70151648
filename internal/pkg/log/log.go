package log

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var logger Logger

// Logger is the context-aware logger handed to repositories and usecases.
type Logger interface {
	Debug(ctx context.Context, message string, args ...interface{})
	Info(ctx context.Context, message string, args ...interface{})
	Warn(ctx context.Context, message string, args ...interface{})
	Error(ctx context.Context, message string, args ...interface{})
}

type zapLogger struct {
	log *otelzap.Logger
}

// Setup builds the otelzap logger used directly by handlers and middleware.
func Setup() *otelzap.Logger {
	zapLog, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return otelzap.New(zapLog, otelzap.WithMinLevel(zap.InfoLevel))
}

// SetupLogger is kept as an alias used by service wiring.
func SetupLogger() *otelzap.Logger {
	return Setup()
}

func Init(l *otelzap.Logger) {
	logger = &zapLogger{log: l}
}

func GetLogger() Logger {
	return logger
}

func (z *zapLogger) Debug(ctx context.Context, message string, args ...interface{}) {
	z.log.Ctx(ctx).Debug(message, fields(args)...)
}

func (z *zapLogger) Info(ctx context.Context, message string, args ...interface{}) {
	z.log.Ctx(ctx).Info(message, fields(args)...)
}

func (z *zapLogger) Warn(ctx context.Context, message string, args ...interface{}) {
	z.log.Ctx(ctx).Warn(message, fields(args)...)
}

func (z *zapLogger) Error(ctx context.Context, message string, args ...interface{}) {
	z.log.Ctx(ctx).Error(message, fields(args)...)
}

func fields(args []interface{}) []zap.Field {
	if len(args) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(args))
	for _, arg := range args {
		if err, ok := arg.(error); ok {
			out = append(out, zap.Error(err))
			continue
		}
		out = append(out, zap.Any("detail", arg))
	}
	return out
}
