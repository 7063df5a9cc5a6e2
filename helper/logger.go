package helper

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	topic   = "storefront-service-log"
	service = "storefront"
)

type (
	sessionIDKey struct{}
)

var (
	logger     *zap.Logger
	logLevel   = zap.NewAtomicLevelAt(zap.InfoLevel)
	InitLogger = sync.OnceFunc(func() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		logger = zap.Must(zap.Config{
			Level:             logLevel,
			Development:       false,
			DisableCaller:     true,
			DisableStacktrace: true,
			Encoding:          "json",
			EncoderConfig:     encoderCfg,
			OutputPaths:       []string{"stderr"},
			ErrorOutputPaths:  []string{"stderr"},
		}.Build())
	})
)

func GetLogger() *zap.Logger {
	InitLogger()
	return logger
}

// SetLogger replaces the process logger, tests pass zap.NewNop().
func SetLogger(l *zap.Logger) {
	InitLogger()
	logger = l
}

// SetLogLevel accepts zap level names: debug, info, warn, error.
func SetLogLevel(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	logLevel.SetLevel(parsed)
	return nil
}

// WithSessionID tags every entry logged with the returned context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey{}).(string)
	return sessionID
}

func logContext(ctx context.Context, context, scope string) *zap.Logger {
	InitLogger()
	fields := []zap.Field{
		zap.String("topic", topic),
		zap.String("context", context),
		zap.String("service", service),
	}
	if scope != "" {
		fields = append(fields, zap.String("scope", scope))
	}
	if ctx != nil {
		if sessionID := SessionIDFromContext(ctx); sessionID != "" {
			fields = append(fields, zap.String("session_id", sessionID))
		}
	}
	return logger.With(fields...)
}

func callerFields(skip int) []zap.Field {
	var name string
	pc, file, line, _ := runtime.Caller(skip + 1)
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return []zap.Field{
		zap.String("func", name),
		zap.String("file", fmt.Sprintf("%s:%d", file, line)),
		zap.Int("line", line),
	}
}

func write(entry *zap.Logger, level zapcore.Level, message string) {
	switch level {
	case zap.DebugLevel:
		entry.Debug(message)
	case zap.InfoLevel:
		entry.Info(message)
	case zap.WarnLevel:
		entry.Warn(message)
	case zap.ErrorLevel:
		entry.Error(message)
	case zap.FatalLevel:
		entry.Fatal(message)
	case zap.PanicLevel:
		entry.Panic(message)
	}
}

func Log(ctx context.Context, level zapcore.Level, message, context, scope string) {
	entry := logContext(ctx, context, scope)
	if level == zap.ErrorLevel {
		entry = entry.With(callerFields(1)...)
	}
	write(entry, level, message)
}

func Capture(ctx context.Context, level zapcore.Level, err error, context, scope string) {
	entry := logContext(ctx, context, scope)
	if level == zap.ErrorLevel {
		// ignoring pgx.ErrNoRows
		if errors.Is(err, pgx.ErrNoRows) {
			return
		}
		// no-op until sentry.Init has run
		hub := sentry.CurrentHub().Clone()
		if sessionID := SessionIDFromContext(ctx); sessionID != "" {
			hub.Scope().SetTag("session_id", sessionID)
		}
		_ = hub.CaptureException(err)
		entry = entry.With(callerFields(1)...)
	}
	write(entry, level, err.Error())
}
