package xlog

import (
	"context"
	"os"
	"sync"

	"github.com/amberpay/go-weavr-sync/internal/common/ctxdata"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is re-exported so callers do not import zap directly.
type Field = zap.Field

var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Int64    = zap.Int64
	Uint64   = zap.Uint64
	Bool     = zap.Bool
	Any      = zap.Any
	Err      = zap.Error
	Duration = zap.Duration
	Time     = zap.Time
)

var (
	mu     sync.Mutex
	logger = zap.NewNop()
)

type initOptions struct {
	level  zapcore.Level
	devEnv bool
}

type InitOption func(*initOptions)

func WithLevel(level string) InitOption {
	return func(o *initOptions) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithDevOutput() InitOption {
	return func(o *initOptions) { o.devEnv = true }
}

// Init builds the process-wide logger. appName is attached to every entry.
func Init(appName string, opts ...InitOption) {
	fOpts := &initOptions{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(fOpts)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if fOpts.devEnv {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), fOpts.level)

	mu.Lock()
	defer mu.Unlock()
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).
		With(zap.String("app", appName))
}

// InitForTest silences the logger, for use in TestMain.
func InitForTest() {
	mu.Lock()
	defer mu.Unlock()
	logger = zap.NewNop()
}

// Base exposes the underlying zap logger for integrations (e.g. nrzap).
func Base() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func Sync() {
	_ = Base().Sync()
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if cid := ctxdata.GetCorrelationId(ctx); cid != "" {
		fields = append(fields, zap.String("correlationId", cid))
	}
	if host := ctxdata.GetHost(ctx); host != "" {
		fields = append(fields, zap.String("host", host))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	Base().Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	Base().Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	Base().Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	Base().Error(msg, withCtx(ctx, fields)...)
}

func Fatal(ctx context.Context, msg string, fields ...Field) {
	Base().Fatal(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Base().Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	Base().Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	Base().Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	Base().Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	Base().Sugar().Fatalf(format, args...)
}
