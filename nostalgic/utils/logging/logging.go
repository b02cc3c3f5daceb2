package logging

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Loggers are no-ops until InitLogger runs, so packages and tests can log freely.
var (
	AppLogger     = zap.NewNop()
	RequestLogger = zap.NewNop()
	TimerLogger   = zap.NewNop()
	ErrorLogger   = zap.NewNop()
)

type traceKey struct{}

// WithTraceID stores the request trace id on ctx.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

// ensureLogsDir makes sure the log folder exists
func ensureLogsDir(dir string) error {
	return os.MkdirAll(dir, os.ModePerm)
}

func rotating(dir, name string, maxSize, maxAge int) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename: filepath.Join(dir, name), MaxSize: maxSize, MaxAge: maxAge, Compress: true,
	})
}

// InitLogger writes JSON logs to rotating files under dir. App and error logs
// are also mirrored to stderr.
func InitLogger(dir string) error {
	if err := ensureLogsDir(dir); err != nil {
		return err
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	console := zapcore.NewConsoleEncoder(encoderConfig)
	stderr := zapcore.Lock(os.Stderr)

	// app.log (general logs)
	appCore := zapcore.NewTee(
		zapcore.NewCore(encoder, rotating(dir, "app.log", 100, 28), zap.InfoLevel),
		zapcore.NewCore(console, stderr, zap.InfoLevel),
	)
	AppLogger = zap.New(appCore)

	requestCore := zapcore.NewCore(encoder, rotating(dir, "request.log", 50, 7), zap.InfoLevel)
	RequestLogger = zap.New(requestCore)

	timerCore := zapcore.NewCore(encoder, rotating(dir, "timer.log", 50, 7), zap.InfoLevel)
	TimerLogger = zap.New(timerCore)

	errorCore := zapcore.NewTee(
		zapcore.NewCore(encoder, rotating(dir, "error.log", 100, 30), zap.ErrorLevel),
		zapcore.NewCore(console, stderr, zap.ErrorLevel),
	)
	ErrorLogger = zap.New(errorCore, zap.AddCaller())
	return nil
}

// Sync flushes every logger; call before exit.
func Sync() {
	for _, l := range []*zap.Logger{AppLogger, RequestLogger, TimerLogger, ErrorLogger} {
		_ = l.Sync()
	}
}

// LogDuration lets you do: defer logging.LogDuration(ctx, "FuncName")()
func LogDuration(ctx context.Context, name string) func() {
	start := time.Now()
	traceID := TraceID(ctx)

	return func() {
		duration := time.Since(start).Milliseconds()
		fields := []zap.Field{
			zap.String("func", name),
			zap.Int64("duration_ms", duration),
		}
		if traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}

		// write ONLY to timer.log
		TimerLogger.Info("Function timed", fields...)
	}
}
