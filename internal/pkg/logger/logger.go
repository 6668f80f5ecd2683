// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It emits JSON logs to stdout (and to any extra
// output paths, such as a log file), carries request-scoped fields through a
// context.Context, and stamps every entry made under an active span with its
// trace and span ids. When a telemetry LoggerProvider is registered, an OTEL
// bridge core forwards the same entries to the telemetry backend.
package logger

import (
	"context"
	"sync"

	"github.com/gabapcia/lakewatch/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the private type of the context key holding a derived logger.
type ctxKeyType struct{}

var (
	// ctxKey identifies the derived logger stored in a context by Derive.
	ctxKey = ctxKeyType{}

	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

// config holds configuration options for the logger.
type config struct {
	level       string   // the minimum log level (debug, info, warn, error, panic, fatal)
	outputPaths []string // extra sinks besides stdout, opened with zap.Open
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutputPaths adds sinks (file paths or zap sink URLs) the logger writes to
// in addition to stdout. Empty paths are ignored.
func WithOutputPaths(paths ...string) Option {
	return func(c *config) {
		for _, p := range paths {
			if p != "" {
				c.outputPaths = append(c.outputPaths, p)
			}
		}
	}
}

// Init configures the global logger. By default it logs JSON to stdout at the
// "info" level. Calling Init multiple times has no effect after the first
// successful initialization.
//
// Returns an error if the level cannot be parsed or an output path cannot be opened.
func Init(opts ...Option) error {
	cfg := config{level: "info"}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	var initErr error
	initBaseLoggerOnce.Do(func() {
		sink, _, err := zap.Open(append([]string{"stdout"}, cfg.outputPaths...)...)
		if err != nil {
			initErr = err
			return
		}

		cores := []zapcore.Core{
			zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, level),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(telemetry.InstrumentationName, otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})
	if initErr != nil {
		initBaseLoggerOnce = sync.Once{}
	}

	return initErr
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger), extended
// with the active span's ids and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	logger, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		logger = baseLogger
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", spanCtx.TraceID().String(),
			"span_id", spanCtx.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return logger
	}

	return logger.With(keysAndValues...)
}

// Derive returns a child context whose logger carries the given key/value
// pairs on every subsequent entry logged with that context.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	logger, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		logger = baseLogger
	}

	return context.WithValue(ctx, ctxKey, logger.With(keysAndValues...))
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
