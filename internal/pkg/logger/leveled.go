package logger

import "context"

// LeveledLogger adapts the global logger to the context-free, leveled
// interface expected by third-party clients such as retryablehttp.
//
// Entries are logged with the context captured at construction time.
type LeveledLogger struct {
	ctx context.Context
}

// Leveled returns a LeveledLogger bound to ctx.
func Leveled(ctx context.Context) LeveledLogger {
	return LeveledLogger{ctx: ctx}
}

func (l LeveledLogger) Error(msg string, keysAndValues ...any) {
	Error(l.ctx, msg, keysAndValues...)
}

func (l LeveledLogger) Info(msg string, keysAndValues ...any) {
	Info(l.ctx, msg, keysAndValues...)
}

func (l LeveledLogger) Debug(msg string, keysAndValues ...any) {
	Debug(l.ctx, msg, keysAndValues...)
}

func (l LeveledLogger) Warn(msg string, keysAndValues ...any) {
	Warn(l.ctx, msg, keysAndValues...)
}
