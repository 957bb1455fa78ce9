package xlogq

import (
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrorHandler receives failures that must not travel back through the queue:
// listener errors and panics, and failed queued actions.
type ErrorHandler func(error)

var (
	fallbackOnce sync.Once
	fallback     *zap.Logger
)

func fallbackLogger() *zap.Logger {
	fallbackOnce.Do(func() {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), zapcore.WarnLevel)
		fallback = zap.New(core).Named("xlogq")
	})
	return fallback
}

// DefaultErrorHandler writes diagnostics to stderr through zap.
func DefaultErrorHandler(err error) {
	ZapErrorHandler(fallbackLogger())(err)
}

// ZapErrorHandler reports failures through l.
func ZapErrorHandler(l *zap.Logger) ErrorHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return func(err error) {
		var le *ListenerError
		if errors.As(err, &le) {
			fields := []zap.Field{zap.String("subscription", le.Subscription.String()), zap.Error(err)}
			if le.Event != nil {
				fields = append(fields, zap.Stringer("level", le.Event.Level), zap.String("tag", le.Event.TagText()))
			}
			l.Warn("listener failed", fields...)
			return
		}
		l.Warn("queued action failed", zap.Error(err))
	}
}
