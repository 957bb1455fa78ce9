package zaplistener

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	root "github.com/trickstertwo/xlogq"
)

// Listener forwards events to a zap.Logger.
//
//   - Uses Logger.Check(level, msg) to avoid building fields when disabled.
//   - Writes the event's capture time as an RFC3339Nano string under tsKey,
//     so the timestamp is the one taken on the producer, not at dispatch.
//   - Maps LevelFatal to Error; a listener must never exit the process.
//
// SetMinLevel adjusts the backend filter only when an AtomicLevel was supplied.
type Listener struct {
	l     *zap.Logger
	al    *zap.AtomicLevel // optional, enables SetMinLevel
	tsKey string           // timestamp field key; default "ts"
}

// New creates a listener for the provided zap logger.
func New(l *zap.Logger) *Listener { return NewWithAtomicLevel(l, nil) }

// NewWithAtomicLevel wires a zap.AtomicLevel so SetMinLevel can adjust the backend.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Listener {
	return NewWithTimestampKey(l, al, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, al *zap.AtomicLevel, tsKey string) *Listener {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Listener{l: l, al: al, tsKey: tsKey}
}

func (z *Listener) OnLog(ev *root.Event) error {
	ce := z.l.Check(toZapLevel(ev.Level), ev.Message())
	if ce == nil {
		return nil
	}

	zfs := make([]zap.Field, 0, 3+len(ev.Fields))
	zfs = append(zfs,
		zap.String(z.tsKey, ev.At.UTC().Format(time.RFC3339Nano)),
		zap.String("tag", ev.TagText()),
		zap.Uint64("goroutine", ev.Goroutine),
	)
	for i := range ev.Fields {
		zfs = append(zfs, toZapField(&ev.Fields[i]))
	}
	ce.Write(zfs...)
	return nil
}

// SetMinLevel updates the backend filter when an AtomicLevel was supplied.
func (z *Listener) SetMinLevel(l root.Level) {
	if z.al == nil {
		return
	}
	z.al.SetLevel(toZapLevel(l))
}

// Close flushes zap's buffered output.
func (z *Listener) Close() error { return z.l.Sync() }

func toZapLevel(l root.Level) zapcore.Level {
	switch {
	case l <= root.LevelLog:
		return zapcore.DebugLevel // zap has nothing below debug
	case l == root.LevelInfo:
		return zapcore.InfoLevel
	case l == root.LevelWarn:
		return zapcore.WarnLevel
	default:
		// Avoid Fatal/DPanic to prevent exits in library code.
		return zapcore.ErrorLevel
	}
}

func toZapField(f *root.Field) zap.Field {
	switch f.Kind {
	case root.KindString:
		return zap.String(f.K, f.Str)
	case root.KindInt64:
		return zap.Int64(f.K, f.Int64)
	case root.KindUint64:
		return zap.Uint64(f.K, f.Uint64)
	case root.KindFloat64:
		return zap.Float64(f.K, f.Float64)
	case root.KindBool:
		return zap.Bool(f.K, f.Bool)
	case root.KindDuration:
		return zap.Duration(f.K, f.Dur) // encoder decides string vs numeric
	case root.KindTime:
		return zap.Time(f.K, f.Time)
	case root.KindError:
		if f.Err == nil {
			return zap.Skip()
		}
		if f.K == "" || f.K == "error" {
			return zap.Error(f.Err)
		}
		return zap.NamedError(f.K, f.Err)
	case root.KindBytes:
		return zap.ByteString(f.K, f.Bytes)
	case root.KindAny:
		if m, ok := f.Any.(root.Message); ok {
			return zap.String(f.K, m.Text())
		}
		return zap.Any(f.K, f.Any)
	default:
		return zap.Skip()
	}
}
