package sloglistener

import (
	"context"
	"log/slog"

	root "github.com/trickstertwo/xlogq"
)

// Listener forwards events to a *slog.Logger.
// It builds slog.Attrs directly and uses LogAttrs.
type Listener struct {
	l *slog.Logger
}

func New(l *slog.Logger) *Listener {
	if l == nil {
		l = slog.Default()
	}
	return &Listener{l: l}
}

// Levels between the slog constants keep their ordering: Verbose and Log
// sit below Debug, Fatal above Error.
func toSlog(l root.Level) slog.Level {
	switch l {
	case root.LevelVerbose:
		return slog.LevelDebug - 4
	case root.LevelLog:
		return slog.LevelDebug
	case root.LevelInfo:
		return slog.LevelInfo
	case root.LevelWarn:
		return slog.LevelWarn
	case root.LevelError:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

func (s *Listener) OnLog(ev *root.Event) error {
	ctx := context.Background()
	lvl := toSlog(ev.Level)
	if !s.l.Enabled(ctx, lvl) {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(ev.Fields)+3)
	attrs = append(attrs,
		slog.Time("ts", ev.At),
		slog.String("tag", ev.TagText()),
		slog.Uint64("goroutine", ev.Goroutine),
	)
	for i := range ev.Fields {
		attrs = append(attrs, toAttr(ev.Fields[i]))
	}
	s.l.LogAttrs(ctx, lvl, ev.Message(), attrs...)
	return nil
}

func toAttr(f root.Field) slog.Attr {
	switch f.Kind {
	case root.KindString:
		return slog.String(f.K, f.Str)
	case root.KindInt64:
		return slog.Int64(f.K, f.Int64)
	case root.KindUint64:
		return slog.Uint64(f.K, f.Uint64)
	case root.KindFloat64:
		return slog.Float64(f.K, f.Float64)
	case root.KindBool:
		return slog.Bool(f.K, f.Bool)
	case root.KindDuration:
		return slog.Duration(f.K, f.Dur)
	case root.KindTime:
		return slog.Time(f.K, f.Time)
	case root.KindError:
		return slog.Any(f.K, f.Err)
	case root.KindBytes:
		return slog.Any(f.K, f.Bytes)
	case root.KindAny:
		if m, ok := f.Any.(root.Message); ok {
			return slog.String(f.K, m.Text())
		}
		return slog.Any(f.K, f.Any)
	default:
		return slog.Any(f.K, nil)
	}
}
