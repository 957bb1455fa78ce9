package zerologlistener

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	root "github.com/trickstertwo/xlogq"
)

// Listener forwards events to an rs/zerolog logger.
//
//   - Checks an atomic minimum first to avoid allocating a zerolog.Event when
//     the level is disabled.
//   - The event's capture time is written as "ts" in RFC3339Nano, so output
//     does not depend on zerolog.TimeFieldFormat.
type Listener struct {
	l   zerolog.Logger // level lowered to Trace; min does the filtering
	min atomic.Int32   // zerolog.Level
}

// New takes over l's level as the listener's initial minimum.
func New(l zerolog.Logger) *Listener {
	z := &Listener{l: l.Level(zerolog.TraceLevel)}
	z.min.Store(int32(l.GetLevel()))
	return z
}

func (z *Listener) OnLog(ev *root.Event) error {
	lvl := mapLevel(ev.Level)
	if lvl < zerolog.Level(z.min.Load()) {
		return nil
	}

	e := z.l.WithLevel(lvl)
	if e == nil {
		return nil
	}
	e.Str("ts", ev.At.UTC().Format(time.RFC3339Nano)).
		Str("tag", ev.TagText()).
		Uint64("goroutine", ev.Goroutine)
	for i := range ev.Fields {
		appendEventField(e, &ev.Fields[i])
	}
	e.Msg(ev.Message())
	return nil
}

// SetMinLevel lets Builder and Logger.SetMinLevel propagate the minimum level.
func (z *Listener) SetMinLevel(l root.Level) {
	z.min.Store(int32(mapLevel(l)))
}

// mapLevel converts root.Level to zerolog.Level.
// LevelFatal is mapped to Error to avoid zerolog's exiting Fatal.
func mapLevel(l root.Level) zerolog.Level {
	switch {
	case l <= root.LevelVerbose:
		return zerolog.TraceLevel
	case l == root.LevelLog:
		return zerolog.DebugLevel
	case l == root.LevelInfo:
		return zerolog.InfoLevel
	case l == root.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// appendEventField writes a root.Field to a zerolog.Event.
func appendEventField(e *zerolog.Event, f *root.Field) {
	switch f.Kind {
	case root.KindString:
		e.Str(f.K, f.Str)
	case root.KindInt64:
		e.Int64(f.K, f.Int64)
	case root.KindUint64:
		e.Uint64(f.K, f.Uint64)
	case root.KindFloat64:
		e.Float64(f.K, f.Float64)
	case root.KindBool:
		e.Bool(f.K, f.Bool)
	case root.KindDuration:
		e.Dur(f.K, f.Dur)
	case root.KindTime:
		e.Time(f.K, f.Time)
	case root.KindError:
		if f.Err == nil {
			return
		}
		if f.K == "" || f.K == "error" {
			e.Err(f.Err)
		} else {
			e.AnErr(f.K, f.Err)
		}
	case root.KindBytes:
		e.Bytes(f.K, f.Bytes)
	case root.KindAny:
		if m, ok := f.Any.(root.Message); ok {
			e.Str(f.K, m.Text())
			return
		}
		e.Interface(f.K, f.Any)
	default:
		// Keep a placeholder to preserve shape
		e.Interface(f.K, nil)
	}
}
