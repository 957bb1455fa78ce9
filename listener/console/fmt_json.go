package console

import (
	"encoding/json"
	"time"

	root "github.com/trickstertwo/xlogq"
)

// JSONFormatter writes one object per line. Inline color codes are stripped.
type JSONFormatter struct{}

func (f *JSONFormatter) FormatLine(buf *buffer, ev *root.Event, static []byte, opts Options) {
	buf.writeString(`{"ts":`)
	appendJSONTime(buf, ev.At, opts)

	buf.writeString(`,"level":`)
	appendQuoted(buf, ev.Level.String())

	buf.writeString(`,"tag":`)
	appendQuoted(buf, stripColorCodes(ev.TagText()))

	buf.writeString(`,"goroutine":`)
	appendUint64(buf, ev.Goroutine)

	if !ev.Color.IsZero() {
		buf.writeString(`,"color":`)
		appendQuoted(buf, ev.Color.Name())
	}

	buf.writeString(`,"msg":`)
	appendQuoted(buf, stripColorCodes(ev.Message()))

	for i := range ev.Fields {
		appendJSONField(buf, &ev.Fields[i], opts)
	}
	if len(static) > 0 {
		buf.writeBytes(static)
	}
	buf.writeString("}\n")
}

func appendJSONTime(buf *buffer, t time.Time, opts Options) {
	switch opts.JSONTime {
	case JSONTimeUnixMillis:
		appendInt64(buf, t.UnixMilli())
	case JSONTimeUnixNanos:
		appendInt64(buf, t.UnixNano())
	default:
		buf.writeByte('"')
		appendRFC3339Nano(buf, t)
		buf.writeByte('"')
	}
}

func appendJSONDuration(buf *buffer, d time.Duration, opts Options) {
	switch opts.JSONDuration {
	case JSONDurationMillis:
		appendInt64(buf, int64(d/time.Millisecond))
	case JSONDurationNanos:
		appendInt64(buf, d.Nanoseconds())
	default:
		appendQuoted(buf, d.String())
	}
}

func appendJSONFloat(buf *buffer, f float64, bitSize int) {
	if !finite(f) {
		buf.writeBytes(litNull)
		return
	}
	appendFloat64(buf, f, bitSize)
}

func appendJSONField(buf *buffer, f *root.Field, opts Options) {
	buf.writeByte(',')
	appendQuoted(buf, f.K)
	buf.writeByte(':')

	switch f.Kind {
	case root.KindString:
		appendQuoted(buf, f.Str)
	case root.KindInt64:
		appendInt64(buf, f.Int64)
	case root.KindUint64:
		appendUint64(buf, f.Uint64)
	case root.KindFloat64:
		appendJSONFloat(buf, f.Float64, 64)
	case root.KindBool:
		appendBool(buf, f.Bool)
	case root.KindDuration:
		appendJSONDuration(buf, f.Dur, opts)
	case root.KindTime:
		appendJSONTime(buf, f.Time, opts)
	case root.KindError:
		if f.Err != nil {
			appendQuoted(buf, f.Err.Error())
		} else {
			buf.writeBytes(litNull)
		}
	case root.KindBytes:
		appendBase64(buf, f.Bytes)
	case root.KindAny:
		appendJSONAny(buf, f.Any, opts)
	default:
		buf.writeBytes(litNull)
	}
}

func appendJSONAny(buf *buffer, v any, opts Options) {
	switch vv := v.(type) {
	case nil:
		buf.writeBytes(litNull)
	case RawJSON:
		if len(vv) == 0 {
			buf.writeString(`""`)
		} else {
			buf.writeBytes(vv)
		}
	case time.Time: // before json.Marshaler so JSONTime applies
		appendJSONTime(buf, vv, opts)
	case time.Duration:
		appendJSONDuration(buf, vv, opts)
	case json.Marshaler:
		if data, err := vv.MarshalJSON(); err == nil {
			buf.writeBytes(data)
		} else {
			buf.writeBytes(litNull)
		}
	case string:
		appendQuoted(buf, vv)
	case []byte:
		appendBase64(buf, vv)
	case bool:
		appendBool(buf, vv)
	case int:
		appendInt64(buf, int64(vv))
	case int32:
		appendInt64(buf, int64(vv))
	case int64:
		appendInt64(buf, vv)
	case uint:
		appendUint64(buf, uint64(vv))
	case uint32:
		appendUint64(buf, uint64(vv))
	case uint64:
		appendUint64(buf, vv)
	case float32:
		appendJSONFloat(buf, float64(vv), 32)
	case float64:
		appendJSONFloat(buf, vv, 64)
	case root.Message:
		appendQuoted(buf, stripColorCodes(vv.Text()))
	case error:
		appendQuoted(buf, vv.Error())
	default:
		if data, err := json.Marshal(vv); err == nil {
			buf.writeBytes(data)
		} else {
			buf.writeBytes(litNull)
		}
	}
}
