package console

import (
	"strings"
	"time"

	root "github.com/trickstertwo/xlogq"
)

// Formatter writes one full line, newline included, with the given pre-encoded static fields.
type Formatter interface {
	FormatLine(buf *buffer, ev *root.Event, static []byte, opts Options)
}

// TextFormatter writes the human line:
//
//	2025-01-01 00:00:00 [Thread@7] [INFO] [Logger] message key=value
type TextFormatter struct {
	pal palette // nil disables ANSI output
}

var (
	textThreadPrefix = []byte(" [Thread@")
	textLenPrefix    = []byte("len:")
)

// levelTags holds the bracketed, upper-cased level names.
var levelTags = func() []string {
	out := make([]string, 0, 8)
	for l := root.LevelVerbose; ; l++ {
		name, ok := root.LevelName(l)
		if !ok {
			return out
		}
		out = append(out, "["+strings.ToUpper(name)+"]")
	}
}()

func levelTag(l root.Level) string {
	if l >= 0 && int(l) < len(levelTags) {
		return levelTags[l]
	}
	return "[" + strings.ToUpper(l.String()) + "]"
}

func (f *TextFormatter) FormatLine(buf *buffer, ev *root.Event, static []byte, opts Options) {
	appendTime(buf, ev.At, opts.TimeFormat)

	buf.writeBytes(textThreadPrefix)
	appendUint64(buf, ev.Goroutine)
	buf.writeString("] ")

	f.pal.paint(buf, ev.Color, levelTag(ev.Level))

	buf.writeString(" [")
	buf.writeString(stripColorCodes(ev.TagText()))
	buf.writeString("] ")

	if f.pal != nil {
		f.pal.paintMessage(buf, ev.Color, ev.Message())
	} else {
		buf.writeString(stripColorCodes(ev.Message()))
	}

	for i := range ev.Fields {
		appendTextField(buf, &ev.Fields[i])
	}
	if len(static) > 0 {
		buf.writeBytes(static)
	}
	buf.writeByte('\n')
}

func appendTextField(buf *buffer, f *root.Field) {
	buf.writeByte(' ')
	buf.writeString(f.K)
	buf.writeByte('=')
	appendTextValue(buf, f)
}

func appendTextValue(buf *buffer, f *root.Field) {
	switch f.Kind {
	case root.KindString:
		appendTextString(buf, f.Str)
	case root.KindInt64:
		appendInt64(buf, f.Int64)
	case root.KindUint64:
		appendUint64(buf, f.Uint64)
	case root.KindFloat64:
		appendFloat64(buf, f.Float64, 64)
	case root.KindBool:
		appendBool(buf, f.Bool)
	case root.KindDuration:
		buf.writeString(f.Dur.String())
	case root.KindTime:
		appendRFC3339Nano(buf, f.Time)
	case root.KindError:
		if f.Err != nil {
			appendQuoted(buf, f.Err.Error())
		} else {
			buf.writeBytes(litNull)
		}
	case root.KindBytes:
		buf.writeBytes(textLenPrefix)
		appendInt64(buf, int64(len(f.Bytes)))
	case root.KindAny:
		appendTextAny(buf, f.Any)
	default:
		buf.writeBytes(litNull)
	}
}

func appendTextAny(buf *buffer, v any) {
	switch vv := v.(type) {
	case nil:
		buf.writeBytes(litNull)
	case string:
		appendTextString(buf, vv)
	case []byte:
		buf.writeBytes(textLenPrefix)
		appendInt64(buf, int64(len(vv)))
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
		appendFloat64(buf, float64(vv), 32)
	case float64:
		appendFloat64(buf, vv, 64)
	case time.Time:
		appendRFC3339Nano(buf, vv)
	case time.Duration:
		buf.writeString(vv.String())
	case root.Message:
		appendTextString(buf, vv.Text())
	case error:
		appendQuoted(buf, vv.Error())
	default:
		// Minimal overhead "unknown" marker
		buf.writeString("unknown")
	}
}
