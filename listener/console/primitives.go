package console

import (
	"encoding/base64"
	"math"
	"strconv"
	"time"
)

const digits = "0123456789abcdef"

var (
	litTrue  = []byte("true")
	litFalse = []byte("false")
	litNull  = []byte("null")
)

func appendInt64(buf *buffer, v int64)   { buf.b = strconv.AppendInt(buf.b, v, 10) }
func appendUint64(buf *buffer, v uint64) { buf.b = strconv.AppendUint(buf.b, v, 10) }

func appendBool(buf *buffer, v bool) {
	if v {
		buf.writeBytes(litTrue)
		return
	}
	buf.writeBytes(litFalse)
}

// appendFloat64 writes NaN and infinities by name; JSON callers must filter them first.
func appendFloat64(buf *buffer, f float64, bitSize int) {
	switch {
	case math.IsNaN(f):
		buf.writeString("NaN")
	case math.IsInf(f, 1):
		buf.writeString("+Inf")
	case math.IsInf(f, -1):
		buf.writeString("-Inf")
	default:
		buf.b = strconv.AppendFloat(buf.b, f, 'g', -1, bitSize)
	}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func appendTime(buf *buffer, t time.Time, layout string) { buf.b = t.AppendFormat(buf.b, layout) }

func appendRFC3339Nano(buf *buffer, t time.Time) { appendTime(buf, t, time.RFC3339Nano) }

func appendBase64(buf *buffer, data []byte) {
	if len(data) == 0 {
		buf.writeString(`""`)
		return
	}
	buf.writeByte('"')
	n := base64.StdEncoding.EncodedLen(len(data))
	buf.grow(n + 1)
	start := len(buf.b)
	buf.b = buf.b[:start+n]
	base64.StdEncoding.Encode(buf.b[start:], data)
	buf.writeByte('"')
}
