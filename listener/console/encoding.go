package console

import (
	"strings"
	"unicode/utf8"

	root "github.com/trickstertwo/xlogq"
)

func appendQuoted(buf *buffer, s string) {
	buf.writeByte('"')
	appendQuotedContent(buf, s)
	buf.writeByte('"')
}

func appendQuotedContent(buf *buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '\\' && c != '"' && c < 0x80 {
			i++
			continue
		}
		if start < i {
			buf.writeString(s[start:i])
		}
		if c < 0x80 {
			switch c {
			case '\\', '"':
				buf.writeByte('\\')
				buf.writeByte(c)
			case '\n':
				buf.writeString(`\n`)
			case '\r':
				buf.writeString(`\r`)
			case '\t':
				buf.writeString(`\t`)
			case '\b':
				buf.writeString(`\b`)
			case '\f':
				buf.writeString(`\f`)
			default:
				buf.writeString(`\u00`)
				buf.writeByte(digits[c>>4])
				buf.writeByte(digits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf.writeString(`\uFFFD`)
			i++
			start = i
			continue
		}
		switch r {
		case '\u2028':
			buf.writeString(`\u2028`)
		case '\u2029':
			buf.writeString(`\u2029`)
		default:
			i += size
			continue
		}
		i += size
		start = i
	}
	if start < len(s) {
		buf.writeString(s[start:])
	}
}

func appendTextString(buf *buffer, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x1F || c == ' ' || c == '"' {
			appendQuoted(buf, s)
			return
		}
	}
	buf.writeString(s)
}

// stripColorCodes drops every recognized ColorChar+code pair. Unknown codes
// are kept as literal text.
func stripColorCodes(s string) string {
	if !strings.Contains(s, root.ColorChar) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	forEachSegment(s, func(_ root.Color, seg string) { sb.WriteString(seg) })
	return sb.String()
}

// forEachSegment splits s at recognized color codes. The first segment
// carries the zero Color, meaning "the event's own color".
func forEachSegment(s string, fn func(c root.Color, seg string)) {
	var cur root.Color
	for {
		i := strings.Index(s, root.ColorChar)
		if i < 0 || i+len(root.ColorChar) >= len(s) {
			break
		}
		code := s[i+len(root.ColorChar)]
		next, ok := root.ColorByCode(code)
		if !ok {
			// not a code: emit through the marker and keep scanning
			fn(cur, s[:i+len(root.ColorChar)])
			s = s[i+len(root.ColorChar):]
			continue
		}
		if i > 0 {
			fn(cur, s[:i])
		}
		cur = next
		s = s[i+len(root.ColorChar)+1:]
	}
	if s != "" {
		fn(cur, s)
	}
}
