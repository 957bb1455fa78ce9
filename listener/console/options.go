package console

import (
	root "github.com/trickstertwo/xlogq"
)

// Format defines the output format for log lines
type Format uint8

const (
	FormatText Format = iota + 1
	FormatJSON
)

// RawJSON is spliced into JSON output verbatim (no quoting, no escaping).
// The content MUST be valid JSON.
type RawJSON []byte

// ColorMode controls ANSI coloring of text lines.
type ColorMode uint8

const (
	ColorAuto   ColorMode = iota // color when the writer is a terminal
	ColorAlways                  // always emit ANSI escapes
	ColorNever                   // plain text; inline color codes are stripped
)

// JSONTimeEncoding controls how the "ts" field is encoded in JSON.
type JSONTimeEncoding uint8

const (
	JSONTimeRFC3339Nano JSONTimeEncoding = iota + 1 // default
	JSONTimeUnixMillis                              // numeric, t.UnixMilli()
	JSONTimeUnixNanos                               // numeric, t.UnixNano()
)

// JSONDurationEncoding controls how time.Duration fields are encoded in JSON.
type JSONDurationEncoding uint8

const (
	JSONDurationString JSONDurationEncoding = iota + 1 // default (e.g., "1ms")
	JSONDurationMillis                                 // numeric milliseconds
	JSONDurationNanos                                  // numeric nanoseconds
)

// DefaultTimeFormat is the text timestamp layout.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// Options configures the listener
type Options struct {
	Format     Format
	MinLevel   root.Level
	Color      ColorMode
	TimeFormat string // text only; defaults to DefaultTimeFormat

	// Fields are appended to every line after the event's own fields.
	// They are encoded once, at construction.
	Fields []root.Field

	JSONTime     JSONTimeEncoding     // default JSONTimeRFC3339Nano
	JSONDuration JSONDurationEncoding // default JSONDurationString

	// Initial capacity of the format buffer. Defaults to 2048 when <= 0.
	BufferSize int
}

func (o Options) withDefaults() Options {
	if o.Format == 0 {
		o.Format = FormatText
	}
	if o.TimeFormat == "" {
		o.TimeFormat = DefaultTimeFormat
	}
	if o.JSONTime == 0 {
		o.JSONTime = JSONTimeRFC3339Nano
	}
	if o.JSONDuration == 0 {
		o.JSONDuration = JSONDurationString
	}
	if o.BufferSize <= 0 {
		o.BufferSize = 2048
	}
	return o
}

// ParseFormat maps "text" and "json" to a Format.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "text", "":
		return FormatText, true
	case "json":
		return FormatJSON, true
	}
	return 0, false
}

// ParseColorMode maps "auto", "always" and "never" to a ColorMode.
func ParseColorMode(s string) (ColorMode, bool) {
	switch s {
	case "auto", "":
		return ColorAuto, true
	case "always":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	}
	return 0, false
}
