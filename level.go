package xlogq

import (
	"fmt"
	"strings"
)

// Level is an ordinal severity. Ordering is significant: Verbose < Log < Info < Warn < Error < Fatal.
type Level int

const (
	LevelVerbose Level = iota
	LevelLog
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{
	LevelVerbose: "Verbose",
	LevelLog:     "Log",
	LevelInfo:    "Info",
	LevelWarn:    "Warn",
	LevelError:   "Error",
	LevelFatal:   "Fatal",
}

// LevelName looks up the display name of l. Out-of-range ordinals are a miss,
// and the caller picks the fallback text.
func LevelName(l Level) (string, bool) {
	if l < 0 || int(l) >= len(levelNames) {
		return "", false
	}
	return levelNames[l], true
}

// String returns the display name, or "<unknown>" for out-of-range values.
func (l Level) String() string {
	if name, ok := LevelName(l); ok {
		return name
	}
	return "<unknown>"
}

// ParseLevel accepts level names case-insensitively ("warning" is an alias for Warn).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "trace":
		return LevelVerbose, nil
	case "log", "debug":
		return LevelLog, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("xlogq: unknown level %q", s)
	}
}
