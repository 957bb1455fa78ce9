package zaplistener

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	root "github.com/trickstertwo/xlogq"
)

func newTestZap(buf *bytes.Buffer, lvl zapcore.LevelEnabler) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(buf), lvl))
}

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), "line=%s", b)
	return m
}

func TestOnLog_EmitsTSTagAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(newTestZap(&buf, zapcore.DebugLevel))

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	ev := &root.Event{
		Level:     root.LevelInfo,
		Content:   root.Literal("state changed"),
		Tag:       root.Literal("net"),
		Goroutine: 3,
		At:        at,
		Fields: []root.Field{
			root.Str("from", "old"),
			root.Int("count", 2),
			root.Dur("dur", time.Millisecond),
			root.Err(errors.New("boom")),
		},
	}
	require.NoError(t, l.OnLog(ev))

	m := decode(t, buf.Bytes())
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, "state changed", m["message"])
	assert.Equal(t, at.Format(time.RFC3339Nano), m["ts"])
	assert.Equal(t, "net", m["tag"])
	assert.Equal(t, float64(3), m["goroutine"])
	assert.Equal(t, "old", m["from"])
	assert.Equal(t, float64(2), m["count"])
	assert.Equal(t, "1ms", m["dur"])
	assert.Equal(t, "boom", m["error"])
}

func TestFatalMapsToError(t *testing.T) {
	var buf bytes.Buffer
	l := New(newTestZap(&buf, zapcore.DebugLevel))

	require.NoError(t, l.OnLog(&root.Event{Level: root.LevelFatal, Content: root.Literal("x")}))
	assert.Equal(t, "error", decode(t, buf.Bytes())["level"])
}

func TestSetMinLevelUsesAtomicLevel(t *testing.T) {
	var buf bytes.Buffer
	al := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	l := NewWithAtomicLevel(newTestZap(&buf, al), &al)

	l.SetMinLevel(root.LevelWarn)
	require.NoError(t, l.OnLog(&root.Event{Level: root.LevelInfo, Content: root.Literal("dropped")}))
	assert.Zero(t, buf.Len())

	require.NoError(t, l.OnLog(&root.Event{Level: root.LevelWarn, Content: root.Literal("kept")}))
	assert.Equal(t, "kept", decode(t, buf.Bytes())["message"])
}

func TestUse_WiresGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	lg, err := Use(Config{Writer: &buf, MinLevel: root.LevelInfo})
	require.NoError(t, err)
	defer root.SetGlobal(nil)
	assert.Same(t, lg, root.L())

	lg.Warn("queued", root.Str("k", "v"))
	require.NoError(t, lg.Flush().Wait(t.Context()))

	m := decode(t, buf.Bytes())
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, "Logger", m["tag"])
	assert.Equal(t, "v", m["k"])
	require.NoError(t, lg.Stop())
}
