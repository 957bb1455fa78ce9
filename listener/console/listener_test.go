package console

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	root "github.com/trickstertwo/xlogq"
)

func testEvent(fields ...root.Field) *root.Event {
	return &root.Event{
		Level:     root.LevelInfo,
		Content:   root.Literal("state changed"),
		Tag:       root.Literal("Logger"),
		Color:     root.ColorGreen,
		Goroutine: 7,
		At:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Fields:    fields,
	}
}

func TestTextLine_FieldsAndNewline(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Format: FormatText, Color: ColorNever})

	ev := testEvent(
		root.Str("from", "old"),
		root.Int("count", 2),
		root.Bool("ok", true),
		root.Dur("dur", time.Millisecond),
	)
	require.NoError(t, l.OnLog(ev))

	assert.Equal(t,
		"2025-01-01 00:00:00 [Thread@7] [INFO] [Logger] state changed from=old count=2 ok=true dur=1ms\n",
		buf.String())
}

func TestTextLine_QuotesAwkwardValues(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Color: ColorNever})

	require.NoError(t, l.OnLog(testEvent(root.Str("path", "a b"), root.Err(errors.New("boom")), root.Bytes("raw", []byte{1, 2, 3}))))

	out := buf.String()
	for _, want := range []string{` path="a b"`, ` error="boom"`, ` raw=len:3`} {
		assert.Contains(t, out, want)
	}
}

func TestTextLine_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Color: ColorNever})
	ev := testEvent()
	ev.Level = root.Level(42)

	require.NoError(t, l.OnLog(ev))
	assert.Contains(t, buf.String(), "[<UNKNOWN>]")
}

func TestTextLine_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Color: ColorAlways})

	require.NoError(t, l.OnLog(testEvent()))

	out := buf.String()
	assert.Contains(t, out, "\x1b[92m[INFO]")
	assert.Contains(t, out, "\x1b[0m")
	assert.Contains(t, out, "[Logger]")
}

func TestTextLine_InlineColorCodes(t *testing.T) {
	ev := testEvent()
	ev.Content = root.Literal("plain " + root.ColorChar + "cred " + root.ColorChar + "zkept")

	var plain bytes.Buffer
	require.NoError(t, New(&plain, Options{Color: ColorNever}).OnLog(ev))
	assert.Contains(t, plain.String(), "[Logger] plain red "+root.ColorChar+"zkept\n")

	var colored bytes.Buffer
	require.NoError(t, New(&colored, Options{Color: ColorAlways}).OnLog(ev))
	assert.Contains(t, colored.String(), "\x1b[91mred ")
}

func TestJSONLine_ObjectAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Format: FormatJSON})

	ev := testEvent(
		root.Str("from", "old"),
		root.Int("count", 2),
		root.Bool("ok", true),
		root.Dur("dur", time.Millisecond),
	)
	ev.At = time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	require.NoError(t, l.OnLog(ev))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "state changed", m["msg"])
	assert.Equal(t, ev.At.Format(time.RFC3339Nano), m["ts"])
	assert.Equal(t, "Info", m["level"])
	assert.Equal(t, "Logger", m["tag"])
	assert.Equal(t, "green", m["color"])
	assert.Equal(t, float64(7), m["goroutine"])
	assert.Equal(t, "old", m["from"])
	assert.Equal(t, float64(2), m["count"])
	assert.Equal(t, true, m["ok"])
	assert.Equal(t, "1ms", m["dur"])
}

func TestJSONLine_NumericTimeAndStaticFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{
		Format:       FormatJSON,
		JSONTime:     JSONTimeUnixMillis,
		JSONDuration: JSONDurationMillis,
		Fields:       []root.Field{root.Str("svc", "api")},
	})

	ev := testEvent(root.Dur("took", 1500*time.Millisecond), root.Any("raw", RawJSON(`{"a":1}`)))
	require.NoError(t, l.OnLog(ev))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, float64(ev.At.UnixMilli()), m["ts"])
	assert.Equal(t, float64(1500), m["took"])
	assert.Equal(t, "api", m["svc"])
	assert.Equal(t, map[string]any{"a": float64(1)}, m["raw"])
}

func TestMinLevelFiltersAtListener(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Color: ColorNever})
	l.SetMinLevel(root.LevelWarn)

	require.NoError(t, l.OnLog(testEvent()))
	assert.Zero(t, buf.Len())
	assert.Equal(t, uint64(1), l.Stats().Filtered)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

type countingCollector struct{ calls, failures int }

func (c *countingCollector) LoggedMessage(_ root.Level, _ float64, _ int, err error) {
	c.calls++
	if err != nil {
		c.failures++
	}
}

func TestWriteErrorIsReturnedAndCounted(t *testing.T) {
	l := New(failingWriter{}, Options{Color: ColorNever})
	mc := &countingCollector{}
	l.SetMetricsCollector(mc)

	err := l.OnLog(testEvent())
	require.EqualError(t, err, "disk full")
	assert.Equal(t, uint64(1), l.Stats().Errors)
	assert.Equal(t, 1, mc.failures)

	l.ResetStats()
	assert.Zero(t, l.Stats().Errors)
}

type valueCollector struct{ seen *int }

func (c valueCollector) LoggedMessage(root.Level, float64, int, error) { *c.seen++ }

func TestSetMetricsCollector_DifferentTypes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Color: ColorNever})

	seen := 0
	counting := &countingCollector{}
	require.NotPanics(t, func() {
		l.SetMetricsCollector(counting)
		l.SetMetricsCollector(valueCollector{seen: &seen})
	})
	require.NoError(t, l.OnLog(testEvent()))
	assert.Equal(t, 1, seen)
	assert.Zero(t, counting.calls)

	l.SetMetricsCollector(nil)
	require.NoError(t, l.OnLog(testEvent()))
	assert.Equal(t, 1, seen)
}

func TestUse_WithMetrics(t *testing.T) {
	var buf bytes.Buffer
	seen := 0
	lg, err := Use(Config{Writer: &buf, Color: ColorNever, Mode: root.ModeManualPoll, Metrics: valueCollector{seen: &seen}})
	require.NoError(t, err)
	defer root.SetGlobal(nil)

	lg.Info("measured")
	require.NoError(t, lg.Close())
	assert.Equal(t, 1, seen)
	assert.Contains(t, buf.String(), "measured")
}

func TestLoggerEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	lg, err := Use(Config{Writer: &buf, Color: ColorNever, MinLevel: root.LevelVerbose})
	require.NoError(t, err)
	defer root.SetGlobal(nil)

	lg.Info("first", root.Int("n", 1))
	lg.Named("net").Warn("second")
	require.NoError(t, lg.Close())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[INFO] [Logger] first n=1")
	assert.Contains(t, lines[1], "[WARN] [net] second")
}

func TestFormatDoesNotWrite(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Color: ColorNever})

	line := l.Format(testEvent())
	assert.True(t, strings.HasSuffix(string(line), "state changed\n"))
	assert.Zero(t, buf.Len())
}
