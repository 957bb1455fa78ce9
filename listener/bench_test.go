// Package listener_test compares the bundled listeners on identical events.
package listener_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	root "github.com/trickstertwo/xlogq"
	"github.com/trickstertwo/xlogq/listener/console"
	sloglistener "github.com/trickstertwo/xlogq/listener/slog"
	zaplistener "github.com/trickstertwo/xlogq/listener/zap"
	zerologlistener "github.com/trickstertwo/xlogq/listener/zerolog"
)

type scenario struct {
	name string
	newL func() root.Listener
}

var benchAt = time.Date(2024, 12, 31, 23, 59, 59, 123_000_000, time.UTC)

func scenarios() []scenario {
	return []scenario{
		{"console/Text", func() root.Listener {
			return console.New(io.Discard, console.Options{Color: console.ColorNever, MinLevel: root.LevelVerbose})
		}},
		{"console/JSON", func() root.Listener {
			return console.New(io.Discard, console.Options{Format: console.FormatJSON, MinLevel: root.LevelVerbose})
		}},
		{"zerolog/JSON", func() root.Listener {
			return zerologlistener.New(zerolog.New(io.Discard).Level(zerolog.TraceLevel))
		}},
		{"zap/JSON", func() root.Listener {
			enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
				LevelKey:       "level",
				MessageKey:     "msg",
				EncodeLevel:    zapcore.LowercaseLevelEncoder,
				EncodeDuration: zapcore.StringDurationEncoder,
			})
			return zaplistener.New(zap.New(zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zapcore.DebugLevel)))
		}},
		{"slog/JSON", func() root.Listener {
			return sloglistener.New(slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}},
	}
}

func genFields(n int) []root.Field {
	fs := make([]root.Field, 0, n)
	for i := range n {
		switch i % 5 {
		case 0:
			fs = append(fs, root.Str("s", "v"))
		case 1:
			fs = append(fs, root.Int("i", i))
		case 2:
			fs = append(fs, root.Bool("b", i&1 == 0))
		case 3:
			fs = append(fs, root.Dur("d", time.Millisecond))
		default:
			fs = append(fs, root.Float64("f", 3.14159))
		}
	}
	return fs
}

func benchEvent(n int) *root.Event {
	return &root.Event{
		Level:     root.LevelInfo,
		Content:   root.Literal("bench"),
		Tag:       root.Literal("Logger"),
		Color:     root.ColorGreen,
		Goroutine: 1,
		At:        benchAt,
		Fields:    genFields(n),
	}
}

func runListeners(b *testing.B, n int, parallel bool) {
	ev := benchEvent(n)
	for _, sc := range scenarios() {
		b.Run(sc.name, func(b *testing.B) {
			l := sc.newL()
			b.ReportAllocs()
			if !parallel {
				for b.Loop() {
					_ = l.OnLog(ev)
				}
				return
			}
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					_ = l.OnLog(ev)
				}
			})
		})
	}
}

func BenchmarkListener_NoFields(b *testing.B)   { runListeners(b, 0, false) }
func BenchmarkListener_5Fields(b *testing.B)    { runListeners(b, 5, false) }
func BenchmarkListener_10Fields(b *testing.B)   { runListeners(b, 10, false) }
func BenchmarkListener_20Fields(b *testing.B)   { runListeners(b, 20, false) }
func BenchmarkListener_Parallel10(b *testing.B) { runListeners(b, 10, true) }

// End to end: producer goroutines, the queue and one listener.
func BenchmarkLogger_Threaded_10Fields(b *testing.B) {
	fs := genFields(10)
	for _, sc := range scenarios() {
		b.Run(sc.name, func(b *testing.B) {
			lg, err := root.NewBuilder().
				WithMode(root.ModeThreaded).
				WithMinLevel(root.LevelVerbose).
				AddListener(sc.newL()).
				Build()
			if err != nil {
				b.Fatal(err)
			}
			defer lg.Close()
			b.ReportAllocs()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					lg.Info("bench", fs...)
				}
			})
			if err := lg.Flush().Wait(b.Context()); err != nil {
				b.Fatal(err)
			}
		})
	}
}
