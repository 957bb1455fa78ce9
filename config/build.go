package config

import (
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/trickstertwo/xlogq"
	"github.com/trickstertwo/xlogq/listener/console"
	"github.com/trickstertwo/xlogq/listener/file"
	sloglistener "github.com/trickstertwo/xlogq/listener/slog"
	zaplistener "github.com/trickstertwo/xlogq/listener/zap"
	zerologlistener "github.com/trickstertwo/xlogq/listener/zerolog"
)

var outputs = map[string]io.Writer{
	"":       os.Stdout,
	"stdout": os.Stdout,
	"stderr": os.Stderr,
}

// Build validates c and constructs the Logger with its listeners, already
// bootstrapped unless the mode is blocking. ModeManualPoll makes the calling
// goroutine the consumer.
func (c Config) Build(onErr xlogq.ErrorHandler) (*xlogq.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mode, _ := xlogq.ParseMode(c.Mode)
	level, _ := xlogq.ParseLevel(c.Level)
	if mode == xlogq.ModeBlocking {
		mode = 0
	}

	b := xlogq.NewBuilder().
		WithMode(mode).
		WithMinLevel(level).
		WithErrorHandler(onErr)
	for _, lc := range c.Listeners {
		b.AddListener(lc.listener(level, onErr))
	}
	return b.Build()
}

func (lc ListenerConfig) listener(level xlogq.Level, onErr xlogq.ErrorHandler) xlogq.Listener {
	var li xlogq.Listener
	switch lc.Type {
	case TypeConsole:
		li = console.New(outputs[lc.Output], lc.consoleOptions())
	case TypeFile:
		li = file.New(file.Options{
			Path:       lc.File.Path,
			MaxSizeMB:  lc.File.MaxSizeMB,
			MaxBackups: lc.File.MaxBackups,
			MaxAgeDays: lc.File.MaxAgeDays,
			Compress:   lc.File.Compress,
			Console:    lc.consoleOptions(),
		})
	case TypeZap:
		zl, al := zaplistener.NewZap(zaplistener.Config{
			Writer:   outputs[lc.Output],
			MinLevel: level,
			Console:  lc.Format == "text",
		})
		li = zaplistener.NewWithAtomicLevel(zl, &al)
	case TypeZerolog:
		li = zerologlistener.New(zerologlistener.NewZerolog(zerologlistener.Config{
			Writer:   outputs[lc.Output],
			MinLevel: level,
			Console:  lc.Format == "text",
		}))
	case TypeSlog:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug - 4}
		var h slog.Handler
		if lc.Format == "json" {
			h = slog.NewJSONHandler(outputs[lc.Output], opts)
		} else {
			h = slog.NewTextHandler(outputs[lc.Output], opts)
		}
		li = sloglistener.New(slog.New(h))
	}

	if lc.Level != "" {
		lv, _ := xlogq.ParseLevel(lc.Level)
		li = levelFilter{min: lv, next: li}
	}
	if lc.Detach {
		li = xlogq.Detach(li, onErr)
	}
	return li
}

func (lc ListenerConfig) consoleOptions() console.Options {
	format, _ := console.ParseFormat(lc.Format)
	color, _ := console.ParseColorMode(lc.Color)
	opts := console.Options{Format: format, Color: color, TimeFormat: lc.TimeFormat}
	for _, k := range slices.Sorted(maps.Keys(lc.Fields)) {
		opts.Fields = append(opts.Fields, xlogq.Str(k, lc.Fields[k]))
	}
	return opts
}

// levelFilter drops events below min before they reach next.
type levelFilter struct {
	min  xlogq.Level
	next xlogq.Listener
}

func (f levelFilter) OnLog(ev *xlogq.Event) error {
	if ev.Level < f.min {
		return nil
	}
	return f.next.OnLog(ev)
}

// Close forwards to the wrapped listener so Logger.Close still reaches it.
func (f levelFilter) Close() error {
	if c, ok := f.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
