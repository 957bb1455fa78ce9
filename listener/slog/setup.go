package sloglistener

import (
	"io"
	"log/slog"
	"os"

	root "github.com/trickstertwo/xlogq"
)

// NewJSONLogger builds a Logger wired to a slog JSON handler. The queue is
// bootstrapped in ModeThreaded.
func NewJSONLogger(w io.Writer, minLevel root.Level, opts *slog.HandlerOptions, extra ...root.Listener) (*root.Logger, error) {
	return newLogger(w, minLevel, opts, slog.NewJSONHandler, extra)
}

// NewTextLogger builds a Logger wired to a slog text handler. The queue is
// bootstrapped in ModeThreaded.
func NewTextLogger(w io.Writer, minLevel root.Level, opts *slog.HandlerOptions, extra ...root.Listener) (*root.Logger, error) {
	return newLogger(w, minLevel, opts, slog.NewTextHandler, extra)
}

func newLogger[H slog.Handler](w io.Writer, minLevel root.Level, opts *slog.HandlerOptions, mk func(io.Writer, *slog.HandlerOptions) H, extra []root.Listener) (*root.Logger, error) {
	if w == nil {
		w = os.Stdout
	}
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	opts.Level = toSlog(minLevel)
	// The event's own "ts" attribute replaces the handler's time.
	opts.ReplaceAttr = dropHandlerTime(opts.ReplaceAttr)

	b := root.NewBuilder().
		WithMode(root.ModeThreaded).
		WithMinLevel(minLevel).
		AddListener(New(slog.New(mk(w, opts))))
	for _, li := range extra {
		b = b.AddListener(li)
	}
	return b.Build()
}

func dropHandlerTime(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		if next != nil {
			return next(groups, a)
		}
		return a
	}
}
