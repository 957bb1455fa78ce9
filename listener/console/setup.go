package console

import (
	"io"
	"os"

	root "github.com/trickstertwo/xlogq"
)

// Config is an explicit, code-first configuration for the console listener.
// Use provides a single-call setup with no envs or side-imports.
type Config struct {
	// Writer defaults to os.Stdout.
	Writer io.Writer

	// Mode is bootstrapped by Use; defaults to ModeThreaded.
	Mode root.Mode

	MinLevel     root.Level
	Format       Format
	Color        ColorMode
	TimeFormat   string
	Fields       []root.Field
	JSONTime     JSONTimeEncoding
	JSONDuration JSONDurationEncoding
	BufferSize   int
	ErrorHandler root.ErrorHandler

	Metrics MetricsCollector // optional observability
}

// Use builds a Logger with a console listener from cfg, sets it as the
// global logger, and returns it.
func Use(cfg Config) (*root.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	l := New(w, Options{
		Format:       cfg.Format,
		MinLevel:     cfg.MinLevel,
		Color:        cfg.Color,
		TimeFormat:   cfg.TimeFormat,
		Fields:       cfg.Fields,
		JSONTime:     cfg.JSONTime,
		JSONDuration: cfg.JSONDuration,
		BufferSize:   cfg.BufferSize,
	})
	if cfg.Metrics != nil {
		l.SetMetricsCollector(cfg.Metrics)
	}

	mode := cfg.Mode
	if mode == 0 {
		mode = root.ModeThreaded
	}
	lg, err := root.NewBuilder().
		WithMode(mode).
		WithMinLevel(cfg.MinLevel).
		WithErrorHandler(cfg.ErrorHandler).
		AddListener(l).
		Build()
	if err != nil {
		return nil, err
	}
	root.SetGlobal(lg)
	return lg, nil
}
