package zerologlistener

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	root "github.com/trickstertwo/xlogq"
)

// Config is an explicit, code-first configuration for zerolog + xlogq.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	Mode              root.Mode // bootstrapped by Use; default ModeThreaded
	MinLevel          root.Level
	Console           bool   // pretty console output instead of JSON
	ConsoleTimeFormat string // only used if Console==true; default time.RFC3339Nano
	ErrorHandler      root.ErrorHandler
}

// NewZerolog builds the zerolog logger Use wires in.
func NewZerolog(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Console {
		// Align the console's leading timestamp column with the "ts" key we write.
		zerolog.TimestampFieldName = "ts"
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		w = cw
	}
	return zerolog.New(w).Level(mapLevel(cfg.MinLevel))
}

// Use builds a Logger with a zerolog listener from cfg, sets it as the
// global logger, and returns it.
func Use(cfg Config) (*root.Logger, error) {
	li := New(NewZerolog(cfg))

	mode := cfg.Mode
	if mode == 0 {
		mode = root.ModeThreaded
	}
	lg, err := root.NewBuilder().
		WithMode(mode).
		WithMinLevel(cfg.MinLevel).
		WithErrorHandler(cfg.ErrorHandler).
		AddListener(li).
		Build()
	if err != nil {
		return nil, err
	}
	root.SetGlobal(lg)
	return lg, nil
}
