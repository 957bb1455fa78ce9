package zaplistener

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	root "github.com/trickstertwo/xlogq"
)

// Config is an explicit, code-first configuration for zap + xlogq.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	Mode               root.Mode // bootstrapped by Use; default ModeThreaded
	MinLevel           root.Level
	Console            bool                  // console-like output via zapcore.NewConsoleEncoder
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"
	ErrorHandler       root.ErrorHandler
}

// NewZap builds the zap logger Use wires in, with zap's own time key disabled.
func NewZap(cfg Config) (*zap.Logger, zap.AtomicLevel) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// Encoder config defaults: do not let zap inject its own time (events carry "ts")
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder, // used for zap.Time fields
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	al := zap.NewAtomicLevelAt(toZapLevel(cfg.MinLevel))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)
	return zap.New(core), al
}

// Use builds a Logger with a zap listener from cfg, sets it as the global
// logger, and returns it.
func Use(cfg Config) (*root.Logger, error) {
	zl, al := NewZap(cfg)
	li := NewWithTimestampKey(zl, &al, cfg.TimestampFieldName)

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
