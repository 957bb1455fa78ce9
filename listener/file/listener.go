// Package file writes events to a size-rotated log file.
package file

import (
	"gopkg.in/natefinch/lumberjack.v2"

	root "github.com/trickstertwo/xlogq"
	"github.com/trickstertwo/xlogq/listener/console"
)

// Options configures rotation and the line encoding.
type Options struct {
	Path       string
	MaxSizeMB  int  // rotate after this many megabytes; lumberjack defaults to 100
	MaxBackups int  // rotated files kept; 0 keeps all
	MaxAgeDays int  // 0 disables age-based removal
	Compress   bool // gzip rotated files
	LocalTime  bool // name backups in local time instead of UTC

	// Console controls the line format. Color is always off in files.
	Console console.Options
}

// Listener is a console listener writing into a lumberjack.Logger.
type Listener struct {
	*console.Listener
	out *lumberjack.Logger
}

func New(opts Options) *Listener {
	out := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
		LocalTime:  opts.LocalTime,
	}
	co := opts.Console
	co.Color = console.ColorNever
	return &Listener{Listener: console.New(out, co), out: out}
}

// Rotate closes the current file and starts a new one.
func (f *Listener) Rotate() error { return f.out.Rotate() }

// Close closes the current file. A later write reopens it.
func (f *Listener) Close() error { return f.out.Close() }

var _ root.Listener = (*Listener)(nil)
