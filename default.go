package xlogq

import (
	"io"
	"os"
)

// defaultListenerFactory is set by a listener package (listener/console) in
// its init() to avoid import cycles. Default() uses it to build a logger.
var defaultListenerFactory func(w io.Writer) Listener

// RegisterDefaultListenerFactory registers the constructor used by Default().
// Listener packages should call this from init(). Example (in listener/console):
//
//	func init() {
//	  xlogq.RegisterDefaultListenerFactory(func(w io.Writer) xlogq.Listener {
//	    return console.New(w, console.Options{Format: console.FormatText})
//	  })
//	}
func RegisterDefaultListenerFactory(f func(io.Writer) Listener) {
	defaultListenerFactory = f
}

// Default creates a logger using the registered listener factory, writing to
// os.Stdout at LevelVerbose. The queue is left to auto-bootstrap.
// Panics if no factory is registered.
func Default() *Logger {
	if defaultListenerFactory == nil {
		panic("xlogq: no default listener registered. Import listener/console or call xlogq.RegisterDefaultListenerFactory")
	}
	return newLogger(Config{
		MinLevel:  LevelVerbose,
		Listeners: []Listener{defaultListenerFactory(os.Stdout)},
	})
}

// New creates a default logger (via Default()) and sets it as global.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// UseListeners builds a threaded logger over listeners, sets it as global and
// returns it. Single line, explicit, no envs. The global is left untouched
// when Build fails.
func UseListeners(min Level, listeners ...Listener) (*Logger, error) {
	l, err := Config{Mode: ModeThreaded, MinLevel: min, Listeners: listeners}.Build()
	if err != nil {
		return nil, err
	}
	SetGlobal(l)
	return l, nil
}
