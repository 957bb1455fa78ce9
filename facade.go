package xlogq

import "sync/atomic"

// Facade: global access. Nothing installs a global logger implicitly.
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger.
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("xlogq: global logger not set. Build one and call xlogq.SetGlobal(...)")
	}
	return l
}

// Facade helpers using the global logger.
// Usage: xlogq.Info("hello", xlogq.Str("k", "v"))

func Verbose(msg string, fs ...Field) { L().Verbose(msg, fs...) }
func Info(msg string, fs ...Field)    { L().Info(msg, fs...) }
func Warn(msg string, fs ...Field)    { L().Warn(msg, fs...) }
func Error(msg string, fs ...Field)   { L().Error(msg, fs...) }
func Named(tag string) *NamedLogger   { return L().Named(tag) }
func Flush() *Barrier                 { return L().Flush() }
