package xlogq

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
	"go.uber.org/multierr"
)

// DefaultTag tags events logged through the Logger convenience methods and
// the auto-bootstrap notices.
const DefaultTag = "Logger"

// Logger turns calls into Events and delivers them to its listeners on the
// queue's consumer goroutine.
type Logger struct {
	queue     *Queue
	listeners *Registry
	clock     xclock.Clock
	minLevel  atomic.Int64
	onErr     ErrorHandler
	st        loggerStats
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		listeners: &Registry{},
		clock:     cfg.Clock,
		onErr:     cfg.ErrorHandler,
	}
	if l.onErr == nil {
		l.onErr = DefaultErrorHandler
	}
	l.minLevel.Store(int64(cfg.MinLevel))
	l.queue = NewQueue(WithErrorHandler(l.onErr), WithAutoBootstrapNotice(l.announce))
	for _, li := range cfg.Listeners {
		l.listeners.Subscribe(li)
	}
	return l
}

// NewLogger returns a logger with no listeners, LevelVerbose and the default
// error handler. Prefer NewBuilder for anything else.
func NewLogger(listeners ...Listener) *Logger {
	return newLogger(Config{MinLevel: LevelVerbose, Listeners: listeners})
}

func (l *Logger) Queue() *Queue         { return l.queue }
func (l *Logger) Registry() *Registry   { return l.listeners }
func (l *Logger) Enabled(lv Level) bool { return int64(lv) >= l.minLevel.Load() }
func (l *Logger) MinLevel() Level       { return Level(l.minLevel.Load()) }

// SetMinLevel changes the logger-wide filter and forwards lv to every
// registered listener that accepts a level, as Build does.
func (l *Logger) SetMinLevel(lv Level) {
	l.minLevel.Store(int64(lv))
	for _, li := range l.listeners.Listeners() {
		applyListenerLevel(li, lv)
	}
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// AddListener subscribes li; events already queued will reach it too.
func (l *Logger) AddListener(li Listener) Subscription { return l.listeners.Subscribe(li) }

func (l *Logger) RemoveListener(s Subscription) bool { return l.listeners.Unsubscribe(s) }

// Bootstrap, PollEvents, Flush and Stop delegate to the queue.

func (l *Logger) Bootstrap(mode Mode) error { return l.queue.Bootstrap(mode) }
func (l *Logger) PollEvents() error         { return l.queue.PollEvents() }
func (l *Logger) Flush() *Barrier           { return l.queue.Flush() }
func (l *Logger) Stop() error               { return l.queue.Stop() }

// Close stops the queue, waits for detached listeners and closes every
// listener that is an io.Closer. All failures are combined.
func (l *Logger) Close() error {
	err := l.queue.Stop()
	for _, li := range l.listeners.Listeners() {
		if d, ok := li.(*Detached); ok {
			err = multierr.Append(err, d.Wait())
			li = d.Unwrap()
		}
		if c, ok := li.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}

func (l *Logger) Stats() LoggerStats {
	return LoggerStats{
		Emitted:          l.st.emitted.Load(),
		Filtered:         l.st.filtered.Load(),
		ListenerFailures: l.st.listenerFailures.Load(),
		Queue:            l.queue.Stats(),
	}
}

// Emit clones content and tag, stamps the event and queues its dispatch.
// Below the minimum level it does nothing.
func (l *Logger) Emit(level Level, content, tag Message, color Color, fields ...Field) error {
	return l.emit(level, content, tag, color, nil, fields)
}

func (l *Logger) emit(level Level, content, tag Message, color Color, bound, fields []Field) error {
	if !l.Enabled(level) {
		l.st.filtered.Add(1)
		return nil
	}
	ev := newEvent(level, content, tag, color, l.now(), bound, fields)
	return l.queue.Enqueue(l.dispatchAction(ev))
}

func (l *Logger) dispatchAction(ev *Event) Action {
	return func() error {
		l.st.emitted.Add(1)
		if n := l.listeners.DispatchAll(ev, l.onErr); n > 0 {
			l.st.listenerFailures.Add(uint64(n))
		}
		return nil
	}
}

// announce queues the auto-bootstrap notices. Enqueue failures are dropped.
func (l *Logger) announce(notices []string) {
	at := l.now()
	for _, n := range notices {
		ev := newEvent(LevelWarn, Literal(n), Literal(DefaultTag), ColorGold, at, nil, nil)
		_ = l.queue.Enqueue(l.dispatchAction(ev))
	}
}

func (l *Logger) log(level Level, tag Message, bound []Field, msg string, fields []Field) {
	if err := l.emit(level, Literal(msg), tag, levelColor(level), bound, fields); err != nil {
		l.onErr(err)
	}
}

// Level entry points. Queueing errors go to the error handler.

func (l *Logger) Verbose(msg string, fs ...Field) { l.log(LevelVerbose, Literal(DefaultTag), nil, msg, fs) }
func (l *Logger) Log(msg string, fs ...Field)     { l.log(LevelLog, Literal(DefaultTag), nil, msg, fs) }
func (l *Logger) Info(msg string, fs ...Field)    { l.log(LevelInfo, Literal(DefaultTag), nil, msg, fs) }
func (l *Logger) Warn(msg string, fs ...Field)    { l.log(LevelWarn, Literal(DefaultTag), nil, msg, fs) }
func (l *Logger) Error(msg string, fs ...Field)   { l.log(LevelError, Literal(DefaultTag), nil, msg, fs) }

// Fatal logs at LevelFatal. It does not exit.
func (l *Logger) Fatal(msg string, fs ...Field) { l.log(LevelFatal, Literal(DefaultTag), nil, msg, fs) }

// Named returns a view of l that tags every event with tag.
func (l *Logger) Named(tag string) *NamedLogger {
	return &NamedLogger{l: l, tag: Literal(tag)}
}

// With returns a child view, tagged DefaultTag, that adds fs to every event
// ahead of the call's own fields.
func (l *Logger) With(fs ...Field) *NamedLogger {
	return &NamedLogger{l: l, tag: Literal(DefaultTag), fields: copyFields(nil, fs)}
}

// At starts a fluent entry at level, tagged DefaultTag.
func (l *Logger) At(level Level) *Entry { return getEntry(l, level, Literal(DefaultTag), nil) }
