package xlogq

import "github.com/trickstertwo/xclock"

// Config for constructing a Logger (Factory data structure).
type Config struct {
	// Mode, when set, is bootstrapped by Build. Zero leaves the queue to be
	// bootstrapped by the caller or, failing that, by the first log call.
	Mode         Mode
	MinLevel     Level
	Listeners    []Listener
	Clock        xclock.Clock // optional; defaults to xclock.Default() at each call
	ErrorHandler ErrorHandler // optional; defaults to DefaultErrorHandler
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{MinLevel: LevelInfo}}
}

// WithMode bootstraps the queue during Build. ModeManualPoll makes the
// goroutine calling Build the consumer.
func (b *Builder) WithMode(m Mode) *Builder {
	b.cfg.Mode = m
	return b
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.cfg.ErrorHandler = h
	return b
}

func (b *Builder) AddListener(l Listener) *Builder {
	if l != nil {
		b.cfg.Listeners = append(b.cfg.Listeners, l)
	}
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) { return b.cfg.Build() }

// Build constructs a Logger from c.
func (c Config) Build() (*Logger, error) {
	switch {
	case c.Mode == ModeBlocking:
		return nil, ErrBuildBlocking
	case c.Mode != 0 && !c.Mode.valid():
		return nil, usageError("Build", ErrInvalidMode)
	}
	for _, li := range c.Listeners {
		applyListenerLevel(li, c.MinLevel)
	}
	l := newLogger(c)
	if c.Mode != 0 {
		if err := l.Bootstrap(c.Mode); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// listenerLevelSetter is an optional interface listeners can implement
// to receive min-level configuration from Builder/Config.
type listenerLevelSetter interface {
	SetMinLevel(Level)
}

// applyListenerLevel forwards lv to listeners implementing listenerLevelSetter,
// looking through Detached.
func applyListenerLevel(li Listener, lv Level) {
	if d, ok := li.(*Detached); ok {
		li = d.Unwrap()
	}
	if ls, ok := li.(listenerLevelSetter); ok {
		ls.SetMinLevel(lv)
	}
}
