package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"

	root "github.com/trickstertwo/xlogq"
)

// Listener renders events as text or JSON lines onto a writer.
// OnLog runs on the queue's consumer goroutine; the writer mutex only matters
// when the same writer is shared with something else.
type Listener struct {
	// immutable after construction
	w         io.Writer
	opts      Options
	formatter Formatter
	static    []byte

	mu         sync.Mutex
	minLevel   atomic.Int64
	metrics    atomic.Pointer[metricsBox]
	measureDur atomic.Bool

	st stats
}

// New creates a listener writing to w (os.Stdout when nil).
func New(w io.Writer, opts Options) *Listener {
	if w == nil {
		w = os.Stdout
	}
	opts = opts.withDefaults()

	var f Formatter
	if opts.Format == FormatJSON {
		f = &JSONFormatter{}
	} else {
		tf := &TextFormatter{}
		if useColor(w, opts.Color) {
			tf.pal = newPalette()
		}
		f = tf
	}

	l := &Listener{
		w:         w,
		opts:      opts,
		formatter: f,
		static:    encodeStatic(opts.Fields, opts),
	}
	l.minLevel.Store(int64(opts.MinLevel))
	l.metrics.Store(&metricsBox{mc: &NoopMetricsCollector{}})
	return l
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// metricsBox gives every stored collector the same concrete type.
type metricsBox struct{ mc MetricsCollector }

// SetMetricsCollector installs a collector; when not Noop, we also measure durations.
func (l *Listener) SetMetricsCollector(c MetricsCollector) {
	if c == nil {
		c = &NoopMetricsCollector{}
	}
	l.metrics.Store(&metricsBox{mc: c})
	_, isNoop := c.(*NoopMetricsCollector)
	l.measureDur.Store(!isNoop)
}

// SetMinLevel drops events below lv at this listener only.
func (l *Listener) SetMinLevel(lv root.Level) { l.minLevel.Store(int64(lv)) }

// Stats returns a snapshot of internal counters.
func (l *Listener) Stats() StatsSnapshot { return l.st.snapshot() }

// ResetStats resets internal counters.
func (l *Listener) ResetStats() { l.st.reset() }

// Format renders ev as it would be written, without writing it.
func (l *Listener) Format(ev *root.Event) []byte {
	buf := getBuf(l.opts.BufferSize)
	defer putBuf(buf)
	l.formatter.FormatLine(buf, ev, l.static, l.opts)
	return append([]byte(nil), buf.b...)
}

func (l *Listener) OnLog(ev *root.Event) (err error) {
	if ev.Level < root.Level(l.minLevel.Load()) {
		l.st.filtered.Add(1)
		return nil
	}
	mc := l.metrics.Load().mc
	var start time.Time
	measure := l.measureDur.Load()
	if measure {
		start = time.Now()
	}

	buf := getBuf(l.opts.BufferSize)
	defer putBuf(buf)
	defer func() {
		if r := recover(); r != nil {
			l.st.errors.Add(1)
			err = fmt.Errorf("console: panic during formatting: %v", r)
			mc.LoggedMessage(ev.Level, 0, 0, err)
		}
	}()

	l.formatter.FormatLine(buf, ev, l.static, l.opts)

	l.mu.Lock()
	n, err := l.w.Write(buf.b)
	l.mu.Unlock()

	var durMS float64
	if measure {
		durMS = float64(time.Since(start)) / float64(time.Millisecond)
	}
	if err != nil {
		l.st.errors.Add(1)
	} else {
		l.st.written.Add(1)
		l.st.bytes.Add(uint64(n))
	}
	mc.LoggedMessage(ev.Level, durMS, n, err)
	return err
}
