package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/trickstertwo/xlogq"
)

// DefaultDebounce is how long Watch waits after the last change before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it is written or replaced.
type Watcher struct {
	path     string
	onChange func(Config)
	onErr    xlogq.ErrorHandler

	fw     *fsnotify.Watcher
	stopCh chan struct{}
	done   chan struct{}

	timerMu sync.Mutex
	timer   *time.Timer
	closed  bool
}

// Watch observes path and calls onChange with every successfully reloaded
// Config. Load and watcher failures go to onErr (DefaultErrorHandler when nil).
// The parent directory is watched so editors that replace the file are seen.
func Watch(path string, onChange func(Config), onErr xlogq.ErrorHandler) (*Watcher, error) {
	if onErr == nil {
		onErr = xlogq.DefaultErrorHandler
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		onChange: onChange,
		onErr:    onErr,
		fw:       fw,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	// channels are captured here so Close can never race the loop
	go w.loop(fw.Events, fw.Errors)
	return w, nil
}

func (w *Watcher) loop(events <-chan fsnotify.Event, errs <-chan error) {
	defer close(w.done)
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.schedule()
		case err, ok := <-errs:
			if !ok {
				return
			}
			w.onErr(err)
		}
	}
}

func (w *Watcher) schedule() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(DefaultDebounce, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.onErr(err)
		return
	}
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

// Close stops watching. A reload already running may still complete.
func (w *Watcher) Close() error {
	w.timerMu.Lock()
	if w.closed {
		w.timerMu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()

	close(w.stopCh)
	err := w.fw.Close()
	<-w.done
	return err
}

// ApplyLevel returns an onChange callback that moves l to the reloaded level.
// Other settings need a rebuilt Logger and are ignored.
func ApplyLevel(l *xlogq.Logger) func(Config) {
	return func(c Config) {
		if lv, err := xlogq.ParseLevel(c.Level); err == nil {
			l.SetMinLevel(lv)
		}
	}
}
