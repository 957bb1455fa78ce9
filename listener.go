package xlogq

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Listener receives every drained Event on the consumer goroutine.
// A returned error (or a panic) is reported to the logger's ErrorHandler and
// does not stop other listeners from seeing the event.
type Listener interface {
	OnLog(ev *Event) error
}

// ListenerFunc adapter.
type ListenerFunc func(*Event) error

func (f ListenerFunc) OnLog(ev *Event) error { return f(ev) }

// Detached runs a listener body on its own goroutine so slow sinks do not hold
// up the consumer. Dispatch does not wait for it, and neither does Flush: a
// resolved Flush only means the event reached OnLog. Call Wait to join the
// bodies still in flight.
type Detached struct {
	l     Listener
	onErr ErrorHandler
	g     errgroup.Group
}

// Detach wraps l. onErr, when non-nil, sees every failed body as it happens;
// Wait reports only the first.
func Detach(l Listener, onErr ErrorHandler) *Detached {
	return &Detached{l: l, onErr: onErr}
}

func (d *Detached) OnLog(ev *Event) error {
	d.g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("xlogq: detached listener panicked: %v", r)
			}
			if err != nil && d.onErr != nil {
				d.onErr(err)
			}
		}()
		return d.l.OnLog(ev)
	})
	return nil
}

// Wait blocks until every body started so far has returned.
func (d *Detached) Wait() error { return d.g.Wait() }

// Unwrap returns the wrapped listener.
func (d *Detached) Unwrap() Listener { return d.l }
