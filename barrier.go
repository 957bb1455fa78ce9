package xlogq

import (
	"context"
	"sync"
)

// Barrier is returned by Flush. It resolves once every action enqueued before
// the Flush call has been executed by the consumer.
type Barrier struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newBarrier() *Barrier {
	return &Barrier{done: make(chan struct{})}
}

func resolvedBarrier(err error) *Barrier {
	b := newBarrier()
	b.resolve(err)
	return b
}

func (b *Barrier) resolve(err error) {
	b.once.Do(func() {
		b.err = err
		close(b.done)
	})
}

// Done is closed when the barrier resolves.
func (b *Barrier) Done() <-chan struct{} { return b.done }

// Err reports why the barrier resolved without reaching the consumer, or nil.
// It is always nil before Done is closed.
func (b *Barrier) Err() error {
	select {
	case <-b.done:
		return b.err
	default:
		return nil
	}
}

// Wait blocks until the barrier resolves or ctx is done. The queue itself
// never times a barrier out; ctx only bounds how long this caller waits.
func (b *Barrier) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return b.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
