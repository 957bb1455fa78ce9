package xlogq

import (
	"sync"
	"testing"
)

// recorder is a Listener that keeps every event it sees.
type recorder struct {
	mu     sync.Mutex
	events []*Event
}

func (r *recorder) OnLog(ev *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) snapshot() []*Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Event(nil), r.events...)
}

func (r *recorder) messages() []string {
	evs := r.snapshot()
	out := make([]string, len(evs))
	for i, ev := range evs {
		out[i] = ev.Message()
	}
	return out
}

// errSink collects errors handed to an ErrorHandler.
type errSink struct {
	mu   sync.Mutex
	errs []error
}

func (s *errSink) handle(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func (s *errSink) all() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}

func waitFlush(t testing.TB, b *Barrier) {
	t.Helper()
	if err := b.Wait(t.Context()); err != nil {
		t.Fatalf("flush: %v", err)
	}
}
