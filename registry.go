package xlogq

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscription identifies one registered listener.
type Subscription struct {
	ID uuid.UUID
}

func (s Subscription) String() string { return s.ID.String() }

type subscriber struct {
	id uuid.UUID
	l  Listener
}

// Registry is an insertion-ordered listener list.
// Reads are lock-free snapshots; Subscribe and Unsubscribe copy on write.
type Registry struct {
	subs atomic.Value // holds []subscriber, immutable once stored
	mu   sync.Mutex
}

func (r *Registry) snapshot() []subscriber {
	v := r.subs.Load()
	if v == nil {
		return nil
	}
	return v.([]subscriber)
}

// Subscribe appends l and returns the handle needed to remove it.
func (r *Registry) Subscribe(l Listener) Subscription {
	if l == nil {
		return Subscription{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snapshot()
	next := make([]subscriber, len(cur), len(cur)+1)
	copy(next, cur)
	id := uuid.New()
	next = append(next, subscriber{id: id, l: l})
	r.subs.Store(next)
	return Subscription{ID: id}
}

// Unsubscribe removes the listener behind s. It reports whether it was registered.
func (r *Registry) Unsubscribe(s Subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snapshot()
	for i := range cur {
		if cur[i].id != s.ID {
			continue
		}
		next := make([]subscriber, 0, len(cur)-1)
		next = append(next, cur[:i]...)
		next = append(next, cur[i+1:]...)
		r.subs.Store(next)
		return true
	}
	return false
}

func (r *Registry) Len() int { return len(r.snapshot()) }

// Listeners returns the registered listeners in registration order.
func (r *Registry) Listeners() []Listener {
	cur := r.snapshot()
	out := make([]Listener, len(cur))
	for i := range cur {
		out[i] = cur[i].l
	}
	return out
}

// DispatchAll hands ev to every listener in the current snapshot, in order.
// Each failure is reported to onErr and the loop moves on. It returns the
// number of listeners that failed.
func (r *Registry) DispatchAll(ev *Event, onErr ErrorHandler) int {
	failed := 0
	for _, s := range r.snapshot() {
		if err := invoke(s, ev); err != nil {
			failed++
			if onErr != nil {
				onErr(err)
			}
		}
	}
	return failed
}

func invoke(s subscriber, ev *Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ListenerError{Subscription: s.id, Event: ev, Err: fmt.Errorf("panic: %v", r), Panic: r}
		}
	}()
	if lerr := s.l.OnLog(ev); lerr != nil {
		return &ListenerError{Subscription: s.id, Event: ev, Err: lerr}
	}
	return nil
}
