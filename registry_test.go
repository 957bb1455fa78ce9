package xlogq

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OrderAndUnsubscribe(t *testing.T) {
	var r Registry
	var order []string
	mk := func(name string) Listener {
		return ListenerFunc(func(*Event) error { order = append(order, name); return nil })
	}

	a := r.Subscribe(mk("a"))
	r.Subscribe(mk("b"))
	c := r.Subscribe(mk("c"))
	require.Equal(t, 3, r.Len())
	assert.NotEqual(t, a, c)

	r.DispatchAll(&Event{}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, order)

	require.True(t, r.Unsubscribe(a))
	require.False(t, r.Unsubscribe(a))
	require.False(t, r.Unsubscribe(Subscription{ID: uuid.New()}))

	order = nil
	r.DispatchAll(&Event{}, nil)
	assert.Equal(t, []string{"b", "c"}, order)
}

func TestRegistry_NilListenerIgnored(t *testing.T) {
	var r Registry
	s := r.Subscribe(nil)
	assert.Equal(t, uuid.Nil, s.ID)
	assert.Zero(t, r.Len())
}

func TestRegistry_FailuresAreIsolated(t *testing.T) {
	var r Registry
	var reached bool
	bad := r.Subscribe(ListenerFunc(func(*Event) error { return errors.New("nope") }))
	r.Subscribe(ListenerFunc(func(*Event) error { panic(errors.New("worse")) }))
	r.Subscribe(ListenerFunc(func(*Event) error { reached = true; return nil }))

	var got []error
	n := r.DispatchAll(&Event{Content: Literal("x")}, func(err error) { got = append(got, err) })

	assert.Equal(t, 2, n)
	assert.True(t, reached)
	require.Len(t, got, 2)

	var le *ListenerError
	require.ErrorAs(t, got[0], &le)
	assert.Equal(t, bad.ID, le.Subscription)
	assert.Contains(t, le.Error(), "failed: nope")
	require.ErrorAs(t, got[1], &le)
	assert.Contains(t, le.Error(), "panicked: worse")
}

func TestRegistry_SubscribeDuringDispatchSeesNextEvent(t *testing.T) {
	var r Registry
	late := &recorder{}
	var once sync.Once
	r.Subscribe(ListenerFunc(func(*Event) error {
		once.Do(func() { r.Subscribe(late) })
		return nil
	}))

	r.DispatchAll(&Event{Content: Literal("first")}, nil)
	r.DispatchAll(&Event{Content: Literal("second")}, nil)

	assert.Equal(t, []string{"second"}, late.messages())
}

func TestRegistry_ConcurrentSubscribe(t *testing.T) {
	var r Registry
	var wg sync.WaitGroup
	subs := make([]Subscription, 64)
	for i := range subs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			subs[i] = r.Subscribe(&recorder{})
		}()
	}
	wg.Wait()
	require.Equal(t, len(subs), r.Len())

	for _, s := range subs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, r.Unsubscribe(s))
		}()
	}
	wg.Wait()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Listeners())
}
