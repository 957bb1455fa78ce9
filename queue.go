package xlogq

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Mode selects who services the queue.
type Mode uint32

const (
	// ModeThreaded spawns a dedicated consumer goroutine that pumps until Stop.
	ModeThreaded Mode = iota + 1
	// ModeManualPoll makes the calling goroutine the consumer; it must call PollEvents itself.
	ModeManualPoll
	// ModeBlocking makes the calling goroutine the consumer and pumps until Stop.
	ModeBlocking
)

func (m Mode) String() string {
	switch m {
	case ModeThreaded:
		return "threaded"
	case ModeManualPoll:
		return "manual_poll"
	case ModeBlocking:
		return "blocking"
	default:
		return "unset"
	}
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "threaded", "":
		return ModeThreaded, nil
	case "manual_poll", "manual":
		return ModeManualPoll, nil
	case "blocking":
		return ModeBlocking, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidMode, s)
	}
}

func (m Mode) valid() bool { return m >= ModeThreaded && m <= ModeBlocking }

// State is the queue lifecycle.
type State int32

const (
	StateUninitialized State = iota
	StateInitialized
	StateBootstrapped
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateBootstrapped:
		return "bootstrapped"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "uninitialized"
	}
}

// Action is a deferred unit of work executed exactly once by the consumer.
type Action func() error

// AutoBootstrapNotices are reported when the first Enqueue or Flush finds the
// queue not bootstrapped and falls back to ModeThreaded.
var AutoBootstrapNotices = [...]string{
	"*** Logger is not bootstrapped. ***",
	"Logger now requires either Bootstrap(ModeThreaded), Bootstrap(ModeBlocking) or Bootstrap(ModeManualPoll) to poll log events.",
	"The threaded approach will be used by default.",
}

// QueueOption configures a Queue.
type QueueOption func(*queueOptions)

type queueOptions struct {
	errorHandler    ErrorHandler
	onAutoBootstrap func(notices []string)
}

// WithErrorHandler routes failed actions to h instead of DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) QueueOption {
	return func(o *queueOptions) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

// WithAutoBootstrapNotice installs the hook that reports an implicit
// bootstrap. It runs on the producer goroutine before the triggering action
// is queued, so anything it enqueues is drained first.
func WithAutoBootstrapNotice(fn func(notices []string)) QueueOption {
	return func(o *queueOptions) { o.onAutoBootstrap = fn }
}

// Queue serializes actions from any number of producer goroutines and runs
// each exactly once on a single designated consumer goroutine.
//
// The zero Queue is uninitialized; use NewQueue.
type Queue struct {
	// mu guards pending, head and stopping as one region.
	mu       sync.Mutex
	cond     *sync.Cond
	pending  []Action
	head     int
	stopping bool

	// bootMu serializes lifecycle transitions.
	bootMu   sync.Mutex
	state    atomic.Int32
	mode     atomic.Uint32
	consumer atomic.Uint64
	done     chan struct{} // closed once no consumer will pump again
	doneOnce sync.Once

	// draining is only read and written by the consumer goroutine.
	draining bool

	opts queueOptions
	st   queueStats
}

// NewQueue returns an initialized, not yet bootstrapped queue.
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		pending: make([]Action, 0, 64),
		done:    make(chan struct{}),
		opts:    queueOptions{errorHandler: DefaultErrorHandler},
	}
	for _, o := range opts {
		o(&q.opts)
	}
	q.cond = sync.NewCond(&q.mu)
	q.state.Store(int32(StateInitialized))
	return q
}

func (q *Queue) State() State { return State(q.state.Load()) }
func (q *Queue) Mode() Mode   { return Mode(q.mode.Load()) }

// IsConsumer reports whether the calling goroutine is the designated consumer.
func (q *Queue) IsConsumer() bool {
	id := q.consumer.Load()
	return id != 0 && id == goroutineID()
}

// Len returns the number of queued, not yet executed actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) - q.head
}

// Stats returns a snapshot of the queue counters.
func (q *Queue) Stats() QueueStats { return q.st.snapshot(q.Len()) }

// Bootstrap decides once which goroutine services the queue. Calls after the
// first successful bootstrap are no-ops. In ModeBlocking it returns only
// after Stop, once the final drain has finished.
func (q *Queue) Bootstrap(mode Mode) error {
	if !mode.valid() {
		return usageError("Bootstrap", ErrInvalidMode)
	}
	started, err := q.bootstrap(mode)
	if err != nil || !started {
		return err
	}
	if mode == ModeBlocking {
		q.pump()
	}
	return nil
}

func (q *Queue) bootstrap(mode Mode) (bool, error) {
	q.bootMu.Lock()
	defer q.bootMu.Unlock()

	switch q.State() {
	case StateUninitialized:
		return false, usageError("Bootstrap", ErrUninitialized)
	case StateStopped:
		return false, usageError("Bootstrap", ErrStopped)
	case StateBootstrapped, StateRunning:
		return false, nil
	}

	q.mode.Store(uint32(mode))
	if mode == ModeThreaded {
		ready := make(chan struct{})
		go q.runThreaded(ready)
		<-ready
		return true, nil
	}
	q.consumer.Store(goroutineID())
	q.state.Store(int32(StateBootstrapped))
	return true, nil
}

func (q *Queue) runThreaded(ready chan<- struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	q.consumer.Store(goroutineID())
	q.state.Store(int32(StateBootstrapped))
	close(ready)
	q.pump()
}

// pump waits for work and drains until Stop, then drains one last time.
func (q *Queue) pump() {
	defer q.closeDone()
	q.state.CompareAndSwap(int32(StateBootstrapped), int32(StateRunning))

	for {
		q.mu.Lock()
		for q.head == len(q.pending) && !q.stopping {
			q.cond.Wait()
		}
		stopping := q.stopping
		q.mu.Unlock()

		q.drain()
		if stopping {
			break
		}
	}
	q.state.Store(int32(StateStopped))
}

// ensureBootstrapped falls back to ModeThreaded when nobody bootstrapped the queue.
func (q *Queue) ensureBootstrapped(op string) error {
	switch q.State() {
	case StateBootstrapped, StateRunning:
		return nil
	case StateUninitialized:
		return usageError(op, ErrUninitialized)
	case StateStopped:
		return usageError(op, ErrStopped)
	}
	started, err := q.bootstrap(ModeThreaded)
	if err != nil {
		return err
	}
	if started && q.opts.onAutoBootstrap != nil {
		q.opts.onAutoBootstrap(AutoBootstrapNotices[:])
	}
	return nil
}

// Enqueue hands action to the consumer. On the consumer goroutine it runs
// inline, ahead of anything still queued; elsewhere it is appended to the
// FIFO and Enqueue returns without waiting.
func (q *Queue) Enqueue(action Action) error {
	if action == nil {
		return usageError("Enqueue", ErrNilAction)
	}
	if err := q.ensureBootstrapped("Enqueue"); err != nil {
		return err
	}
	if q.IsConsumer() {
		q.st.fastPath.Add(1)
		q.run(action)
		return nil
	}
	if err := q.push("Enqueue", action); err != nil {
		return err
	}
	q.st.enqueued.Add(1)
	return nil
}

// push appends action to the FIFO and wakes the consumer.
func (q *Queue) push(op string, action Action) error {
	q.mu.Lock()
	if q.stopping {
		q.mu.Unlock()
		return usageError(op, ErrStopped)
	}
	q.pending = append(q.pending, action)
	q.mu.Unlock()
	q.cond.Signal()
	return nil
}

// PollEvents drains the FIFO on the consumer goroutine. A failing action is
// reported to the error handler and the drain continues.
func (q *Queue) PollEvents() error {
	if q.consumer.Load() == 0 {
		return usageError("PollEvents", ErrNotBootstrapped)
	}
	if !q.IsConsumer() {
		return usageError("PollEvents", ErrWrongGoroutine)
	}
	if q.draining {
		return usageError("PollEvents", ErrReentrantPoll)
	}
	q.state.CompareAndSwap(int32(StateBootstrapped), int32(StateRunning))
	q.drain()
	return nil
}

func (q *Queue) drain() {
	q.draining = true
	defer func() { q.draining = false }()

	for {
		q.mu.Lock()
		if q.head == len(q.pending) {
			clear(q.pending)
			q.pending = q.pending[:0]
			q.head = 0
			q.mu.Unlock()
			return
		}
		action := q.pending[q.head]
		q.pending[q.head] = nil
		q.head++
		if q.head >= 1024 && q.head*2 >= len(q.pending) {
			n := copy(q.pending, q.pending[q.head:])
			clear(q.pending[n:])
			q.pending = q.pending[:n]
			q.head = 0
		}
		q.mu.Unlock()

		q.run(action)
	}
}

func (q *Queue) run(action Action) {
	q.st.executed.Add(1)
	defer func() {
		if r := recover(); r != nil {
			q.st.actionFailures.Add(1)
			q.opts.errorHandler(&ActionError{Panic: r})
		}
	}()
	if err := action(); err != nil {
		q.st.actionFailures.Add(1)
		q.opts.errorHandler(&ActionError{Err: err})
	}
}

// Flush returns a Barrier that resolves once every action enqueued before
// this call has run. On the consumer goroutine it is already resolved.
func (q *Queue) Flush() *Barrier {
	if err := q.ensureBootstrapped("Flush"); err != nil {
		return q.stoppedBarrier(err)
	}
	if q.IsConsumer() {
		return resolvedBarrier(nil)
	}
	b := newBarrier()
	err := q.push("Flush", func() error {
		b.resolve(nil)
		return nil
	})
	if err != nil {
		return q.stoppedBarrier(err)
	}
	q.st.barriers.Add(1)
	return b
}

// stoppedBarrier handles a Flush that lost the race with Stop. A pumping
// consumer still runs everything queued in its final drain, so the barrier
// resolves once the pump has exited. In ModeManualPoll leftovers wait for a
// PollEvents that may never come, and the barrier reports ErrStopped.
func (q *Queue) stoppedBarrier(err error) *Barrier {
	if !errors.Is(err, ErrStopped) {
		return resolvedBarrier(err)
	}
	if m := q.Mode(); m == ModeThreaded || m == ModeBlocking {
		select {
		case <-q.done:
			return resolvedBarrier(nil)
		default:
		}
		b := newBarrier()
		go func() {
			<-q.done
			b.resolve(nil)
		}()
		return b
	}
	if q.Len() == 0 {
		return resolvedBarrier(nil)
	}
	return resolvedBarrier(err)
}

// Stop ends the queue. A pumping consumer drains everything already queued
// before exiting; from any other goroutine Stop waits for that to finish.
// Stop is idempotent.
func (q *Queue) Stop() error {
	q.bootMu.Lock()
	switch q.State() {
	case StateUninitialized:
		q.bootMu.Unlock()
		return usageError("Stop", ErrUninitialized)
	case StateInitialized:
		q.mu.Lock()
		q.stopping = true
		q.mu.Unlock()
		q.state.Store(int32(StateStopped))
		q.bootMu.Unlock()
		q.closeDone()
		return nil
	}
	q.bootMu.Unlock()

	q.mu.Lock()
	q.stopping = true
	q.mu.Unlock()
	q.cond.Broadcast()

	if q.Mode() == ModeManualPoll {
		if q.IsConsumer() && !q.draining {
			q.drain()
		}
		q.state.Store(int32(StateStopped))
		q.closeDone()
		return nil
	}
	if q.IsConsumer() {
		return nil
	}
	<-q.done
	return nil
}

// Done is closed once the queue is stopped and, for ModeThreaded and
// ModeBlocking, the pump has finished its final drain.
func (q *Queue) Done() <-chan struct{} { return q.done }

func (q *Queue) closeDone() { q.doneOnce.Do(func() { close(q.done) }) }
