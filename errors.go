package xlogq

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrUninitialized is returned by a Queue that was not created with NewQueue.
	ErrUninitialized = errors.New("xlogq: queue is not initialized")

	// ErrNotBootstrapped is returned by consumer-only operations before Bootstrap.
	ErrNotBootstrapped = errors.New("xlogq: queue is not bootstrapped")

	// ErrWrongGoroutine is returned when a consumer-only operation runs off the consumer goroutine.
	ErrWrongGoroutine = errors.New("xlogq: called from a goroutine that is not the designated consumer")

	// ErrReentrantPoll is returned when PollEvents is called from inside an action it is draining.
	ErrReentrantPoll = errors.New("xlogq: PollEvents called from inside a queued action")

	// ErrStopped is returned once the queue has been stopped.
	ErrStopped = errors.New("xlogq: queue is stopped")

	// ErrNilAction is returned when a nil action is enqueued.
	ErrNilAction = errors.New("xlogq: nil action")

	// ErrInvalidMode is returned for a Mode outside the declared constants.
	ErrInvalidMode = errors.New("xlogq: invalid mode")

	// ErrBuildBlocking is returned by Builder.Build for ModeBlocking, which must be
	// entered by calling Logger.Bootstrap on the goroutine that will pump.
	ErrBuildBlocking = errors.New("xlogq: ModeBlocking cannot be bootstrapped by Build")
)

// UsageError reports a caller bug against the queue protocol. It wraps one of
// the sentinel errors above and records the stack of the offending call;
// format with %+v to print it.
type UsageError struct {
	Op  string
	err error
}

func usageError(op string, sentinel error) error {
	return &UsageError{Op: op, err: pkgerrors.WithStack(sentinel)}
}

func (e *UsageError) Error() string { return e.Op + ": " + e.err.Error() }
func (e *UsageError) Unwrap() error { return e.err }

// Format prints the recorded stack for %+v.
func (e *UsageError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.Op, e.err)
		return
	}
	fmt.Fprint(s, e.Error())
}

// IsUsageError reports whether err is (or wraps) a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// ListenerError describes a listener that failed while an event was dispatched.
type ListenerError struct {
	Subscription uuid.UUID
	Event        *Event
	Err          error
	Panic        any // recovered value when the listener panicked
}

func (e *ListenerError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("xlogq: listener %s panicked: %v", e.Subscription, e.Panic)
	}
	return fmt.Sprintf("xlogq: listener %s failed: %v", e.Subscription, e.Err)
}

func (e *ListenerError) Unwrap() error { return e.Err }

// ActionError describes a queued action that failed while the queue was drained.
type ActionError struct {
	Err   error
	Panic any
}

func (e *ActionError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("xlogq: queued action panicked: %v", e.Panic)
	}
	return fmt.Sprintf("xlogq: queued action failed: %v", e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }
