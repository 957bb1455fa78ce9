package xlogq

import "sync/atomic"

type queueStats struct {
	enqueued       atomic.Uint64
	fastPath       atomic.Uint64
	executed       atomic.Uint64
	actionFailures atomic.Uint64
	barriers       atomic.Uint64
}

// QueueStats is a point-in-time counters snapshot.
type QueueStats struct {
	Enqueued       uint64 // caller actions appended to the FIFO; Flush barriers excluded
	FastPath       uint64 // caller actions run inline on the consumer goroutine
	Executed       uint64 // actions run, either path, barriers included
	ActionFailures uint64
	Barriers       uint64 // Flush barriers queued
	Pending        int
}

func (s *queueStats) snapshot(pending int) QueueStats {
	return QueueStats{
		Enqueued:       s.enqueued.Load(),
		FastPath:       s.fastPath.Load(),
		Executed:       s.executed.Load(),
		ActionFailures: s.actionFailures.Load(),
		Barriers:       s.barriers.Load(),
		Pending:        pending,
	}
}

type loggerStats struct {
	emitted          atomic.Uint64
	filtered         atomic.Uint64
	listenerFailures atomic.Uint64
}

// LoggerStats is a point-in-time counters snapshot of a Logger and its queue.
type LoggerStats struct {
	Emitted          uint64
	Filtered         uint64
	ListenerFailures uint64
	Queue            QueueStats
}
