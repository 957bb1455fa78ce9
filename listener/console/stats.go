package console

import "sync/atomic"

type stats struct {
	written  atomic.Uint64
	bytes    atomic.Uint64
	filtered atomic.Uint64
	errors   atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Written  uint64
	Bytes    uint64
	Filtered uint64
	Errors   uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Written:  s.written.Load(),
		Bytes:    s.bytes.Load(),
		Filtered: s.filtered.Load(),
		Errors:   s.errors.Load(),
	}
}

func (s *stats) reset() {
	s.written.Store(0)
	s.bytes.Store(0)
	s.filtered.Store(0)
	s.errors.Store(0)
}
