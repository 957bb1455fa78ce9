package xlogq

import (
	"sync"
	"time"
)

// Entry is a fluent builder for a single event.
// API: log.At(LevelInfo).Str("from", a).Dur("took", d).Msg("state changed")
//
// The builder is pooled; do not keep it after Msg.
type Entry struct {
	l      *Logger
	level  Level
	tag    Message
	color  Color
	bound  []Field // shared with the NamedLogger; never written
	fields []Field
}

var entryPool = sync.Pool{
	New: func() any { return &Entry{fields: make([]Field, 0, 8)} },
}

func getEntry(l *Logger, level Level, tag Message, bound []Field) *Entry {
	e := entryPool.Get().(*Entry)
	e.l = l
	e.level = level
	e.tag = tag
	e.bound = bound
	e.color = levelColor(level)
	e.fields = e.fields[:0]
	return e
}

func (e *Entry) putBack() {
	// allow GC of large backing arrays by capping
	if cap(e.fields) > 128 {
		e.fields = make([]Field, 0, 8)
	}
	clear(e.fields)
	e.l = nil
	e.tag = nil
	e.bound = nil
	e.color = Color{}
	entryPool.Put(e)
}

// Color overrides the level's default color.
func (e *Entry) Color(c Color) *Entry {
	e.color = c
	return e
}

func (e *Entry) Str(k, v string) *Entry               { return e.add(Str(k, v)) }
func (e *Entry) Int(k string, v int) *Entry           { return e.add(Int(k, v)) }
func (e *Entry) Int64(k string, v int64) *Entry       { return e.add(Int64(k, v)) }
func (e *Entry) Uint64(k string, v uint64) *Entry     { return e.add(Uint64(k, v)) }
func (e *Entry) Float64(k string, v float64) *Entry   { return e.add(Float64(k, v)) }
func (e *Entry) Bool(k string, v bool) *Entry         { return e.add(Bool(k, v)) }
func (e *Entry) Dur(k string, v time.Duration) *Entry { return e.add(Dur(k, v)) }
func (e *Entry) Time(k string, v time.Time) *Entry    { return e.add(Time(k, v)) }
func (e *Entry) Bytes(k string, v []byte) *Entry      { return e.add(Bytes(k, v)) }
func (e *Entry) Any(k string, v any) *Entry           { return e.add(Any(k, v)) }

func (e *Entry) Err(err error) *Entry {
	if err == nil {
		return e
	}
	return e.add(Err(err))
}

func (e *Entry) add(f Field) *Entry {
	e.fields = append(e.fields, f)
	return e
}

// Msg terminates the builder and queues the event.
func (e *Entry) Msg(msg string) {
	if err := e.l.emit(e.level, Literal(msg), e.tag, e.color, e.bound, e.fields); err != nil {
		e.l.onErr(err)
	}
	e.putBack()
}
