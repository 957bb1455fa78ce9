package xlogq

import "time"

// Event is a single log record. It is built once at the call site and then
// shared read-only between the queued action and every listener; nothing
// mutates it after construction.
type Event struct {
	Level     Level
	Content   Message
	Tag       Message
	Color     Color
	Goroutine uint64 // id of the goroutine that logged
	At        time.Time
	Fields    []Field
}

// Message renders the content as text.
func (e *Event) Message() string { return textOf(e.Content) }

// TagText renders the tag as text.
func (e *Event) TagText() string { return textOf(e.Tag) }

// newEvent copies bound fields first, then the call's own fields.
func newEvent(level Level, content, tag Message, color Color, at time.Time, bound, fields []Field) *Event {
	ev := &Event{
		Level:     level,
		Content:   cloneOf(content),
		Tag:       cloneOf(tag),
		Color:     color,
		Goroutine: goroutineID(),
		At:        at,
	}
	if n := len(bound) + len(fields); n > 0 {
		ev.Fields = copyFields(copyFields(make([]Field, 0, n), bound), fields)
	}
	return ev
}
