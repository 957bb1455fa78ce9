package xlogq

// Message is the loggable payload carried by an Event: anything that can
// render itself as text and produce an independent copy.
type Message interface {
	Text() string
	Clone() Message
}

// Literal is a plain-text Message.
type Literal string

func (l Literal) Text() string   { return string(l) }
func (l Literal) Clone() Message { return l }
func (l Literal) String() string { return string(l) }

func textOf(m Message) string {
	if m == nil {
		return ""
	}
	return m.Text()
}

func cloneOf(m Message) Message {
	if m == nil {
		return nil
	}
	return m.Clone()
}
