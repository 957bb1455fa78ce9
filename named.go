package xlogq

// NamedLogger logs through a Logger under a fixed tag, with optional bound
// fields. It is immutable; With and Named return new views.
type NamedLogger struct {
	l      *Logger
	tag    Literal
	fields []Field
}

func (n *NamedLogger) Tag() string     { return string(n.tag) }
func (n *NamedLogger) Logger() *Logger { return n.l }

// Fields returns a copy of the bound fields.
func (n *NamedLogger) Fields() []Field { return copyFields(nil, n.fields) }

// With returns a child carrying n's fields followed by fs.
func (n *NamedLogger) With(fs ...Field) *NamedLogger {
	bound := copyFields(make([]Field, 0, len(n.fields)+len(fs)), n.fields)
	return &NamedLogger{l: n.l, tag: n.tag, fields: copyFields(bound, fs)}
}

// Named keeps the bound fields under a new tag.
func (n *NamedLogger) Named(tag string) *NamedLogger {
	return &NamedLogger{l: n.l, tag: Literal(tag), fields: n.fields}
}

func (n *NamedLogger) Verbose(msg string, fs ...Field) { n.l.log(LevelVerbose, n.tag, n.fields, msg, fs) }
func (n *NamedLogger) Log(msg string, fs ...Field)     { n.l.log(LevelLog, n.tag, n.fields, msg, fs) }
func (n *NamedLogger) Info(msg string, fs ...Field)    { n.l.log(LevelInfo, n.tag, n.fields, msg, fs) }
func (n *NamedLogger) Warn(msg string, fs ...Field)    { n.l.log(LevelWarn, n.tag, n.fields, msg, fs) }
func (n *NamedLogger) Error(msg string, fs ...Field)   { n.l.log(LevelError, n.tag, n.fields, msg, fs) }
func (n *NamedLogger) Fatal(msg string, fs ...Field)   { n.l.log(LevelFatal, n.tag, n.fields, msg, fs) }

// At starts a fluent entry carrying this logger's tag and bound fields.
func (n *NamedLogger) At(level Level) *Entry { return getEntry(n.l, level, n.tag, n.fields) }
