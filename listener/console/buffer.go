package console

import "sync"

// buffer is a growing byte buffer reused across lines.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }
func (buf *buffer) writeBytes(p []byte)  { buf.b = append(buf.b, p...) }

func (buf *buffer) grow(n int) {
	if n <= cap(buf.b)-len(buf.b) {
		return
	}
	need := len(buf.b) + n
	newCap := max(cap(buf.b)*2, need)
	nb := make([]byte, len(buf.b), newCap)
	copy(nb, buf.b)
	buf.b = nb
}

// maxPooled caps what goes back to the pool so one huge line does not pin memory.
const maxPooled = 64 * 1024

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 2048)} }}

func getBuf(initCap int) *buffer {
	buf := bufPool.Get().(*buffer)
	if cap(buf.b) < initCap {
		buf.b = make([]byte, 0, initCap)
	} else {
		buf.b = buf.b[:0]
	}
	return buf
}

func putBuf(buf *buffer) {
	if cap(buf.b) <= maxPooled {
		bufPool.Put(buf)
	}
}
