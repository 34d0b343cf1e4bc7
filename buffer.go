package dirdiff

import (
	"errors"
	"io"
)

// streamBuffer holds the undecided bytes of one input in buf[:n].
type streamBuffer struct {
	name string
	rd   io.Reader
	buf  []byte
	n    int
	eof  bool

	read  int64
	fills int
}

func newStreamBuffer(name string, rd io.Reader, capacity int) *streamBuffer {
	return &streamBuffer{
		name: name,
		rd:   rd,
		buf:  make([]byte, capacity),
	}
}

// fill tops the buffer up. A read that can't fill the buffer marks the end
// of the stream.
func (sb *streamBuffer) fill() error {
	if sb.eof || sb.n == len(sb.buf) {
		return nil
	}
	n, err := io.ReadFull(sb.rd, sb.buf[sb.n:])
	sb.n += n
	sb.read += int64(n)
	sb.fills++
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		sb.eof = true
	default:
		return ReadError{Path: sb.name, err: err}
	}
	return nil
}

func (sb *streamBuffer) canGrow() bool { return !sb.eof && sb.n < len(sb.buf) }

func (sb *streamBuffer) window() window {
	return window{data: sb.buf[:sb.n], atEnd: sb.eof}
}

// retain keeps the last rest bytes of the current content and moves them to
// the start of the buffer.
func (sb *streamBuffer) retain(rest int) {
	if rest > 0 {
		copy(sb.buf, sb.buf[sb.n-rest:sb.n])
	}
	sb.n = rest
}
