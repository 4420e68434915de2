package correct

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrStreamExhausted is reported when a stream ends while more lines are required.
var ErrStreamExhausted = errors.New("stream exhausted")

// StreamError describes a failure reading one of the two input streams.
type StreamError struct {
	Stream string
	// Line is the number of lines successfully read before the failure.
	Line int
	Err  error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("%s: after line %d: %v", e.Stream, e.Line, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }

// Stream is a finite, forward-only sequence of lines read on demand.
type Stream struct {
	name string
	s    *bufio.Scanner
	line int
	err  error
}

func NewStream(name string, r io.Reader) *Stream {
	s := bufio.NewScanner(r)
	// Allow long proprietary sentences.
	s.Buffer(make([]byte, 0, 4*1024), 1024*1024)
	return &Stream{name: name, s: s}
}

func (st *Stream) Name() string { return st.name }

// Lines returns how many lines have been consumed so far.
func (st *Stream) Lines() int { return st.line }

// Next returns the next line. ok is false once the stream is exhausted; err is
// non-nil only for an underlying read failure.
func (st *Stream) Next() (line string, ok bool, err error) {
	if st.err != nil {
		return "", false, st.err
	}
	if !st.s.Scan() {
		if err := st.s.Err(); err != nil {
			st.err = &StreamError{Stream: st.name, Line: st.line, Err: err}
			return "", false, st.err
		}
		return "", false, nil
	}
	st.line++
	return st.s.Text(), true, nil
}

// Need is Next for callers that cannot continue without another line.
func (st *Stream) Need() (string, error) {
	line, ok, err := st.Next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &StreamError{Stream: st.name, Line: st.line, Err: ErrStreamExhausted}
	}
	return line, nil
}
