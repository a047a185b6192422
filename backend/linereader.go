package backend

import (
	"bufio"
	"errors"
	"io"
)

// LineReader is a specialized reader that ensures only entire newline-delimited lines are
// read at a time. This is useful when attempting to parse a file that is being actively
// written to as a CSV, as you don't actually attempt to parse any partial lines.
type LineReader struct {
	r *bufio.Reader
	// partial holds the start of a line that has not been terminated yet.
	partial []byte
	// line holds the unread remainder of the current complete line.
	line []byte
}

var _ io.Reader = (*LineReader)(nil)

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		r: bufio.NewReader(r),
	}
}

// Read copies at most one complete line into b. An unterminated trailing line is held
// back and reported as io.EOF until its newline arrives.
func (l *LineReader) Read(b []byte) (int, error) {
	if len(l.line) == 0 {
		data, err := l.r.ReadBytes(byte('\n'))
		if err != nil {
			l.partial = append(l.partial, data...)
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, err
		}
		l.line = append(l.partial, data...)
		l.partial = nil
	}
	n := copy(b, l.line)
	l.line = l.line[n:]
	return n, nil
}

// Pending returns the number of bytes of unterminated line held back.
func (l *LineReader) Pending() int {
	return len(l.partial)
}
