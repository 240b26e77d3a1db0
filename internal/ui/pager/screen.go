package pager

import (
	"bufio"
	"io"
)

// screen is the single output sink shared by every component of a session.
// Writers flush after each logical unit (a row, a prompt draw or erase).
type screen struct {
	writer *bufio.Writer
}

func newScreen(w io.Writer) *screen {
	return &screen{writer: bufio.NewWriter(w)}
}

func (s *screen) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

func (s *screen) writeString(str string) {
	_, _ = s.writer.WriteString(str)
}

func (s *screen) writeBytes(b []byte) {
	_, _ = s.writer.Write(b)
}

func (s *screen) flush() {
	_ = s.writer.Flush()
}
