package pager

import (
	"bytes"
	"strings"
	"sync"
	"time"
)

// syncBuffer lets a test read output while a session goroutine writes it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) waitFor(substr string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(b.String(), substr) {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return strings.Contains(b.String(), substr)
}

func drawn(state ScrollState) string {
	return ansiReverse + promptText(state) + ansiAttrOff
}

func erased(state ScrollState) string {
	return strings.Repeat("\b", PromptWidth(state)) + ansiClearLine
}

func stopped(micros int64) ScrollState {
	return ScrollState{Mode: Stopped, IntervalMicros: micros}
}

func scrolling(micros int64) ScrollState {
	return ScrollState{Mode: Scrolling, IntervalMicros: micros}
}

func newTestSession(content string, view Viewport, interval time.Duration) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	s := NewSession(&out, view, []byte(content), SessionOptions{Interval: interval, TTYPath: "/dev/tty"})
	return s, &out
}
