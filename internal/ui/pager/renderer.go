package pager

import (
	"github.com/kk-code-lab/scroll/internal/layout"
)

const endOfFileNotice = "End of file.\n"

// Viewport is the terminal size captured at startup.
type Viewport struct {
	Cols int
	Rows int
}

// Renderer owns the read cursor into the buffer and prints rows from it.
type Renderer struct {
	out    *screen
	status *StatusLine
	buf    []byte
	cursor int
	view   Viewport
}

func newRenderer(out *screen, status *StatusLine, buf []byte, view Viewport) *Renderer {
	return &Renderer{out: out, status: status, buf: buf, view: view}
}

// Cursor returns the offset of the first byte not yet shown.
func (r *Renderer) Cursor() int {
	return r.cursor
}

// AtEnd reports whether every byte of the buffer has been shown.
func (r *Renderer) AtEnd() bool {
	return r.cursor >= len(r.buf)
}

// Step prints the next row and reports whether it was the last one.
func (r *Renderer) Step() bool {
	row, next, end := layout.NextRow(r.buf, r.cursor, r.view.Cols)
	if !row.Empty() {
		r.out.writeBytes(row.Bytes())
	}
	r.cursor = next
	r.out.flush()
	return end
}

// EndOfFile prints the end-of-file notice.
func (r *Renderer) EndOfFile() {
	r.out.writeString(endOfFileNotice)
	r.out.flush()
}

// FillScreen prints up to one screen of rows, leaving the last terminal row
// for the prompt, and then draws the prompt for state. When hasPrompt is set
// the prompt currently on screen is erased first.
func (r *Renderer) FillScreen(state ScrollState, hasPrompt bool) {
	if hasPrompt {
		r.status.Erase()
	}
	for n := 0; n < r.view.Rows-1; n++ {
		if r.Step() {
			r.EndOfFile()
			break
		}
	}
	r.status.Draw(state)
}
