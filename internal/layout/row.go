// Package layout breaks a byte buffer into display rows for a fixed-width
// terminal. It performs no I/O and keeps no state between calls.
package layout

import (
	"bytes"

	textutil "github.com/kk-code-lab/scroll/internal/textutil"
)

// Row is one display row produced by NextRow.
//
// Text aliases the source buffer. When the row was ended by wrapping, trailing
// spaces are dropped from Text; the cursor still moves past them.
type Row struct {
	Text  []byte
	Break bool // a line terminator must follow Text
}

// Empty reports whether rendering the row would write nothing.
func (r Row) Empty() bool {
	return len(r.Text) == 0 && !r.Break
}

// Bytes returns the rendered row including the terminator if one is needed.
func (r Row) Bytes() []byte {
	if !r.Break {
		return r.Text
	}
	out := make([]byte, 0, len(r.Text)+1)
	out = append(out, r.Text...)
	return append(out, '\n')
}

func (r Row) String() string {
	return string(r.Bytes())
}

// NextRow lays out the row starting at cursor for a viewport cols columns
// wide. It returns the row, the offset of the first byte not consumed, and
// whether that offset is the end of buf.
//
// Words are runs of bytes other than space, tab and newline; a word is never
// split across rows unless it cannot fit on an otherwise empty row, in which
// case it is broken at the column boundary. Tabs advance to the next multiple
// of textutil.TabWidth; a tab that cannot fit on an empty row is consumed as a
// blank row. A row is always narrower than cols unless it holds the single
// rune a hard break is forced to take.
func NextRow(buf []byte, cursor, cols int) (Row, int, bool) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(buf) {
		return Row{}, len(buf), true
	}
	if cols < 1 {
		cols = 1
	}

	pos := cursor  // leading scan position
	safe := cursor // everything before safe belongs to this row
	rowLen := 0
	complete := false
	wrapped := false
	blankTab := false

	for rowLen < cols && !complete {
		wordStart := pos
		wordLen := 0
		hasWord := false
		for pos < len(buf) && !hasWord {
			switch buf[pos] {
			case '\t':
				wordLen += textutil.TabAdvance(rowLen + wordLen)
				hasWord = true
				pos++
			case '\n':
				hasWord = true
				complete = true
				pos++
			case ' ':
				wordLen++
				hasWord = true
				pos++
			default:
				size, width := textutil.NextRune(buf[pos:])
				wordLen += width
				pos += size
			}
		}
		if pos >= len(buf) {
			complete = true
		}

		if rowLen+wordLen < cols {
			rowLen += wordLen
			safe = pos
			continue
		}

		if rowLen == 0 {
			safe = hardBreak(buf[:pos], wordStart, cols)
			blankTab = buf[wordStart] == '\t' && textutil.TabAdvance(0) >= cols
		}
		wrapped = true
		complete = true
	}

	text := buf[cursor:safe]
	row := Row{Text: text}
	switch {
	case text[len(text)-1] == '\n':
	case safe < len(buf) && buf[safe] == '\r':
	default:
		row.Break = true
	}
	switch {
	case blankTab:
		row.Text = text[:0]
	case wrapped:
		row.Text = bytes.TrimRight(text, " ")
	}
	return row, safe, safe >= len(buf)
}

// hardBreak returns the end of the longest prefix of buf[start:] narrower than
// cols. At least one rune is always taken so the caller makes progress.
func hardBreak(buf []byte, start, cols int) int {
	pos := start
	width := 0
	for pos < len(buf) {
		var size, w int
		switch buf[pos] {
		case '\t':
			size, w = 1, textutil.TabAdvance(width)
		case ' ':
			size, w = 1, 1
		case '\n':
			size, w = 1, 0
		default:
			size, w = textutil.NextRune(buf[pos:])
		}
		if width+w >= cols && pos > start {
			break
		}
		width += w
		pos += size
	}
	return pos
}
