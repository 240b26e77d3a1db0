package textutil

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the distance between terminal tab stops.
const TabWidth = 8

// TabAdvance reports how many columns a tab occupies when it starts at column.
func TabAdvance(column int) int {
	if column < 0 {
		column = 0
	}
	return TabWidth - (column % TabWidth)
}

// RuneWidth reports the printable width of r. Zero-width and control runes
// occupy one column so that every byte of raw input makes progress.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return 1
	}
	return w
}

// NextRune decodes the rune at the start of b and returns its size in bytes
// and its display width. Invalid encodings count as a single one-column byte.
func NextRune(b []byte) (size, width int) {
	if len(b) == 0 {
		return 0, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 1, 1
	}
	return size, RuneWidth(r)
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += RuneWidth(ru)
	}
	return width
}
