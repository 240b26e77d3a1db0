package pager

import (
	"bufio"
	"errors"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// readKeyEvent decodes one keystroke from the terminal. Escape sequences are
// consumed whole and reported as KeyEscape so their trailing bytes are not
// mistaken for commands.
func readKeyEvent(reader *bufio.Reader) (*tcell.EventKey, error) {
	if reader == nil {
		return nil, errors.New("no reader available")
	}
	b, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}

	switch b {
	case '\r', '\n':
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), nil
	case 0x03:
		return tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), nil
	case 0x1b:
		skipEscapeSequence(reader)
		return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), nil
	}

	if b < utf8.RuneSelf {
		return tcell.NewEventKey(tcell.KeyRune, rune(b), tcell.ModNone), nil
	}

	seq := []byte{b}
	for !utf8.FullRune(seq) {
		next, err := reader.ReadByte()
		if err != nil {
			break
		}
		seq = append(seq, next)
	}
	r, _ := utf8.DecodeRune(seq)
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), nil
}

// skipEscapeSequence drops the rest of a CSI or SS3 sequence that is already
// buffered. A lone ESC keypress leaves the reader untouched.
func skipEscapeSequence(reader *bufio.Reader) {
	if reader.Buffered() == 0 {
		return
	}
	next, err := reader.ReadByte()
	if err != nil {
		return
	}
	switch next {
	case 'O':
		_, _ = reader.ReadByte()
	case '[':
		for i := 0; i < 8; i++ {
			b, err := reader.ReadByte()
			if err != nil || (b >= 0x40 && b <= 0x7e) {
				return
			}
		}
	default:
		_ = reader.UnreadByte()
	}
}
