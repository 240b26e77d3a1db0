package pager

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/base"

	"github.com/kk-code-lab/scroll/internal/textutil"
)

const (
	promptPrefix = "Current Speed: 1 line per "
	promptSuffix = " seconds  Scrolling: "

	ansiReverse   = "\x1b[7m"
	ansiAttrOff   = "\x1b[0m"
	ansiClearLine = "\x1b[K"
)

// formatSeconds renders an interval the way the status line shows it. Draw
// and PromptWidth both go through here so rounding cannot make them disagree.
func formatSeconds(micros int64) string {
	return strconv.FormatFloat(float64(micros)/1e6, 'f', 3, 64)
}

func promptText(state ScrollState) string {
	return promptPrefix + formatSeconds(state.IntervalMicros) + promptSuffix + state.Mode.Label()
}

// PromptWidth is the number of columns the status line occupies for state.
// It grows with the digits of the formatted interval and with the mode label.
func PromptWidth(state ScrollState) int {
	return textutil.DisplayWidth(promptText(state))
}

// LookupTerminfo returns the terminfo entry for name, or nil when tcell does
// not know the terminal.
func LookupTerminfo(name string) *terminfo.Terminfo {
	if name == "" {
		return nil
	}
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		return nil
	}
	return ti
}

// StatusLine draws the reverse-video prompt on the last row and erases it
// again by backspacing over exactly what it drew.
type StatusLine struct {
	out   *screen
	ti    *terminfo.Terminfo
	shown bool
	last  ScrollState
}

func newStatusLine(out *screen, ti *terminfo.Terminfo) *StatusLine {
	return &StatusLine{out: out, ti: ti}
}

// Draw renders the prompt for state at the cursor position.
func (p *StatusLine) Draw(state ScrollState) {
	if p.shown {
		p.Erase()
	}
	p.attr(p.reverse(), ansiReverse)
	p.out.writeString(promptText(state))
	p.attr(p.attrOff(), ansiAttrOff)
	p.out.flush()
	p.last = state
	p.shown = true
}

// Erase removes the prompt drawn last. The width is recomputed from the state
// that was drawn, not from the current one.
func (p *StatusLine) Erase() {
	if !p.shown {
		return
	}
	p.out.writeString(strings.Repeat("\b", PromptWidth(p.last)))
	p.out.writeString(ansiClearLine)
	p.out.flush()
	p.shown = false
}

func (p *StatusLine) reverse() string {
	if p.ti == nil {
		return ""
	}
	return p.ti.Reverse
}

func (p *StatusLine) attrOff() string {
	if p.ti == nil {
		return ""
	}
	return p.ti.AttrOff
}

func (p *StatusLine) attr(seq, fallback string) {
	if seq == "" {
		p.out.writeString(fallback)
		return
	}
	// TPuts honours terminfo padding such as vt100's "$<2>".
	p.ti.TPuts(p.out, seq)
}
