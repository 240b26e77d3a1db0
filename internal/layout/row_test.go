package layout

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kk-code-lab/scroll/internal/textutil"
)

func TestNextRowWrapsAtWordBoundary(t *testing.T) {
	buf := []byte("hello world\n")

	row, next, end := NextRow(buf, 0, 8)
	if got := row.String(); got != "hello\n" {
		t.Fatalf("first row=%q want %q", got, "hello\n")
	}
	if next != 6 || end {
		t.Fatalf("first row next=%d end=%v want 6,false", next, end)
	}

	row, next, end = NextRow(buf, next, 8)
	if got := row.String(); got != "world\n" {
		t.Fatalf("second row=%q want %q", got, "world\n")
	}
	if next != len(buf) || !end {
		t.Fatalf("second row next=%d end=%v want %d,true", next, end, len(buf))
	}
}

func TestNextRowExpandsTabs(t *testing.T) {
	buf := []byte("a\tb")
	row, next, end := NextRow(buf, 0, 10)
	if string(row.Text) != "a\tb" {
		t.Fatalf("row text=%q want %q", row.Text, "a\tb")
	}
	if rowWidth(row.Text) != 9 {
		t.Fatalf("row width=%d want 9", rowWidth(row.Text))
	}
	if !row.Break {
		t.Fatalf("expected terminator after unterminated final row")
	}
	if next != 3 || !end {
		t.Fatalf("next=%d end=%v want 3,true", next, end)
	}

	// The same row no longer fits once the tab stop reaches the edge.
	row, next, _ = NextRow(buf, 0, 9)
	if string(row.Text) != "a\t" || next != 2 {
		t.Fatalf("narrow row=%q next=%d want %q,2", row.Text, next, "a\t")
	}
}

func TestNextRowEmptyBuffer(t *testing.T) {
	row, next, end := NextRow(nil, 0, 80)
	if !row.Empty() || next != 0 || !end {
		t.Fatalf("empty buffer gave row=%q next=%d end=%v", row.String(), next, end)
	}

	buf := []byte("abc\n")
	row, next, end = NextRow(buf, len(buf), 80)
	if !row.Empty() || next != len(buf) || !end {
		t.Fatalf("cursor at end gave row=%q next=%d end=%v", row.String(), next, end)
	}
}

func TestNextRowCarriageReturnSuppressesTerminator(t *testing.T) {
	buf := []byte("abc def\r\n")
	row, next, _ := NextRow(buf, 0, 7)
	// "def\r" is deferred; the byte after the row is 'd', so a break is added.
	if row.String() != "abc\n" || next != 4 {
		t.Fatalf("row=%q next=%d", row.String(), next)
	}

	buf = []byte("abc\rdefxyz")
	row, next, _ = NextRow(buf, 0, 4)
	if next != 3 {
		t.Fatalf("hard break next=%d want 3", next)
	}
	if row.Break {
		t.Fatalf("did not expect terminator before hard-broken text")
	}

	buf = []byte("ab\r\rcd")
	row, next, _ = NextRow(buf, 0, 3)
	if string(row.Text) != "ab" || next != 2 || row.Break {
		t.Fatalf("row=%q next=%d break=%v want \"ab\",2,false", row.Text, next, row.Break)
	}
}

func TestNextRowKeepsSourceNewline(t *testing.T) {
	buf := []byte("one\ntwo\n")
	row, next, end := NextRow(buf, 0, 80)
	if row.String() != "one\n" || row.Break || next != 4 || end {
		t.Fatalf("row=%q break=%v next=%d end=%v", row.String(), row.Break, next, end)
	}
}

func TestNextRowBlankLines(t *testing.T) {
	buf := []byte("\n\nx")
	var rows []string
	cursor := 0
	for {
		row, next, end := NextRow(buf, cursor, 10)
		rows = append(rows, row.String())
		cursor = next
		if end {
			break
		}
	}
	want := []string{"\n", "\n", "x\n"}
	if strings.Join(rows, "|") != strings.Join(want, "|") {
		t.Fatalf("rows=%q want %q", rows, want)
	}
}

func TestNextRowHardBreaksLongWord(t *testing.T) {
	buf := []byte("abcdefghij klm")
	row, next, end := NextRow(buf, 0, 4)
	if string(row.Text) != "abc" || !row.Break || next != 3 || end {
		t.Fatalf("row=%q break=%v next=%d end=%v", row.Text, row.Break, next, end)
	}

	var got []string
	cursor := 0
	for calls := 0; ; calls++ {
		if calls > len(buf) {
			t.Fatalf("no end after %d calls", calls)
		}
		row, next, end := NextRow(buf, cursor, 4)
		got = append(got, string(row.Text))
		cursor = next
		if end {
			break
		}
	}
	want := []string{"abc", "def", "ghi", "j", "klm"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("rows=%q want %q", got, want)
	}
}

func TestNextRowSingleColumn(t *testing.T) {
	buf := []byte("ab")
	row, next, _ := NextRow(buf, 0, 1)
	if string(row.Text) != "a" || next != 1 {
		t.Fatalf("row=%q next=%d want \"a\",1", row.Text, next)
	}
}

func TestNextRowNarrowViewportTab(t *testing.T) {
	buf := []byte("\tab")
	for cols := 1; cols <= textutil.TabWidth; cols++ {
		row, next, end := NextRow(buf, 0, cols)
		if len(row.Text) != 0 || !row.Break {
			t.Fatalf("cols=%d: tab row=%q break=%v want blank row", cols, row.Text, row.Break)
		}
		if next != 1 || end {
			t.Fatalf("cols=%d: next=%d end=%v want 1,false", cols, next, end)
		}
		checkRows(t, buf, cols)
	}

	// A tab that fits after text on a narrow row is still measured normally.
	row, next, _ := NextRow([]byte("ab\tc"), 0, 5)
	if string(row.Text) != "ab" || next != 2 {
		t.Fatalf("row=%q next=%d want \"ab\",2", row.Text, next)
	}
}

func TestNextRowMeasuresWideRunes(t *testing.T) {
	buf := []byte("你好 世界")
	row, next, _ := NextRow(buf, 0, 6)
	// "你好 " is five columns; "世界" would make nine.
	if string(row.Text) != "你好" || next != len("你好 ") {
		t.Fatalf("row=%q next=%d", row.Text, next)
	}

	// A multi-byte rune is never split by a hard break.
	buf = []byte("żżżżżż")
	row, next, _ = NextRow(buf, 0, 4)
	if string(row.Text) != "żżż" || next != len("żżż") {
		t.Fatalf("row=%q next=%d", row.Text, next)
	}
}

func TestNextRowTrailingSpacesAtEnd(t *testing.T) {
	buf := []byte("tail  ")
	row, next, end := NextRow(buf, 0, 80)
	if string(row.Text) != "tail  " || !row.Break || next != len(buf) || !end {
		t.Fatalf("row=%q break=%v next=%d end=%v", row.Text, row.Break, next, end)
	}
}

func TestNextRowProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(350))
	alphabet := []byte("abc  \t\n\rxyz-.,")
	for iter := 0; iter < 500; iter++ {
		buf := make([]byte, rng.Intn(200))
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		if rng.Intn(4) == 0 {
			buf = append(buf, []byte("你好żółw")...)
		}
		checkRows(t, buf, 9+rng.Intn(40))
		checkRows(t, buf, 1+rng.Intn(8))
	}
}

func FuzzNextRow(f *testing.F) {
	f.Add([]byte("hello world\n"), 8)
	f.Add([]byte("a\tb"), 10)
	f.Add([]byte(""), 1)
	f.Add([]byte("supercalifragilistic\n\tend"), 5)
	f.Add([]byte{0xff, 0xfe, '\t', ' ', '\r', '\n'}, 2)
	f.Fuzz(func(t *testing.T, buf []byte, cols int) {
		if cols < 1 || cols > 500 {
			t.Skip()
		}
		checkRows(t, buf, cols)
	})
}

// checkRows walks buf to the end and verifies progress, termination, and the
// width bound.
func checkRows(t *testing.T, buf []byte, cols int) {
	t.Helper()
	cursor := 0
	var rebuilt []byte
	for calls := 1; ; calls++ {
		if calls > len(buf)+1 {
			t.Fatalf("cols=%d buf=%q: no end after %d calls", cols, buf, calls-1)
		}
		row, next, end := NextRow(buf, cursor, cols)
		if cursor < len(buf) && next <= cursor {
			t.Fatalf("cols=%d buf=%q: no progress at %d", cols, buf, cursor)
		}
		if next > len(buf) {
			t.Fatalf("cols=%d buf=%q: cursor %d past end", cols, buf, next)
		}
		if w := rowWidth(row.Text); w >= cols && !forcedRune(row.Text) {
			t.Fatalf("cols=%d buf=%q: row %q width %d", cols, buf, row.Text, w)
		}
		if !bytes.HasPrefix(buf[cursor:next], row.Text) {
			t.Fatalf("row %q is not a prefix of consumed bytes %q", row.Text, buf[cursor:next])
		}
		rebuilt = append(rebuilt, buf[cursor:next]...)
		cursor = next
		if end {
			break
		}
	}
	if !bytes.Equal(rebuilt, buf) {
		t.Fatalf("rows do not cover the buffer: %q vs %q", rebuilt, buf)
	}
}

// rowWidth reports the columns text occupies when printed from the first
// column, expanding tabs the way NextRow measures them.
func rowWidth(text []byte) int {
	width := 0
	for len(text) > 0 {
		switch text[0] {
		case '\t':
			width += textutil.TabAdvance(width)
			text = text[1:]
		case '\n':
			text = text[1:]
		default:
			size, w := textutil.NextRune(text)
			width += w
			text = text[size:]
		}
	}
	return width
}

// forcedRune reports whether text is the lone rune a hard break must take
// even though it is as wide as the viewport.
func forcedRune(text []byte) bool {
	text = bytes.TrimSuffix(text, []byte("\n"))
	if len(text) == 0 || text[0] == '\t' {
		return false
	}
	return utf8.RuneCount(text) == 1
}
