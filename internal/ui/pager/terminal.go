package pager

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var termGetSize = term.GetSize

// Terminal is the controlling terminal the pager reads keys from. Content
// may arrive on stdin, so keys never do.
type Terminal struct {
	path  string
	file  *os.File
	saved *savedMode
}

// OpenTerminal opens the terminal device at path for reading and writing.
func OpenTerminal(path string) (*Terminal, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, &IOError{Message: "Problem reading from keyboard.", Entity: path, Err: err}
	}
	if !term.IsTerminal(int(f.Fd())) {
		_ = f.Close()
		return nil, &IOError{Message: "Problem reading from keyboard.", Entity: path, Err: errors.New("not a terminal")}
	}
	return &Terminal{path: path, file: f}, nil
}

// Path is the device path the terminal was opened from.
func (t *Terminal) Path() string {
	return t.path
}

// File returns the open terminal device.
func (t *Terminal) File() *os.File {
	return t.file
}

// Viewport returns the size of the first descriptor in fds that reports a
// usable size. The output descriptor is normally tried first.
func (t *Terminal) Viewport(fds ...int) (Viewport, error) {
	var lastErr error
	for _, fd := range fds {
		cols, rows, err := termGetSize(fd)
		if err != nil {
			lastErr = err
			continue
		}
		if cols > 0 && rows > 0 {
			return Viewport{Cols: cols, Rows: rows}, nil
		}
		lastErr = fmt.Errorf("degenerate size %dx%d", cols, rows)
	}
	if lastErr == nil {
		lastErr = errors.New("no descriptor to query")
	}
	return Viewport{}, &IOError{Message: "Cannot read terminal size:", Entity: t.path, Err: lastErr}
}

// EnterCbreak disables echo and line buffering so each keystroke is
// delivered immediately. Signal generation stays enabled.
func (t *Terminal) EnterCbreak() error {
	saved, err := enterCbreak(int(t.file.Fd()))
	if err != nil {
		return &IOError{Message: "Cannot configure terminal:", Entity: t.path, Err: err}
	}
	t.saved = saved
	return nil
}

// Restore puts back the mode saved by EnterCbreak. It is safe to call more
// than once.
func (t *Terminal) Restore() error {
	if t == nil || t.saved == nil {
		return nil
	}
	err := restoreMode(int(t.file.Fd()), t.saved)
	t.saved = nil
	return err
}

// Close restores the terminal mode and closes the device.
func (t *Terminal) Close() error {
	if t == nil || t.file == nil {
		return nil
	}
	restoreErr := t.Restore()
	closeErr := t.file.Close()
	t.file = nil
	return errors.Join(restoreErr, closeErr)
}
