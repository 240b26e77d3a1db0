//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package pager

import (
	"errors"
	"os"

	"github.com/gdamore/tcell/v2"
)

// startKeyReader is unsupported without select(2); the session reports it as
// a keyboard read failure.
func startKeyReader(input *os.File, done <-chan struct{}) (<-chan *tcell.EventKey, <-chan error) {
	errCh := make(chan error, 1)
	errCh <- errors.New("keyboard input is not supported on this platform")
	return nil, errCh
}
