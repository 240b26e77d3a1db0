//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package pager

import (
	"bufio"
	"errors"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sys/unix"
)

// startKeyReader reads keys from input on its own goroutine until done is
// closed. Blocking in select(2) on the terminal and a cancel pipe lets the
// goroutine exit without waiting for another keystroke.
func startKeyReader(input *os.File, done <-chan struct{}) (<-chan *tcell.EventKey, <-chan error) {
	events := make(chan *tcell.EventKey, 1)
	errCh := make(chan error, 1)
	if input == nil {
		errCh <- errors.New("no pager input available")
		return events, errCh
	}
	cancelR, cancelW, err := os.Pipe()
	if err != nil {
		errCh <- err
		return events, errCh
	}
	reader := bufio.NewReader(input)

	go func() {
		defer func() {
			_ = cancelR.Close()
		}()
		inputFd := int(input.Fd())
		cancelFd := int(cancelR.Fd())
		maxfd := inputFd
		if cancelFd > maxfd {
			maxfd = cancelFd
		}
		for {
			if reader.Buffered() == 0 {
				var readfds unix.FdSet
				readfds.Set(inputFd)
				readfds.Set(cancelFd)
				n, err := unix.Select(maxfd+1, &readfds, nil, nil, nil)
				if err == unix.EINTR {
					continue
				}
				if err != nil {
					sendErr(errCh, err)
					return
				}
				if n == 0 {
					continue
				}
				if readfds.IsSet(cancelFd) {
					return
				}
				if !readfds.IsSet(inputFd) {
					continue
				}
			}
			ev, err := readKeyEvent(reader)
			if err != nil {
				sendErr(errCh, err)
				return
			}
			select {
			case <-done:
				return
			case events <- ev:
			}
		}
	}()

	go func() {
		<-done
		_, _ = cancelW.Write([]byte{1})
		_ = cancelW.Close()
	}()

	return events, errCh
}

func sendErr(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
	}
}
