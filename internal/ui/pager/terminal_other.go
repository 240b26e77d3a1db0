//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package pager

import "errors"

type savedMode struct{}

var errNoTermios = errors.New("terminal modes are not supported on this platform")

func enterCbreak(fd int) (*savedMode, error) {
	return nil, errNoTermios
}

func restoreMode(fd int, saved *savedMode) error {
	return errNoTermios
}
