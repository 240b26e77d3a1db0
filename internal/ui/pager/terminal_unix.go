//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package pager

import "golang.org/x/sys/unix"

type savedMode struct {
	termios unix.Termios
}

func enterCbreak(fd int) (*savedMode, error) {
	current, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	saved := &savedMode{termios: *current}

	cbreak := *current
	cbreak.Lflag &^= unix.ECHO | unix.ICANON
	cbreak.Cc[unix.VMIN] = 1
	cbreak.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &cbreak); err != nil {
		return nil, err
	}
	return saved, nil
}

func restoreMode(fd int, saved *savedMode) error {
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, &saved.termios)
}
