//go:build windows || plan9 || js || wasip1

package pager

import "os"

func interruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
