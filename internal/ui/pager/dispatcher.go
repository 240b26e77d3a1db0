package pager

import "github.com/gdamore/tcell/v2"

const (
	speedUpFactor  = 0.8
	slowDownFactor = 1.2
)

// Dispatcher maps keystrokes from the controlling terminal to pager
// operations.
type Dispatcher struct {
	ctrl     *Controller
	renderer *Renderer
	status   *StatusLine
}

func newDispatcher(ctrl *Controller, renderer *Renderer, status *StatusLine) *Dispatcher {
	return &Dispatcher{ctrl: ctrl, renderer: renderer, status: status}
}

// Dispatch handles one key and reports whether the session should end.
func (d *Dispatcher) Dispatch(ev *tcell.EventKey) bool {
	if ev == nil {
		return false
	}
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyLF:
		d.ctrl.Toggle()
	case tcell.KeyCtrlC:
		d.status.Erase()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			d.ctrl.Stop()
			d.renderer.FillScreen(d.ctrl.State(), true)
		case 'f':
			d.ctrl.Retime(speedUpFactor)
		case 's':
			d.ctrl.Retime(slowDownFactor)
		case 'q':
			d.status.Erase()
			return true
		}
	}
	return false
}
