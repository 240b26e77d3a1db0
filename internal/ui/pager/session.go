package pager

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/terminfo"
	"pkt.systems/pslog"
)

var notifyContext = signal.NotifyContext

// Options configures one pager run.
type Options struct {
	TTYPath  string
	Interval time.Duration
	Term     string   // $TERM, used to look up prompt attributes
	Output   *os.File // where rows and the prompt are written
}

// SessionOptions configures a Session independently of any terminal device.
type SessionOptions struct {
	Interval time.Duration
	Terminfo *terminfo.Terminfo
	Logger   pslog.Logger
	TTYPath  string // named in keyboard read errors
}

// Session holds everything that lives for one invocation: the buffer and
// cursor (via the renderer), the scroll state, and the output stream. Its Run
// loop is the only goroutine that touches any of them.
type Session struct {
	out      *screen
	status   *StatusLine
	renderer *Renderer
	ctrl     *Controller
	dispatch *Dispatcher
	log      pslog.Logger
	ttyPath  string
}

// NewSession prepares a session that writes to out.
func NewSession(out io.Writer, view Viewport, buf []byte, opts SessionOptions) *Session {
	log := opts.Logger
	if log == nil {
		log = pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, NoColor: true})
	}
	scr := newScreen(out)
	status := newStatusLine(scr, opts.Terminfo)
	renderer := newRenderer(scr, status, buf, view)
	state := ScrollState{Mode: Stopped, IntervalMicros: IntervalMicrosFor(opts.Interval)}
	ctrl := newController(state, status, renderer, log)
	return &Session{
		out:      scr,
		status:   status,
		renderer: renderer,
		ctrl:     ctrl,
		dispatch: newDispatcher(ctrl, renderer, status),
		log:      log,
		ttyPath:  opts.TTYPath,
	}
}

// Run draws the first screen and then serves keys and ticks until the user
// quits, the terminal reaches end of input, or ctx is cancelled. Cancellation
// is a normal exit.
func (s *Session) Run(ctx context.Context, keys <-chan *tcell.EventKey, keyErrs <-chan error) error {
	defer s.ctrl.Stop()

	s.renderer.FillScreen(s.ctrl.State(), false)
	s.log.Debug("session started", "bytes", len(s.renderer.buf), "cols", s.renderer.view.Cols, "rows", s.renderer.view.Rows)

	for {
		select {
		case <-ctx.Done():
			s.status.Erase()
			s.log.Debug("session interrupted", "cursor", s.renderer.Cursor())
			return nil
		case <-s.ctrl.Ticks():
			s.ctrl.Tick()
		case ev, ok := <-keys:
			if !ok {
				s.status.Erase()
				return nil
			}
			if s.dispatch.Dispatch(ev) {
				s.log.Debug("session finished", "cursor", s.renderer.Cursor(), "at_end", s.renderer.AtEnd())
				return nil
			}
		case err := <-keyErrs:
			s.status.Erase()
			if errors.Is(err, io.EOF) {
				s.log.Debug("terminal closed", "cursor", s.renderer.Cursor())
				return nil
			}
			return &IOError{Message: "Problem reading from keyboard.", Entity: s.ttyPath, Err: err}
		}
	}
}

// Run pages buf on the controlling terminal. The terminal is restored on
// every return path.
func Run(ctx context.Context, buf []byte, opts Options) error {
	log := pslog.Ctx(ctx)
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	// Catch signals before the terminal mode changes.
	ctx, stop := notifyContext(ctx, interruptSignals()...)
	defer stop()

	tty, err := OpenTerminal(opts.TTYPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = tty.Close()
	}()

	view, err := tty.Viewport(int(output.Fd()), int(tty.File().Fd()))
	if err != nil {
		return err
	}
	if err := tty.EnterCbreak(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	keys, keyErrs := startKeyReader(tty.File(), done)

	session := NewSession(output, view, buf, SessionOptions{
		Interval: opts.Interval,
		Terminfo: LookupTerminfo(opts.Term),
		Logger:   log,
		TTYPath:  tty.Path(),
	})
	return session.Run(ctx, keys, keyErrs)
}
