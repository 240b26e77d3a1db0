package pager

import (
	"time"

	"pkt.systems/pslog"
)

// Controller is the auto-scroll state machine. Its ticker channel is read by
// the session loop, which is the only caller of every method here.
type Controller struct {
	state    ScrollState
	status   *StatusLine
	renderer *Renderer
	log      pslog.Logger

	ticker *time.Ticker
	period time.Duration
}

func newController(state ScrollState, status *StatusLine, renderer *Renderer, log pslog.Logger) *Controller {
	return &Controller{state: state, status: status, renderer: renderer, log: log}
}

// State returns the current mode and interval.
func (c *Controller) State() ScrollState {
	return c.state
}

// Ticks delivers one value per interval while scrolling. It is nil when no
// tick is armed, which blocks forever in a select.
func (c *Controller) Ticks() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}

// Period is the interval the tick is currently armed with, or zero.
func (c *Controller) Period() time.Duration {
	return c.period
}

// Toggle switches between stopped and scrolling, redrawing the prompt.
func (c *Controller) Toggle() {
	c.status.Erase()
	if c.state.Mode == Scrolling {
		c.Stop()
	} else {
		c.start()
	}
	c.status.Draw(c.state)
}

// Retime multiplies the interval by factor and re-arms the tick if scrolling.
func (c *Controller) Retime(factor float64) {
	c.status.Erase()
	c.state.IntervalMicros = scaleInterval(c.state.IntervalMicros, factor)
	c.status.Draw(c.state)
	c.log.Debug("scroll interval changed", "factor", factor, "interval", c.state.Interval().String())
	if c.state.Mode == Scrolling {
		c.start()
	}
}

// Stop disarms the tick without touching the prompt.
func (c *Controller) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.period = 0
	if c.state.Mode == Scrolling {
		c.log.Debug("scroll stopped", "cursor", c.renderer.Cursor())
	}
	c.state.Mode = Stopped
}

// Tick advances one row. Reaching the end of the buffer prints the
// end-of-file notice and stops scrolling.
func (c *Controller) Tick() {
	if c.state.Mode != Scrolling {
		return
	}
	c.status.Erase()
	if c.renderer.Step() {
		c.renderer.EndOfFile()
		c.Stop()
	}
	c.status.Draw(c.state)
}

// start arms the tick at the current interval. A zero interval arms nothing,
// matching an interval timer given a zero value.
func (c *Controller) start() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.state.Mode = Scrolling
	c.period = c.state.Interval()
	if c.period > 0 {
		c.ticker = time.NewTicker(c.period)
	}
	c.log.Debug("scroll started", "interval", c.Period().String(), "cursor", c.renderer.Cursor())
}
