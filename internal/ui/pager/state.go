package pager

import (
	"math"
	"time"
)

// MaxIntervalMicros is the longest auto-scroll interval, the largest value
// the classic interval timer accepts.
const MaxIntervalMicros int64 = math.MaxInt32

// Mode is the auto-scroll state.
type Mode int

const (
	Stopped Mode = iota
	Scrolling
)

// Label is the text the status line shows for the mode.
func (m Mode) Label() string {
	if m == Scrolling {
		return "On"
	}
	return "Off"
}

func (m Mode) String() string {
	if m == Scrolling {
		return "scrolling"
	}
	return "stopped"
}

// ScrollState is the auto-scroll mode and the interval between rows.
type ScrollState struct {
	Mode           Mode
	IntervalMicros int64
}

// Interval returns the interval as a duration.
func (s ScrollState) Interval() time.Duration {
	return time.Duration(s.IntervalMicros) * time.Microsecond
}

// IntervalMicrosFor converts d to a clamped microsecond interval.
func IntervalMicrosFor(d time.Duration) int64 {
	micros := d.Microseconds()
	switch {
	case micros < 0:
		return 0
	case micros > MaxIntervalMicros:
		return MaxIntervalMicros
	}
	return micros
}

// scaleInterval multiplies current by factor, truncating toward zero. A
// product that overflows the maximum (or shrinks although factor > 1) is
// clamped to the maximum, a negative one to zero. NaN leaves current as is.
func scaleInterval(current int64, factor float64) int64 {
	if math.IsNaN(factor) {
		return current
	}
	scaled := float64(current) * factor
	switch {
	case scaled >= float64(MaxIntervalMicros):
		return MaxIntervalMicros
	case scaled < 0:
		return 0
	}
	next := int64(scaled)
	if factor > 1 && next < current {
		return MaxIntervalMicros
	}
	return next
}
