// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"math"
	"sync"
	"time"
)

const secondsInAMinute = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := Round(val)
	mins = total / secondsInAMinute
	secs = total % secondsInAMinute

	return
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// Clock delivers one-second ticks on C until Stop is called. After Stop
// returns no further ticks are delivered, so callbacks hanging off the
// channel cannot fire against a dead session.
type Clock struct {
	C    chan time.Time
	done chan struct{}
	once sync.Once
}

// NewClock starts a one-second tick source.
func NewClock() *Clock {
	c := &Clock{
		C:    make(chan time.Time),
		done: make(chan struct{}),
	}

	go c.run()

	return c
}

func (c *Clock) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			select {
			case c.C <- now:
			case <-c.done:
				return
			}
		case <-c.done:
			return
		}
	}
}

// Stop cancels the clock. It is safe to call more than once.
func (c *Clock) Stop() {
	c.once.Do(func() {
		close(c.done)
	})
}
