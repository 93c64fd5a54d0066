// Package duration measures focus sessions and turns elapsed time into
// human-readable phrases.
package duration

import "time"

// Marker is the instant a session started. The wrapped time.Time keeps its
// monotonic reading, so wall-clock adjustments do not affect elapsed time.
type Marker struct {
	at time.Time
}

// Clock returns the current time.
type Clock func() time.Time

// Stopwatch captures start markers and measures time since them.
type Stopwatch struct {
	now Clock
}

// NewStopwatch returns a stopwatch backed by the system clock.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// NewStopwatchWithClock returns a stopwatch that reads time from clock.
func NewStopwatchWithClock(clock Clock) *Stopwatch {
	if clock == nil {
		clock = time.Now
	}
	return &Stopwatch{now: clock}
}

// Start captures a start marker.
func (s *Stopwatch) Start() Marker {
	return Marker{at: s.now()}
}

// ElapsedSeconds returns seconds since m, never negative.
func (s *Stopwatch) ElapsedSeconds(m Marker) float64 {
	d := s.now().Sub(m.at)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

var system = NewStopwatch()

// Start captures a start marker from the system clock.
func Start() Marker {
	return system.Start()
}

// ElapsedSeconds returns seconds since m according to the system clock.
func ElapsedSeconds(m Marker) float64 {
	return system.ElapsedSeconds(m)
}
