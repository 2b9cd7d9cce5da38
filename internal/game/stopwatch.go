package game

import "time"

// Stopwatch tracks elapsed wall-clock time between Start and Stop. The clock
// source is injectable so tests control time.
type Stopwatch struct {
	now     func() time.Time
	start   time.Time
	frozen  time.Duration
	running bool
}

// NewStopwatch constructs a stopped Stopwatch. A nil clock defaults to time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// Start begins timing from the current instant. Calling Start on a running
// stopwatch restarts it.
func (s *Stopwatch) Start() {
	s.start = s.now()
	s.frozen = 0
	s.running = true
}

// Stop freezes the elapsed value. Further Elapsed calls return the frozen value.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.frozen = s.now().Sub(s.start)
	s.running = false
}

// Elapsed returns the time since Start, the frozen value after Stop, or zero
// if the stopwatch was never started.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.now().Sub(s.start)
	}
	return s.frozen
}
