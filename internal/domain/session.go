package domain

import (
	"errors"
	"time"
)

// ErrEndBeforeStart is returned when a session is closed with an end
// time at or before its start time.
var ErrEndBeforeStart = errors.New("session end time must be after start time")

// WorkSession is one tracked interval of work. A session without an
// EndTime is open (still running); it closes exactly once when an end
// time is stamped.
type WorkSession struct {
	ID          string
	StartTime   time.Time
	EndTime     *time.Time
	Description string
}

// IsOpen reports whether the session is still running.
func (s *WorkSession) IsOpen() bool {
	return s.EndTime == nil
}

// Duration returns the closed session's length. Open sessions have no
// billable duration yet and return 0.
func (s *WorkSession) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// Elapsed returns how long the session has been running as of now.
// For closed sessions this equals Duration.
func (s *WorkSession) Elapsed(now time.Time) time.Duration {
	if s.EndTime != nil {
		return s.Duration()
	}
	d := now.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// Validate checks the session's interval invariant: a closed session
// must end strictly after it starts.
func (s *WorkSession) Validate() error {
	if s.StartTime.IsZero() {
		return errors.New("session start time is required")
	}
	if s.EndTime != nil && !s.EndTime.After(s.StartTime) {
		return ErrEndBeforeStart
	}
	return nil
}

// Close stamps the end time, transitioning the session to closed.
// Rejects end times at or before the start.
func (s *WorkSession) Close(end time.Time) error {
	if !end.After(s.StartTime) {
		return ErrEndBeforeStart
	}
	s.EndTime = &end
	return nil
}
