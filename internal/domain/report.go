package domain

import "time"

// ReportSession is one session clipped to a report's range. Duration
// holds the effective (clipped) hours, not the session's full length.
type ReportSession struct {
	Session        *WorkSession
	EffectiveStart time.Time
	EffectiveEnd   time.Time
	Duration       float64
}

// Report aggregates closed sessions over a date range.
//
// SessionCount counts sessions once even when they span several days;
// WorkDays counts distinct local calendar days with clipped work. An
// empty Sessions slice is the "no data" state, distinct from an error.
type Report struct {
	Range          DateRange
	Sessions       []ReportSession
	TotalHours     float64
	WorkDays       int
	SessionCount   int
	AvgHoursPerDay float64
}

// Empty reports whether the range matched no sessions.
func (r *Report) Empty() bool {
	return r.SessionCount == 0
}
