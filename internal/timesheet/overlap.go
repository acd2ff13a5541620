// Package timesheet is the session time-accounting engine: day-overlap
// clipping, per-day aggregation, range reports and the monthly
// calendar grid. Everything here is a pure function of its arguments;
// callers inject the evaluation instant ("now") where open sessions
// matter.
//
// Convention: all day boundaries and date keys are built from local
// calendar components of the given time's location. RFC3339/UTC string
// slicing is never used for day math.
package timesheet

import (
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// DayBounds returns the inclusive boundaries of date's local calendar
// day: 00:00:00.000 through 23:59:59.999.
func DayBounds(date time.Time) (start, end time.Time) {
	y, m, d := date.Date()
	loc := date.Location()
	start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	end = time.Date(y, m, d, 23, 59, 59, 999e6, loc)
	return start, end
}

// DateKey renders date as its canonical local YYYY-MM-DD key, used to
// deduplicate distinct work days.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TouchesDay reports whether the session's interval overlaps date's
// local day. An open session is treated as running until now.
func TouchesDay(s *domain.WorkSession, date time.Time, now time.Time) bool {
	if s == nil {
		return false
	}
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	dayStart, dayEnd := DayBounds(date)

	// No overlap when the session ends at or before the day starts,
	// or starts after the day ends.
	return !(!end.After(dayStart) || s.StartTime.After(dayEnd))
}

// EffectiveHours returns the fractional hours the session contributes
// to date's local day, clipped to the day's boundaries. Open sessions
// contribute 0: only finished intervals count toward totals. Exact to
// the millisecond; rounding belongs to display code.
func EffectiveHours(s *domain.WorkSession, date time.Time) float64 {
	if s == nil || s.EndTime == nil {
		return 0
	}
	dayStart, dayEnd := DayBounds(date)
	end := *s.EndTime
	if !end.After(dayStart) || s.StartTime.After(dayEnd) {
		return 0
	}

	effStart := s.StartTime
	if effStart.Before(dayStart) {
		effStart = dayStart
	}
	effEnd := end
	if effEnd.After(dayEnd) {
		effEnd = dayEnd
	}
	return effEnd.Sub(effStart).Hours()
}
