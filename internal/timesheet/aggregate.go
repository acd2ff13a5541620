package timesheet

import (
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// HoursForDay sums the effective hours every closed session
// contributes to date's local day. A nil or empty collection yields 0;
// malformed input is never an error here.
func HoursForDay(sessions []*domain.WorkSession, date time.Time) float64 {
	var total float64
	for _, s := range sessions {
		total += EffectiveHours(s, date)
	}
	return total
}

// SessionsForDay filters to sessions touching date's local day, open
// or closed, preserving input order. Open sessions show up in day
// listings even though they contribute no hours yet.
func SessionsForDay(sessions []*domain.WorkSession, date time.Time, now time.Time) []*domain.WorkSession {
	var out []*domain.WorkSession
	for _, s := range sessions {
		if TouchesDay(s, date, now) {
			out = append(out, s)
		}
	}
	return out
}
