package timesheet

import (
	"errors"
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// ErrInvalidRange is returned when a custom range's start date falls
// after its end date.
var ErrInvalidRange = errors.New("range start date is after end date")

// WeekRange returns Monday 00:00:00.000 through Sunday 23:59:59.999 of
// the local week containing now. Sunday counts as ISO weekday 7 when
// computing the offset back to Monday.
func WeekRange(now time.Time) domain.DateRange {
	wd := int(now.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := now.AddDate(0, 0, -(wd - 1))
	start, _ := DayBounds(monday)
	_, end := DayBounds(monday.AddDate(0, 0, 6))
	return domain.DateRange{Start: start, End: end}
}

// MonthRange returns the first through last calendar day of the local
// month containing now.
func MonthRange(now time.Time) domain.DateRange {
	y, m, _ := now.Date()
	loc := now.Location()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)
	_, end := DayBounds(last)
	return domain.DateRange{Start: first, End: end}
}

// CustomRange builds an inclusive range from two local dates,
// normalized to full-day boundaries. Rejects start > end before any
// filtering happens.
func CustomRange(start, end time.Time) (domain.DateRange, error) {
	s, _ := DayBounds(start)
	_, e := DayBounds(end)
	if s.After(e) {
		return domain.DateRange{}, ErrInvalidRange
	}
	return domain.DateRange{Start: s, End: e}, nil
}
