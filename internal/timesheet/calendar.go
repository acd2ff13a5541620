package timesheet

import (
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// DayCell is one cell of the monthly calendar grid.
type DayCell struct {
	Date          time.Time
	AdjacentMonth bool
	Today         bool
	Hours         float64
	HasWork       bool
}

// MonthGrid lays out the month view as whole Monday-start weeks.
// Leading cells carry the trailing days of the previous month and
// trailing cells the leading days of the next, both flagged as
// adjacent. The grid always holds at least 6 rows so the view height
// is constant across months; shorter natural grids are padded with
// further next-month days.
func MonthGrid(year int, month time.Month, sessions []*domain.WorkSession, now time.Time) [][]DayCell {
	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	// Offset of the first day within a Monday-start week.
	lead := int(first.Weekday())
	if lead == 0 {
		lead = 7
	}
	lead--

	daysInMonth := first.AddDate(0, 1, 0).AddDate(0, 0, -1).Day()
	cellCount := lead + daysInMonth
	if rem := cellCount % 7; rem != 0 {
		cellCount += 7 - rem
	}
	if cellCount < 42 {
		cellCount = 42
	}

	grid := make([][]DayCell, 0, cellCount/7)
	var week []DayCell
	for i := 0; i < cellCount; i++ {
		date := first.AddDate(0, 0, i-lead)
		hours := HoursForDay(sessions, date)
		week = append(week, DayCell{
			Date:          date,
			AdjacentMonth: date.Month() != month || date.Year() != year,
			Today:         SameDay(date, now),
			Hours:         hours,
			HasWork:       hours > 0,
		})
		if len(week) == 7 {
			grid = append(grid, week)
			week = nil
		}
	}
	return grid
}

// PrevMonth returns the month preceding the given one, rolling the
// year back across January.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth returns the month following the given one, rolling the
// year forward across December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
