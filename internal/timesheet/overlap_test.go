package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

func closedSession(start, end time.Time) *domain.WorkSession {
	return &domain.WorkSession{ID: "s-1", StartTime: start, EndTime: &end}
}

func TestTouchesDay(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		touches bool
	}{
		{
			"fully inside the day",
			time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local),
			time.Date(2024, 3, 10, 11, 0, 0, 0, time.Local),
			true,
		},
		{
			"ends exactly at day start",
			time.Date(2024, 3, 9, 22, 0, 0, 0, time.Local),
			time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
			false,
		},
		{
			"ends one millisecond into the day",
			time.Date(2024, 3, 9, 22, 0, 0, 0, time.Local),
			time.Date(2024, 3, 10, 0, 0, 0, 1e6, time.Local),
			true,
		},
		{
			"starts after day end",
			time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			time.Date(2024, 3, 11, 2, 0, 0, 0, time.Local),
			false,
		},
		{
			"spans the whole day",
			time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local),
			time.Date(2024, 3, 11, 12, 0, 0, 0, time.Local),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := closedSession(tt.start, tt.end)
			assert.Equal(t, tt.touches, TouchesDay(s, day, now))
		})
	}
}

func TestTouchesDay_OpenSessionRunsUntilNow(t *testing.T) {
	s := &domain.WorkSession{
		ID:        "open",
		StartTime: time.Date(2024, 3, 9, 23, 0, 0, 0, time.Local),
	}
	yesterday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	tomorrow := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local)
	assert.True(t, TouchesDay(s, yesterday, now))
	assert.True(t, TouchesDay(s, today, now))
	assert.False(t, TouchesDay(s, tomorrow, now), "open session does not reach days after now")
}

func TestEffectiveHours_MidnightSplit(t *testing.T) {
	// Session 2024-01-31 22:00 -> 2024-02-01 02:00: two hours on each
	// side of midnight, zero everywhere else.
	s := closedSession(
		time.Date(2024, 1, 31, 22, 0, 0, 0, time.Local),
		time.Date(2024, 2, 1, 2, 0, 0, 0, time.Local),
	)

	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)
	feb1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)
	feb2 := time.Date(2024, 2, 2, 0, 0, 0, 0, time.Local)

	assert.InDelta(t, 2.0, EffectiveHours(s, jan31), 0.001)
	assert.InDelta(t, 2.0, EffectiveHours(s, feb1), 0.001)
	assert.Zero(t, EffectiveHours(s, feb2))
}

func TestEffectiveHours_OpenSessionContributesZero(t *testing.T) {
	s := &domain.WorkSession{
		ID:        "open",
		StartTime: time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local),
	}
	assert.Zero(t, EffectiveHours(s, s.StartTime))
}

func TestEffectiveHours_ZeroExactlyWhenNotTouching(t *testing.T) {
	s := closedSession(
		time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local),
		time.Date(2024, 3, 10, 17, 30, 0, 0, time.Local),
	)
	now := s.EndTime.Add(time.Hour)

	for offset := -3; offset <= 3; offset++ {
		day := time.Date(2024, 3, 10+offset, 0, 0, 0, 0, time.Local)
		h := EffectiveHours(s, day)
		if TouchesDay(s, day, now) {
			assert.Greater(t, h, 0.0, "day offset %d", offset)
			assert.LessOrEqual(t, h, 24.0, "day offset %d", offset)
		} else {
			assert.Zero(t, h, "day offset %d", offset)
		}
	}
}

func TestEffectiveHours_MultiDayPartitionSumsToTotal(t *testing.T) {
	// Three-and-a-bit days; the per-day clipped pieces must add back
	// up to the session's full duration.
	start := time.Date(2024, 3, 8, 18, 30, 0, 0, time.Local)
	end := time.Date(2024, 3, 12, 7, 15, 0, 0, time.Local)
	s := closedSession(start, end)

	var sum float64
	for offset := -1; offset <= 5; offset++ {
		day := time.Date(2024, 3, 8+offset, 0, 0, 0, 0, time.Local)
		sum += EffectiveHours(s, day)
	}
	assert.InDelta(t, end.Sub(start).Hours(), sum, 0.01)
}

func TestDateKey_UsesLocalComponents(t *testing.T) {
	// 00:30 local on March 10 must key as March 10 regardless of what
	// the instant converts to in UTC.
	d := time.Date(2024, 3, 10, 0, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
	assert.Equal(t, "2024-03-10", DateKey(d))
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(time.Date(2024, 3, 10, 13, 45, 12, 0, time.Local))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999e6, time.Local), end)
}
