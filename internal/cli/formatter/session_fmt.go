package formatter

import (
	"fmt"
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

// RenderSessionTable renders a list of sessions, newest first entries
// exactly as given.
func RenderSessionTable(sessions []*domain.WorkSession, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No sessions recorded.") + "\n"
	}

	headers := []string{"ID", "DATE", "START", "END", "DURATION", "DESCRIPTION"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		end := "—"
		duration := timesheet.FormatElapsed(s.Elapsed(now))
		if s.EndTime != nil {
			end = ClockTime(*s.EndTime)
			duration = timesheet.FormatHours(s.Duration().Hours())
		}
		rows = append(rows, []string{
			Dim(s.ID),
			HumanDate(s.StartTime, now),
			ClockTime(s.StartTime),
			end,
			duration,
			Truncate(s.Description, 40),
		})
	}
	return RenderBox("Sessions", RenderTable(headers, rows))
}

// RenderStatus renders the `session status` line for the open session,
// or a hint when nothing is running.
func RenderStatus(active *domain.WorkSession, now time.Time) string {
	if active == nil {
		return Dim("No session running.") + " Start one with 'teletrack session start'.\n"
	}
	out := fmt.Sprintf("%s  started %s at %s\n",
		SessionPill(active),
		HumanDate(active.StartTime, now),
		ClockTime(active.StartTime))
	out += fmt.Sprintf("Elapsed: %s\n", Bold(timesheet.FormatElapsed(active.Elapsed(now))))
	if active.Description != "" {
		out += fmt.Sprintf("Description: %s\n", active.Description)
	}
	return out
}
