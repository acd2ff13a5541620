package formatter

import (
	"fmt"
	"strings"

	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

// RenderReport renders the full report view: period, stat summary and
// the clipped session detail.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	b.WriteString(Header("Hours Report"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Period: %s — %s\n\n",
		timesheet.DateKey(report.Range.Start), timesheet.DateKey(report.Range.End)))

	if report.Empty() {
		b.WriteString(Dim("No completed sessions in this period.") + "\n")
		return b.String()
	}

	stats := [][]string{
		{"Total hours", Bold(timesheet.FormatHours(report.TotalHours))},
		{"Days worked", fmt.Sprintf("%d", report.WorkDays)},
		{"Sessions", fmt.Sprintf("%d", report.SessionCount)},
		{"Average per day", timesheet.FormatHours(report.AvgHoursPerDay)},
	}
	for _, row := range stats {
		b.WriteString(fmt.Sprintf("%-18s %s\n", row[0]+":", row[1]))
	}
	b.WriteString("\n")

	headers := []string{"DATE", "START", "END", "DURATION", "DESCRIPTION"}
	rows := make([][]string, 0, len(report.Sessions))
	for _, rs := range report.Sessions {
		desc := rs.Session.Description
		if desc == "" {
			desc = Dim("-")
		}
		rows = append(rows, []string{
			timesheet.DateKey(rs.EffectiveStart),
			ClockTime(rs.EffectiveStart),
			ClockTime(rs.EffectiveEnd),
			timesheet.FormatHours(rs.Duration),
			Truncate(desc, 40),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
