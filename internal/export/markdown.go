package export

import (
	"fmt"
	"io"

	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

// MarkdownExporter renders the report as a Markdown document.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(report *domain.Report, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# TeleTrack Hours Report\n\n")
	_, _ = fmt.Fprintf(w, "**Period:** %s to %s\n\n",
		timesheet.DateKey(report.Range.Start), timesheet.DateKey(report.Range.End))

	_, _ = fmt.Fprintf(w, "| | |\n|---|---|\n")
	_, _ = fmt.Fprintf(w, "| Total hours | %s |\n", timesheet.FormatHours(report.TotalHours))
	_, _ = fmt.Fprintf(w, "| Days worked | %d |\n", report.WorkDays)
	_, _ = fmt.Fprintf(w, "| Sessions | %d |\n", report.SessionCount)
	_, _ = fmt.Fprintf(w, "| Average per day | %s |\n\n", timesheet.FormatHours(report.AvgHoursPerDay))

	if report.Empty() {
		_, _ = fmt.Fprintf(w, "_No sessions in this period._\n")
		return nil
	}

	_, _ = fmt.Fprintf(w, "## Sessions\n\n")
	_, _ = fmt.Fprintf(w, "| Date | Start | End | Duration | Description |\n")
	_, _ = fmt.Fprintf(w, "|------|-------|-----|----------|-------------|\n")
	for _, rs := range report.Sessions {
		desc := rs.Session.Description
		if desc == "" {
			desc = "-"
		}
		_, _ = fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			timesheet.DateKey(rs.EffectiveStart),
			rs.EffectiveStart.Format("15:04"),
			rs.EffectiveEnd.Format("15:04"),
			timesheet.FormatHours(rs.Duration),
			desc)
	}
	return nil
}

func (e *MarkdownExporter) Extension() string {
	return "md"
}
