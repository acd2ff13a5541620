package export

import (
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

// reportDoc is the serializable shape shared by the JSON and YAML
// exporters.
type reportDoc struct {
	Period      periodDoc    `json:"period" yaml:"period"`
	TotalHours  float64      `json:"total_hours" yaml:"total_hours"`
	WorkDays    int          `json:"work_days" yaml:"work_days"`
	Sessions    int          `json:"session_count" yaml:"session_count"`
	AvgPerDay   float64      `json:"avg_hours_per_day" yaml:"avg_hours_per_day"`
	Detail      []sessionDoc `json:"sessions" yaml:"sessions"`
	GeneratedAt string       `json:"generated_at" yaml:"generated_at"`
}

type periodDoc struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

type sessionDoc struct {
	Date        string  `json:"date" yaml:"date"`
	Start       string  `json:"start" yaml:"start"`
	End         string  `json:"end" yaml:"end"`
	Hours       float64 `json:"hours" yaml:"hours"`
	Description string  `json:"description" yaml:"description"`
}

func buildDoc(report *domain.Report) reportDoc {
	doc := reportDoc{
		Period: periodDoc{
			Start: timesheet.DateKey(report.Range.Start),
			End:   timesheet.DateKey(report.Range.End),
		},
		TotalHours:  report.TotalHours,
		WorkDays:    report.WorkDays,
		Sessions:    report.SessionCount,
		AvgPerDay:   report.AvgHoursPerDay,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	for _, rs := range report.Sessions {
		doc.Detail = append(doc.Detail, sessionDoc{
			Date:        timesheet.DateKey(rs.EffectiveStart),
			Start:       rs.EffectiveStart.Format("15:04"),
			End:         rs.EffectiveEnd.Format("15:04"),
			Hours:       rs.Duration,
			Description: rs.Session.Description,
		})
	}
	return doc
}
