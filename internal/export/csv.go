package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

// CSVExporter renders the session detail as CSV, one row per clipped
// session.
type CSVExporter struct{}

func (e *CSVExporter) Export(report *domain.Report, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "start", "end", "hours", "description"}); err != nil {
		return err
	}
	for _, rs := range report.Sessions {
		row := []string{
			timesheet.DateKey(rs.EffectiveStart),
			rs.EffectiveStart.Format("15:04"),
			rs.EffectiveEnd.Format("15:04"),
			fmt.Sprintf("%.2f", rs.Duration),
			rs.Session.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (e *CSVExporter) Extension() string {
	return "csv"
}
