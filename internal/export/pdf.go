package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

// PDFExporter renders the report as a printable PDF document.
type PDFExporter struct{}

const (
	pdfMargin     = 20.0
	pdfRowHeight  = 7.0
	pdfBreakAt    = 270.0
	pdfMaxCellLen = 20
)

var pdfColWidths = []float64{35, 25, 25, 25, 60}

func (e *PDFExporter) Export(report *domain.Report, w io.Writer) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(false, 0)

	pageWidth, pageHeight := doc.GetPageSize()
	doc.SetFooterFunc(func() {
		doc.SetFont("Helvetica", "", 8)
		stamp := time.Now().Format("2006-01-02 15:04")
		doc.Text(pageWidth/2-doc.GetStringWidth("Generated "+stamp)/2, pageHeight-10, "Generated "+stamp)
	})
	doc.AddPage()

	y := pdfMargin

	doc.SetFont("Helvetica", "B", 20)
	title := "TeleTrack - Hours Report"
	doc.Text(pageWidth/2-doc.GetStringWidth(title)/2, y, title)
	y += 15

	doc.SetFont("Helvetica", "", 12)
	period := fmt.Sprintf("Period: %s - %s",
		timesheet.DateKey(report.Range.Start), timesheet.DateKey(report.Range.End))
	doc.Text(pageWidth/2-doc.GetStringWidth(period)/2, y, period)
	y += 20

	doc.SetFont("Helvetica", "B", 12)
	doc.Text(pdfMargin, y, "Summary:")
	y += 10

	doc.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		fmt.Sprintf("Total hours: %s", timesheet.FormatHours(report.TotalHours)),
		fmt.Sprintf("Days worked: %d", report.WorkDays),
		fmt.Sprintf("Total sessions: %d", report.SessionCount),
		fmt.Sprintf("Average per day: %s", timesheet.FormatHours(report.AvgHoursPerDay)),
	} {
		doc.Text(pdfMargin, y, line)
		y += 7
	}
	y += 13

	doc.SetFont("Helvetica", "B", 12)
	doc.Text(pdfMargin, y, "Session detail:")
	y += 10

	headers := []string{"Date", "Start", "End", "Duration", "Description"}
	x := pdfMargin
	for i, h := range headers {
		doc.Text(x, y, h)
		x += pdfColWidths[i]
	}
	y += pdfRowHeight
	doc.Line(pdfMargin, y, pageWidth-pdfMargin, y)
	y += 5

	doc.SetFont("Helvetica", "", 12)
	for _, rs := range report.Sessions {
		if y > pdfBreakAt {
			doc.AddPage()
			y = pdfMargin
		}
		desc := rs.Session.Description
		if desc == "" {
			desc = "-"
		}
		row := []string{
			timesheet.DateKey(rs.EffectiveStart),
			rs.EffectiveStart.Format("15:04"),
			rs.EffectiveEnd.Format("15:04"),
			timesheet.FormatHours(rs.Duration),
			desc,
		}
		x = pdfMargin
		for i, cell := range row {
			doc.Text(x, y, truncate(cell, pdfMaxCellLen))
			x += pdfColWidths[i]
		}
		y += pdfRowHeight
	}

	return doc.Output(w)
}

func (e *PDFExporter) Extension() string {
	return "pdf"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
