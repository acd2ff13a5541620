package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

const calendarCellWidth = 9

var (
	styleCellToday = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	styleCellWork  = lipgloss.NewStyle().Foreground(ColorGreen)
)

// RenderMonthGrid renders a month of day cells as a calendar, one line
// of day numbers and one line of worked hours per week row.
func RenderMonthGrid(year int, month time.Month, weeks [][]timesheet.DayCell) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", month.String(), year)
	b.WriteString(Header(title))
	b.WriteString("\n")

	for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		b.WriteString(pad(StyleHeader.Render(name), calendarCellWidth))
	}
	b.WriteString("\n")

	for _, week := range weeks {
		for _, cell := range week {
			day := fmt.Sprintf("%2d", cell.Date.Day())
			switch {
			case cell.AdjacentMonth:
				day = StyleDim.Render(day)
			case cell.Today:
				day = styleCellToday.Render(day + " ◂")
			default:
				day = StyleFg.Render(day)
			}
			b.WriteString(pad(day, calendarCellWidth))
		}
		b.WriteString("\n")

		for _, cell := range week {
			hours := ""
			if cell.HasWork && !cell.AdjacentMonth {
				hours = styleCellWork.Render(timesheet.FormatHours(cell.Hours))
			}
			b.WriteString(pad(hours, calendarCellWidth))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap < 0 {
		gap = 0
	}
	return s + strings.Repeat(" ", gap)
}
