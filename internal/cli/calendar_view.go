package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teletrack/teletrack-cli/internal/cli/formatter"
	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

// sessionsLoadedMsg signals that the session list has been loaded.
type sessionsLoadedMsg struct {
	sessions []*domain.WorkSession
	err      error
}

// calendarTickMsg drives the once-a-second redraw while a session is
// open, so today's cell keeps counting.
type calendarTickMsg time.Time

// calendarView shows a navigable month of worked hours with a detail
// pane for the selected day.
type calendarView struct {
	app      *App
	year     int
	month    time.Month
	selected time.Time
	sessions []*domain.WorkSession
	loading  bool
	err      error
}

func newCalendarView(app *App, year int, month time.Month) *calendarView {
	now := time.Now()
	selected := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	if now.Year() == year && now.Month() == month {
		selected = time.Date(year, month, now.Day(), 0, 0, 0, 0, time.Local)
	}
	return &calendarView{app: app, year: year, month: month, selected: selected, loading: true}
}

func (v *calendarView) Init() tea.Cmd {
	return tea.Batch(v.loadSessions(), calendarTick())
}

func (v *calendarView) loadSessions() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		sessions, err := app.Sessions.List(context.Background())
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

func calendarTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return calendarTickMsg(t)
	})
}

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.sessions = msg.sessions
		return v, nil

	case calendarTickMsg:
		if v.hasOpenSession() {
			return v, calendarTick()
		}
		// Nothing is counting; keep ticking slowly so a session
		// started elsewhere eventually shows up.
		return v, tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
			return calendarTickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		case "left", "h":
			v.year, v.month = timesheet.PrevMonth(v.year, v.month)
			v.clampSelected()
			return v, nil
		case "right", "l":
			v.year, v.month = timesheet.NextMonth(v.year, v.month)
			v.clampSelected()
			return v, nil
		case "j":
			v.moveSelected(1)
			return v, nil
		case "k":
			v.moveSelected(-1)
			return v, nil
		case "down":
			v.moveSelected(7)
			return v, nil
		case "up":
			v.moveSelected(-7)
			return v, nil
		case "t":
			now := time.Now()
			v.year, v.month = now.Year(), now.Month()
			v.selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
			return v, nil
		case "r":
			v.loading = true
			return v, v.loadSessions()
		}
	}
	return v, nil
}

// moveSelected shifts the selection by days, following it across month
// boundaries.
func (v *calendarView) moveSelected(days int) {
	v.selected = v.selected.AddDate(0, 0, days)
	v.year, v.month = v.selected.Year(), v.selected.Month()
}

// clampSelected keeps the selection inside the displayed month after a
// month jump, preserving the day-of-month where it exists.
func (v *calendarView) clampSelected() {
	day := v.selected.Day()
	last := time.Date(v.year, v.month+1, 0, 0, 0, 0, 0, time.Local).Day()
	if day > last {
		day = last
	}
	v.selected = time.Date(v.year, v.month, day, 0, 0, 0, 0, time.Local)
}

func (v *calendarView) hasOpenSession() bool {
	for _, s := range v.sessions {
		if s.IsOpen() {
			return true
		}
	}
	return false
}

func (v *calendarView) View() string {
	if v.loading {
		return formatter.Dim("Loading sessions...") + "\n"
	}
	if v.err != nil {
		return formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n" +
			formatter.Dim("r to retry, q to quit") + "\n"
	}

	now := time.Now()
	weeks := timesheet.MonthGrid(v.year, v.month, v.sessions, now)
	out := formatter.RenderMonthGrid(v.year, v.month, weeks)

	total := 0.0
	for _, week := range weeks {
		for _, cell := range week {
			if !cell.AdjacentMonth {
				total += cell.Hours
			}
		}
	}
	out += "\n" + "Month total: " + formatter.Bold(timesheet.FormatHours(total)) + "\n"
	out += "\n" + v.renderDayDetail(now)
	out += formatter.Dim("←/→ change month · j/k/↑/↓ select day · t today · r refresh · q quit") + "\n"
	return out
}

// renderDayDetail lists the selected day's sessions with the hours each
// contributes to that day.
func (v *calendarView) renderDayDetail(now time.Time) string {
	out := formatter.Bold(v.selected.Format("Monday, 2 January")) + "\n"

	daily := timesheet.SessionsForDay(v.sessions, v.selected, now)
	if len(daily) == 0 {
		return out + formatter.Dim("No sessions.") + "\n"
	}

	for _, s := range daily {
		if s.IsOpen() {
			out += fmt.Sprintf("  %s–      %s  %s\n",
				formatter.ClockTime(s.StartTime),
				formatter.StyleGreen.Render(timesheet.FormatElapsed(s.Elapsed(now))),
				s.Description)
			continue
		}
		out += fmt.Sprintf("  %s–%s  %s  %s\n",
			formatter.ClockTime(s.StartTime),
			formatter.ClockTime(*s.EndTime),
			formatter.Bold(timesheet.FormatHours(timesheet.EffectiveHours(s, v.selected))),
			s.Description)
	}
	return out
}
