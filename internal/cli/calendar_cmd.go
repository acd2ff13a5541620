package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/teletrack/teletrack-cli/internal/cli/formatter"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

const monthLayout = "2006-01"

func newCalendarCmd(app *App) *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Browse worked hours on a monthly calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			year, month := now.Year(), now.Month()
			if monthStr != "" {
				anchor, err := time.ParseInLocation(monthLayout, monthStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --month, expected %q: %w", monthLayout, err)
				}
				year, month = anchor.Year(), anchor.Month()
			}

			if !app.Interactive {
				sessions, err := app.Sessions.List(context.Background())
				if err != nil {
					return err
				}
				weeks := timesheet.MonthGrid(year, month, sessions, now)
				fmt.Print(formatter.RenderMonthGrid(year, month, weeks))
				return nil
			}

			p := tea.NewProgram(newCalendarView(app, year, month))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Month to open (YYYY-MM, default current)")

	return cmd
}
