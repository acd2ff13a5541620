package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teletrack/teletrack-cli/internal/cli/formatter"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

const editTimeLayout = "2006-01-02 15:04"

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start, stop and manage work sessions",
	}

	cmd.AddCommand(
		newSessionStartCmd(app),
		newSessionStopCmd(app),
		newSessionStatusCmd(app),
		newSessionListCmd(app),
		newSessionEditCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionStartCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.Start(context.Background(), description, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Session started at %s\n", formatter.ClockTime(s.StartTime))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "What you are working on")

	return cmd
}

func newSessionStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.Stop(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Session stopped after %s\n", formatter.Bold(timesheet.FormatHours(s.Duration().Hours())))
			return nil
		},
	}
}

func newSessionStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running session, if any",
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := app.Sessions.Active(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderStatus(active, time.Now()))
			return nil
		},
	}
}

func newSessionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded work sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderSessionTable(sessions, time.Now()))
			return nil
		},
	}
}

func newSessionEditCmd(app *App) *cobra.Command {
	var description, startStr, endStr string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if cmd.Flags().Changed("description") && startStr == "" && endStr == "" {
				if err := app.Sessions.UpdateDescription(ctx, args[0], description); err != nil {
					return err
				}
				fmt.Printf("Updated session %s\n", args[0])
				return nil
			}

			sessions, err := app.Sessions.List(ctx)
			if err != nil {
				return err
			}

			for _, s := range sessions {
				if s.ID != args[0] {
					continue
				}
				if cmd.Flags().Changed("description") {
					s.Description = description
				}
				if startStr != "" {
					start, err := time.ParseInLocation(editTimeLayout, startStr, time.Local)
					if err != nil {
						return fmt.Errorf("invalid --start, expected %q: %w", editTimeLayout, err)
					}
					s.StartTime = start
				}
				if endStr != "" {
					end, err := time.ParseInLocation(editTimeLayout, endStr, time.Local)
					if err != nil {
						return fmt.Errorf("invalid --end, expected %q: %w", editTimeLayout, err)
					}
					s.EndTime = &end
				}
				if err := app.Sessions.Update(ctx, s); err != nil {
					return err
				}
				fmt.Printf("Updated session %s\n", s.ID)
				return nil
			}
			return fmt.Errorf("no session with id %s", args[0])
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVar(&startStr, "start", "", "New start time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&endStr, "end", "", "New end time (YYYY-MM-DD HH:MM)")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", args[0])
			return nil
		},
	}
}
