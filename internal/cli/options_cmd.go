package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/teletrack/teletrack-cli/internal/cli/formatter"
	"github.com/teletrack/teletrack-cli/internal/domain"
)

func newOptionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "View and change account options",
		RunE:  runOptionsShow(app),
	}

	cmd.AddCommand(
		newOptionsShowCmd(app),
		newOptionsProfileCmd(app),
		newOptionsWeekStartCmd(app),
		newOptionsAvatarCmd(app),
	)

	return cmd
}

func newOptionsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current account options",
		RunE:  runOptionsShow(app),
	}
}

func runOptionsShow(app *App) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		user, err := app.Auth.CurrentUser(ctx)
		if err != nil {
			return err
		}
		settings, err := app.Settings.Get(ctx)
		if err != nil {
			return err
		}

		rows := [][]string{
			{"Name", user.DisplayName()},
			{"Email", user.Email},
			{"Nickname", user.Nickname},
			{"Week starts on", string(settings.CalendarWeekStart)},
		}
		fmt.Print(formatter.RenderBox("Options", formatter.RenderTable([]string{"SETTING", "VALUE"}, rows)))
		return nil
	}
}

func newOptionsProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Edit the account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("profile editing needs a terminal")
			}
			ctx := context.Background()
			user, err := app.Auth.CurrentUser(ctx)
			if err != nil {
				return err
			}

			if err := profileForm(user).Run(); err != nil {
				return err
			}
			if err := app.Settings.UpdateProfile(ctx, user); err != nil {
				return err
			}
			fmt.Println("Profile updated.")
			return nil
		},
	}
}

func profileForm(user *domain.User) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&user.FirstName),
			huh.NewInput().Title("Last name").Value(&user.LastName),
			huh.NewInput().Title("Nickname").Value(&user.Nickname),
			huh.NewInput().Title("Address").Value(&user.Address),
			huh.NewInput().Title("City").Value(&user.City),
			huh.NewInput().Title("Postal code").Value(&user.PostalCode),
			huh.NewInput().Title("Province").Value(&user.Province),
			huh.NewInput().Title("Country").Value(&user.Country),
		),
	).WithShowHelp(false)
}

func newOptionsAvatarCmd(app *App) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "avatar PATH",
		Short: "Set or remove the profile picture",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if remove {
				if len(args) > 0 {
					return fmt.Errorf("--remove takes no PATH")
				}
				if err := app.Settings.RemoveAvatar(ctx); err != nil {
					return err
				}
				fmt.Println("Profile picture removed.")
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("provide the image PATH, or --remove")
			}
			if err := app.Settings.UpdateAvatar(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Profile picture updated.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "Remove the current profile picture")

	return cmd
}

func newOptionsWeekStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "week-start {monday|sunday}",
		Short:     "Set the first day of the calendar week",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"monday", "sunday"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := domain.WeekStart(args[0])
			if err := app.Settings.UpdateWeekStart(context.Background(), ws); err != nil {
				return err
			}
			fmt.Printf("Calendar week now starts on %s.\n", ws)
			return nil
		},
	}
}
