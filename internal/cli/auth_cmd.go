package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/teletrack/teletrack-cli/internal/api"
	"github.com/teletrack/teletrack-cli/internal/cli/formatter"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the TeleTrack server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				if !app.Interactive {
					return fmt.Errorf("provide --email and --password when not running in a terminal")
				}
				if err := loginForm(&email, &password).Run(); err != nil {
					return err
				}
			}

			user, err := app.Auth.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", formatter.Bold(user.DisplayName()))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func loginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateNonEmpty("password")),
		),
	).WithShowHelp(false)
}

func newRegisterCmd(app *App) *cobra.Command {
	var reg api.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a TeleTrack account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if reg.Email == "" || reg.Password == "" {
				if !app.Interactive {
					return fmt.Errorf("provide --first-name, --last-name, --email and --password when not running in a terminal")
				}
				if err := registerForm(&reg).Run(); err != nil {
					return err
				}
			}

			user, err := app.Auth.Register(context.Background(), reg)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s. You are logged in.\n", formatter.Bold(user.DisplayName()))
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&reg.Nickname, "nickname", "", "Nickname (optional)")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Account password")

	return cmd
}

func registerForm(reg *api.Registration) *huh.Form {
	var confirm string
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First name").
				Value(&reg.FirstName).
				Validate(validateNonEmpty("first name")),
			huh.NewInput().
				Title("Last name").
				Value(&reg.LastName).
				Validate(validateNonEmpty("last name")),
			huh.NewInput().
				Title("Nickname").
				Value(&reg.Nickname),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&reg.Email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&reg.Password).
				Validate(validateNonEmpty("password")),
			huh.NewInput().
				Title("Repeat password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm).
				Validate(func(s string) error {
					if s != reg.Password {
						return fmt.Errorf("passwords do not match")
					}
					return nil
				}),
		),
	).WithShowHelp(false)
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(context.Background()); err != nil {
				// Credentials are gone locally either way.
				fmt.Println(formatter.Dim("Server logout failed; local credentials cleared."))
				return nil
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.CurrentUser(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", formatter.Bold(user.DisplayName()), user.Email)
			return nil
		},
	}
}

func newPasswdCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("password change needs a terminal")
			}

			var current, next, confirm string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Current password").
						EchoMode(huh.EchoModePassword).
						Value(&current).
						Validate(validateNonEmpty("current password")),
					huh.NewInput().
						Title("New password").
						EchoMode(huh.EchoModePassword).
						Value(&next).
						Validate(validateNonEmpty("new password")),
					huh.NewInput().
						Title("Repeat new password").
						EchoMode(huh.EchoModePassword).
						Value(&confirm),
				),
			).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return err
			}
			if next != confirm {
				return fmt.Errorf("new passwords do not match")
			}

			if err := app.Auth.ChangePassword(context.Background(), current, next); err != nil {
				return err
			}
			fmt.Println("Password changed.")
			return nil
		},
	}
}

func validateEmail(s string) error {
	if !strings.Contains(s, "@") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

func validateNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}
