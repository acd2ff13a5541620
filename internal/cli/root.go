package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/teletrack/teletrack-cli/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth     service.AuthService
	Sessions service.SessionService
	Reports  service.ReportService
	Chat     service.ChatService
	Settings service.SettingsService

	// Interactive reports whether stdout is a terminal. Views that
	// need a TTY degrade to plain output when it is false.
	Interactive bool
}

// NewRootCmd creates the top-level "teletrack" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "teletrack",
		Short:         "Track work hours from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Accept snake_case spellings of flags (--week_start and the like).
	root.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPasswdCmd(app),
		newSessionCmd(app),
		newCalendarCmd(app),
		newReportCmd(app),
		newChatCmd(app),
		newOptionsCmd(app),
	)

	return root
}
