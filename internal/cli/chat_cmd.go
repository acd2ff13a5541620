package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/teletrack/teletrack-cli/internal/cli/formatter"
	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/service"
)

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [GROUP]",
		Short: "Chat with your groups",
		Long: `Without arguments, lists the groups you belong to. With a group name
or id, opens the conversation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listGroups(app)
			}
			if !app.Interactive {
				return fmt.Errorf("interactive chat needs a terminal; use 'teletrack chat tail %s'", args[0])
			}

			group, err := app.Chat.FindGroup(context.Background(), args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newChatView(app, group), tea.WithReportFocus())
			_, err = p.Run()
			return err
		},
	}

	cmd.AddCommand(newChatTailCmd(app))
	cmd.AddCommand(newChatSendCmd(app))

	return cmd
}

func listGroups(app *App) error {
	groups, err := app.Chat.Groups(context.Background())
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Println(formatter.Dim("You are not a member of any group."))
		return nil
	}

	headers := []string{"ID", "NAME", "MEMBERS"}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			formatter.Dim(g.ID),
			g.Name,
			fmt.Sprintf("%d", g.MemberCount),
		})
	}
	fmt.Print(formatter.RenderBox("Groups", formatter.RenderTable(headers, rows)))
	return nil
}

func newChatSendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "send GROUP MESSAGE",
		Short: "Send a single message to a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			group, err := app.Chat.FindGroup(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Chat.Send(ctx, group.ID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Sent to %s\n", group.Name)
			return nil
		},
	}
}

func newChatTailCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tail GROUP",
		Short: "Follow a group conversation on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			group, err := app.Chat.FindGroup(ctx, args[0])
			if err != nil {
				return err
			}

			seen := make(map[string]bool)
			poller := service.NewPoller(app.Chat, group.ID, 50, func(messages []*domain.Message) {
				for _, m := range messages {
					if seen[m.ID] {
						continue
					}
					seen[m.ID] = true
					fmt.Printf("%s %s: %s\n",
						formatter.Dim(m.CreatedAt.Format("15:04")),
						formatter.Bold(m.Author),
						m.Content)
				}
			})
			poller.Start(ctx)
			defer poller.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}
}
