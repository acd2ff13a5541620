package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teletrack/teletrack-cli/internal/cli/formatter"
	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/service"
)

// messagesLoadedMsg carries one poll's worth of messages.
type messagesLoadedMsg struct {
	messages []*domain.Message
	err      error
}

// messageSentMsg signals the outcome of a send.
type messageSentMsg struct {
	err error
}

// chatTickMsg schedules the next poll.
type chatTickMsg struct{}

// chatView is the interactive conversation for one group. Polling runs
// at a fast period while the terminal is focused and drops to a slow
// one when focus is lost.
type chatView struct {
	app      *App
	group    *domain.Group
	input    textinput.Model
	messages []*domain.Message
	focused  bool
	err      error
}

func newChatView(app *App, group *domain.Group) *chatView {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.CharLimit = domain.MaxMessageLength
	input.Focus()

	return &chatView{
		app:     app,
		group:   group,
		input:   input,
		focused: true,
	}
}

func (v *chatView) Init() tea.Cmd {
	return tea.Batch(v.loadMessages(), textinput.Blink)
}

func (v *chatView) loadMessages() tea.Cmd {
	app, groupID := v.app, v.group.ID
	return func() tea.Msg {
		messages, err := app.Chat.Messages(context.Background(), groupID, 50)
		return messagesLoadedMsg{messages: messages, err: err}
	}
}

func (v *chatView) sendMessage(content string) tea.Cmd {
	app, groupID := v.app, v.group.ID
	return func() tea.Msg {
		return messageSentMsg{err: app.Chat.Send(context.Background(), groupID, content)}
	}
}

func (v *chatView) scheduleTick() tea.Cmd {
	interval := service.BackgroundInterval
	if v.focused {
		interval = service.ForegroundInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return chatTickMsg{}
	})
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messagesLoadedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, v.scheduleTick()
		}
		v.err = nil
		v.messages = msg.messages
		return v, v.scheduleTick()

	case chatTickMsg:
		return v, v.loadMessages()

	case messageSentMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		return v, v.loadMessages()

	case tea.FocusMsg:
		v.focused = true
		return v, nil

	case tea.BlurMsg:
		v.focused = false
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return v, tea.Quit
		case "enter":
			content := strings.TrimSpace(v.input.Value())
			if content == "" {
				return v, nil
			}
			v.input.Reset()
			return v, v.sendMessage(content)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(v.group.Name))
	b.WriteString("\n")

	if len(v.messages) == 0 {
		b.WriteString(formatter.Dim("No messages yet.") + "\n")
	}
	for _, m := range v.messages {
		b.WriteString(fmt.Sprintf("%s %s: %s\n",
			formatter.Dim(m.CreatedAt.Format("15:04")),
			formatter.Bold(m.Author),
			m.Content))
	}

	b.WriteString("\n" + v.input.View() + "\n")
	if v.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}
	b.WriteString(formatter.Dim("enter send · esc quit") + "\n")
	return b.String()
}
