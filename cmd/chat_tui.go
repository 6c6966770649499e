package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	replyview "github.com/kpaz/focus-assistant-cli/internal/adapters/render/reply"
	"github.com/kpaz/focus-assistant-cli/internal/application"
	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

type (
	chatHistoryMsg struct{ err error }
	chatReplyMsg   struct{ err error }
)

var (
	chatStatusStyle = lipgloss.NewStyle().Faint(true)
	chatErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	chatHelpStyle   = lipgloss.NewStyle().Faint(true)
)

// chatModel drives the interactive chat. The session owns the transcript and
// the pending-request slot; the model only reflects that state, so typing a
// new message while one is in flight transparently replaces it.
type chatModel struct {
	session      *application.Session
	historyLimit int

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	ready     bool
	statusErr error
}

func newChatModel(session *application.Session, historyLimit int) chatModel {
	input := textinput.New()
	input.Placeholder = "What do you need help focusing on?"
	input.Prompt = "> "
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return chatModel{
		session:      session,
		historyLimit: historyLimit,
		input:        input,
		spin:         spin,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, m.loadHistory())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.session.Close()
			return m, tea.Quit
		case tea.KeyEsc:
			m.session.CancelPending()
			m.syncTranscript(false)
			return m, nil
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			return m, m.send(text)
		}

	case chatHistoryMsg:
		m.statusErr = msg.err
		m.syncTranscript(true)
		return m, nil

	case chatReplyMsg:
		// A superseded request resolves with a cancellation; the newer one
		// owns the status line.
		if !errors.Is(msg.err, domain.ErrCancelled) {
			m.statusErr = msg.err
		}
		m.syncTranscript(true)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		// Refresh while a request is pending so the optimistic user
		// message shows up before the reply lands.
		if m.session.Sending() {
			m.syncTranscript(true)
		}
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m chatModel) View() string {
	if !m.ready {
		return "Loading conversation..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		m.statusLine(),
		m.input.View(),
		chatHelpStyle.Render("enter send | esc cancel | ctrl+c quit"),
	)
}

func (m chatModel) loadHistory() tea.Cmd {
	return func() tea.Msg {
		err := m.session.LoadHistory(context.Background(), m.historyLimit)
		return chatHistoryMsg{err: err}
	}
}

func (m chatModel) send(text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.session.SendMessage(context.Background(), text)
		return chatReplyMsg{err: err}
	}
}

func (m *chatModel) resize(msg tea.WindowSizeMsg) chatModel {
	const chromeHeight = 3 // status line, input, help

	if !m.ready {
		m.viewport = viewport.New(msg.Width, max(msg.Height-chromeHeight, 1))
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
	}

	m.input.Width = msg.Width - len(m.input.Prompt)
	m.syncTranscript(false)

	return *m
}

func (m *chatModel) syncTranscript(gotoBottom bool) {
	m.viewport.SetContent(replyview.TranscriptView(m.session.Messages()))
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

func (m chatModel) statusLine() string {
	if m.session.Sending() {
		return m.spin.View() + chatStatusStyle.Render(" thinking...")
	}
	if m.statusErr != nil {
		return chatErrorStyle.Render(errorText(m.statusErr))
	}

	return chatStatusStyle.Render("ready")
}

// errorText turns request failures into short, actionable status messages.
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Not logged in. Run `fa login` first."
	case errors.Is(err, domain.ErrUnauthorized):
		return "Session expired. Run `fa login` again."
	case errors.Is(err, domain.ErrTimeout):
		return "The assistant took too long. Try again."
	case errors.Is(err, domain.ErrMalformedResponse):
		return "Got a response I couldn't read. Try again."
	case errors.Is(err, domain.ErrServer):
		return "The assistant hit a server error. Try again in a moment."
	default:
		return err.Error()
	}
}
