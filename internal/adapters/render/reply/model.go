package reply

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

// model runs a headless bubbletea program so lipgloss picks up the right
// color profile for the terminal the CLI writes to.
type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render returns the styled view of one assistant reply.
func Render(assistantReply domain.AssistantReply, opts RenderOptions) (string, error) {
	return runHeadless(func(s styles) string {
		return renderView(assistantReply, opts, s)
	})
}

// RenderTranscript returns the styled view of a conversation history.
func RenderTranscript(messages []domain.Message) (string, error) {
	return runHeadless(func(s styles) string {
		return renderTranscriptView(messages, s)
	})
}

func runHeadless(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
