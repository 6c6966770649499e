package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

var errUnexpectedSpinnerModel = errors.New("unexpected final spinner model type")

type spinnerResultMsg struct {
	reply domain.AssistantReply
	err   error
}

// spinnerModel animates a wait indicator while one assistant request runs.
type spinnerModel struct {
	spinner spinner.Model
	label   string
	run     func() (domain.AssistantReply, error)
	result  spinnerResultMsg
	done    bool
}

func newSpinnerModel(label string, run func() (domain.AssistantReply, error)) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return spinnerModel{spinner: s, label: label, run: run}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			reply, err := m.run()
			return spinnerResultMsg{reply: reply, err: err}
		},
	)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerResultMsg:
		m.result = msg
		m.done = true
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}

	return m.spinner.View() + " " + m.label
}

// runWithSpinner executes run while animating a spinner on stderr, keeping
// stdout clean for the reply. Non-interactive invocations call run directly.
func runWithSpinner(interactive bool, label string, run func() (domain.AssistantReply, error)) (domain.AssistantReply, error) {
	if !interactive {
		return run()
	}

	p := tea.NewProgram(
		newSpinnerModel(label, run),
		tea.WithInput(nil),
		tea.WithOutput(os.Stderr),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.AssistantReply{}, err
	}

	result, ok := finalModel.(spinnerModel)
	if !ok {
		return domain.AssistantReply{}, errUnexpectedSpinnerModel
	}

	return result.result.reply, result.result.err
}
