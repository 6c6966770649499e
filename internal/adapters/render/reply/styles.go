package reply

import "github.com/charmbracelet/lipgloss"

type styles struct {
	content   lipgloss.Style
	section   lipgloss.Style
	heading   lipgloss.Style
	task      lipgloss.Style
	meta      lipgloss.Style
	subtask   lipgloss.Style
	breakMark lipgloss.Style
	bullet    lipgloss.Style
	category  lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	timestamp lipgloss.Style
	empty     lipgloss.Style
	barFill   lipgloss.Style
	barEmpty  lipgloss.Style
}

func newStyles() styles {
	return styles{
		content:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:   lipgloss.NewStyle().MarginTop(1),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		task:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		subtask:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		breakMark: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("114")),
		bullet:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		category:  lipgloss.NewStyle().Faint(true),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		empty:     lipgloss.NewStyle().Faint(true),
		barFill:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
