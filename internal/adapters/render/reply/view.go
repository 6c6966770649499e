package reply

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

type RenderOptions struct {
	// Width bounds markdown wrapping; zero means the glamour default.
	Width int

	// Markdown renders the assistant content through glamour. Plain text
	// is used as fallback when rendering fails.
	Markdown bool
}

func renderView(reply domain.AssistantReply, opts RenderOptions, s styles) string {
	lines := []string{renderContent(reply.Content, opts, s)}

	if reply.TaskBreakdown != nil {
		lines = append(lines, s.section.Render(renderBreakdown(*reply.TaskBreakdown, s)))
	}

	lines = appendList(lines, "Suggested tasks", reply.SuggestedTasks, s)
	lines = appendList(lines, "Focus tips", reply.FocusTips, s)
	lines = appendList(lines, "Dopamine boosters", reply.DopamineBoosters, s)
	lines = appendList(lines, "Environment adjustments", reply.EnvironmentAdjustments, s)

	if len(reply.ExecutiveFunctionSupports) > 0 {
		items := make([]string, 0, len(reply.ExecutiveFunctionSupports))
		for _, support := range reply.ExecutiveFunctionSupports {
			item := support.Strategy
			if support.Category != "" {
				item += " " + s.category.Render("("+support.Category+")")
			}
			items = append(items, item)
		}
		lines = append(lines, s.section.Render(renderList("Executive function supports", items, s)))
	}

	if len(reply.CalendarSuggestions) > 0 {
		items := make([]string, 0, len(reply.CalendarSuggestions))
		for _, suggestion := range reply.CalendarSuggestions {
			item := suggestion.Tip
			if suggestion.Type != "" {
				item += " " + s.category.Render("("+suggestion.Type+")")
			}
			items = append(items, item)
		}
		lines = append(lines, s.section.Render(renderList("Calendar suggestions", items, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderContent(content string, opts RenderOptions, s styles) string {
	if opts.Markdown {
		if rendered, err := renderMarkdown(content, opts.Width); err == nil {
			return rendered
		}
	}

	return s.content.Render(strings.TrimSpace(content))
}

func renderMarkdown(content string, width int) (string, error) {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(rendered, "\n"), nil
}

func renderBreakdown(breakdown domain.TaskBreakdown, s styles) string {
	parts := []string{
		s.task.Render(breakdown.MainTask),
		s.meta.Render(breakdownMeta(breakdown, s)),
	}

	for i, subtask := range breakdown.Subtasks {
		parts = append(parts, s.subtask.Render(fmt.Sprintf("%2d. %s", i+1, subtask)))
		if breakdown.BreakAfter(i) {
			parts = append(parts, s.breakMark.Render("    ~ take a break ~"))
		}
	}

	if len(breakdown.InitiationTips) > 0 {
		parts = append(parts, s.section.Render(renderList("Getting started", breakdown.InitiationTips, s)))
	}
	if len(breakdown.DopamineHooks) > 0 {
		parts = append(parts, s.section.Render(renderList("Motivation hooks", breakdown.DopamineHooks, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func breakdownMeta(breakdown domain.TaskBreakdown, s styles) string {
	fields := []string{
		fmt.Sprintf("~%d min", breakdown.EstimatedTime),
		"difficulty " + renderLevelBar(breakdown.DifficultyLevel, s),
		"energy " + renderLevelBar(breakdown.EnergyLevelNeeded, s),
	}

	if breakdown.ContextSwitches > 0 {
		label := "context switches"
		if breakdown.ContextSwitches == 1 {
			label = "context switch"
		}
		fields = append(fields, fmt.Sprintf("%d %s", breakdown.ContextSwitches, label))
	}

	return strings.Join(fields, " | ")
}

// renderLevelBar shows a 1-3 rating as filled and empty blocks.
func renderLevelBar(level int, s styles) string {
	const max = 3
	if level < 0 {
		level = 0
	}
	if level > max {
		level = max
	}

	return s.barFill.Render(strings.Repeat("■", level)) + s.barEmpty.Render(strings.Repeat("□", max-level))
}

func appendList(lines []string, heading string, items []string, s styles) []string {
	if len(items) == 0 {
		return lines
	}

	return append(lines, s.section.Render(renderList(heading, items, s)))
}

func renderList(heading string, items []string, s styles) string {
	parts := []string{s.heading.Render(heading)}
	for _, item := range items {
		parts = append(parts, s.bullet.Render("  - "+item))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// TranscriptView renders a conversation history with the default styles. It
// is meant for embedding inside an already running bubbletea program; use
// RenderTranscript for one-shot output.
func TranscriptView(messages []domain.Message) string {
	return renderTranscriptView(messages, newStyles())
}

func renderTranscriptView(messages []domain.Message, s styles) string {
	if len(messages) == 0 {
		return s.empty.Render("No messages yet.")
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, renderTranscriptLine(msg, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTranscriptLine(msg domain.Message, s styles) string {
	author := s.user.Render("you")
	if msg.Author == domain.RoleAssistant {
		author = s.assistant.Render("assistant")
	}

	line := author + " " + s.content.Render(msg.Content)
	if !msg.Timestamp.IsZero() {
		line = s.timestamp.Render(msg.Timestamp.Local().Format(time.Kitchen)) + " " + line
	}
	if msg.Category != "" {
		line += " " + s.category.Render("["+msg.Category+"]")
	}

	return line
}
