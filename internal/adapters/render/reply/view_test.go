package reply

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

func TestRenderPlainReply(t *testing.T) {
	output, err := Render(domain.AssistantReply{Content: "One thing at a time."}, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "One thing at a time.")
}

func TestRenderBreakdown(t *testing.T) {
	reply := domain.AssistantReply{
		Content: "Here is the plan.",
		TaskBreakdown: &domain.TaskBreakdown{
			MainTask:          "write the report",
			Subtasks:          []string{"outline", "draft", "edit"},
			EstimatedTime:     90,
			DifficultyLevel:   2,
			EnergyLevelNeeded: 3,
			ContextSwitches:   1,
			InitiationTips:    []string{"open the document first"},
			DopamineHooks:     []string{"coffee after the outline"},
			BreakPoints:       []int{1},
		},
		FocusTips: []string{"silence notifications"},
	}

	output, err := Render(reply, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "write the report")
	assert.Contains(t, output, " 1. outline")
	assert.Contains(t, output, " 2. draft")
	assert.Contains(t, output, "~ take a break ~")
	assert.Contains(t, output, "~90 min")
	assert.Contains(t, output, "1 context switch")
	assert.Contains(t, output, "Getting started")
	assert.Contains(t, output, "Motivation hooks")
	assert.Contains(t, output, "Focus tips")
	assert.Contains(t, output, "silence notifications")
}

func TestRenderOptionalSections(t *testing.T) {
	reply := domain.AssistantReply{
		Content:        "A few ideas.",
		SuggestedTasks: []string{"sort the mail"},
		ExecutiveFunctionSupports: []domain.ExecutiveFunctionSupport{
			{Strategy: "body doubling", Category: "initiation"},
		},
		CalendarSuggestions: []domain.CalendarSuggestion{
			{Tip: "block 9-11am", Type: "deep_work"},
		},
		EnvironmentAdjustments: []string{"clear the desk"},
	}

	output, err := Render(reply, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "Suggested tasks")
	assert.Contains(t, output, "sort the mail")
	assert.Contains(t, output, "body doubling")
	assert.Contains(t, output, "(initiation)")
	assert.Contains(t, output, "block 9-11am")
	assert.Contains(t, output, "Environment adjustments")
}

func TestRenderMarkdownFallsBackToPlainText(t *testing.T) {
	output, err := Render(domain.AssistantReply{Content: "# Plan\n\nstart small"}, RenderOptions{Markdown: true, Width: 40})
	require.NoError(t, err)

	assert.Contains(t, output, "Plan")
	assert.Contains(t, output, "start small")
}

func TestRenderTranscript(t *testing.T) {
	messages := []domain.Message{
		{
			Author:    domain.RoleUser,
			Content:   "help me focus",
			Timestamp: time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
		},
		{
			Author:   domain.RoleAssistant,
			Content:  "Pick one task.",
			Category: "focus_tips",
		},
	}

	output, err := RenderTranscript(messages)
	require.NoError(t, err)

	assert.Contains(t, output, "you")
	assert.Contains(t, output, "help me focus")
	assert.Contains(t, output, "assistant")
	assert.Contains(t, output, "Pick one task.")
	assert.Contains(t, output, "[focus_tips]")
}

func TestRenderTranscriptEmpty(t *testing.T) {
	output, err := RenderTranscript(nil)
	require.NoError(t, err)

	assert.Contains(t, output, "No messages yet.")
}

func TestTranscriptView(t *testing.T) {
	output := TranscriptView([]domain.Message{
		{Author: domain.RoleUser, Content: "hello"},
	})

	assert.Contains(t, output, "hello")
}
