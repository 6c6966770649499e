package api

import (
	"time"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

type messageRequest struct {
	Message string `json:"message"`
}

type voiceRequest struct {
	AudioData string `json:"audio_data"`
}

type taskBreakdownSchema struct {
	MainTask          string   `json:"main_task"`
	Subtasks          []string `json:"subtasks"`
	EstimatedTime     int      `json:"estimated_time"`
	DifficultyLevel   int      `json:"difficulty_level"`
	EnergyLevelNeeded int      `json:"energy_level_needed"`
	ContextSwitches   int      `json:"context_switches"`
	InitiationTips    []string `json:"initiation_tips"`
	DopamineHooks     []string `json:"dopamine_hooks"`
	BreakPoints       []int    `json:"break_points"`
}

type executiveFunctionSupportSchema struct {
	Strategy string `json:"strategy"`
	Category string `json:"category"`
}

type calendarSuggestionSchema struct {
	Tip  string `json:"tip"`
	Type string `json:"type"`
}

type replySchema struct {
	Content                   string                           `json:"content"`
	TaskBreakdown             *taskBreakdownSchema             `json:"task_breakdown"`
	SuggestedTasks            []string                         `json:"suggested_tasks"`
	CalendarSuggestions       []calendarSuggestionSchema       `json:"calendar_suggestions"`
	DopamineBoosters          []string                         `json:"dopamine_boosters"`
	FocusTips                 []string                         `json:"focus_tips"`
	ExecutiveFunctionSupports []executiveFunctionSupportSchema `json:"executive_function_supports"`
	EnvironmentAdjustments    []string                         `json:"environment_adjustments"`
}

type messageSchema struct {
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Category  string `json:"category"`
}

func fromReplySchema(schema replySchema) domain.AssistantReply {
	reply := domain.AssistantReply{
		Content:                schema.Content,
		SuggestedTasks:         schema.SuggestedTasks,
		DopamineBoosters:       schema.DopamineBoosters,
		FocusTips:              schema.FocusTips,
		EnvironmentAdjustments: schema.EnvironmentAdjustments,
	}

	if schema.TaskBreakdown != nil {
		reply.TaskBreakdown = &domain.TaskBreakdown{
			MainTask:          schema.TaskBreakdown.MainTask,
			Subtasks:          schema.TaskBreakdown.Subtasks,
			EstimatedTime:     schema.TaskBreakdown.EstimatedTime,
			DifficultyLevel:   schema.TaskBreakdown.DifficultyLevel,
			EnergyLevelNeeded: schema.TaskBreakdown.EnergyLevelNeeded,
			ContextSwitches:   schema.TaskBreakdown.ContextSwitches,
			InitiationTips:    schema.TaskBreakdown.InitiationTips,
			DopamineHooks:     schema.TaskBreakdown.DopamineHooks,
			BreakPoints:       schema.TaskBreakdown.BreakPoints,
		}
	}

	for _, suggestion := range schema.CalendarSuggestions {
		reply.CalendarSuggestions = append(reply.CalendarSuggestions, domain.CalendarSuggestion{
			Tip:  suggestion.Tip,
			Type: suggestion.Type,
		})
	}

	for _, support := range schema.ExecutiveFunctionSupports {
		reply.ExecutiveFunctionSupports = append(reply.ExecutiveFunctionSupports, domain.ExecutiveFunctionSupport{
			Strategy: support.Strategy,
			Category: support.Category,
		})
	}

	reply.Normalize()
	return reply
}

func fromMessageSchema(schema messageSchema) domain.Message {
	author := domain.RoleUser
	if schema.Type == "assistant" {
		author = domain.RoleAssistant
	}

	return domain.Message{
		Author:    author,
		Content:   schema.Content,
		Timestamp: parseTimestamp(schema.Timestamp),
		Category:  schema.Category,
	}
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
