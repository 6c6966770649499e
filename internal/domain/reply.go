package domain

// TaskBreakdown is the assistant's structured plan for one task.
type TaskBreakdown struct {
	MainTask          string
	Subtasks          []string
	EstimatedTime     int // minutes
	DifficultyLevel   int // 1-3
	EnergyLevelNeeded int // 1-3
	ContextSwitches   int
	InitiationTips    []string
	DopamineHooks     []string

	// BreakPoints holds indexes into Subtasks after which a break is
	// suggested. Normalize drops indexes outside [0, len(Subtasks)).
	BreakPoints []int
}

// BreakAfter reports whether a break is suggested after subtask i.
func (b TaskBreakdown) BreakAfter(i int) bool {
	for _, point := range b.BreakPoints {
		if point == i {
			return true
		}
	}
	return false
}

type ExecutiveFunctionSupport struct {
	Strategy string
	Category string
}

type CalendarSuggestion struct {
	Tip  string
	Type string
}

// AssistantReply is the structured response to one send operation. Content
// is required; everything else is optional and defaults to empty after
// Normalize.
type AssistantReply struct {
	Content                   string
	TaskBreakdown             *TaskBreakdown
	SuggestedTasks            []string
	CalendarSuggestions       []CalendarSuggestion
	DopamineBoosters          []string
	FocusTips                 []string
	ExecutiveFunctionSupports []ExecutiveFunctionSupport
	EnvironmentAdjustments    []string
}

// Normalize replaces nil optional collections with empty ones and discards
// break-point indexes that fall outside the subtask range, so downstream
// consumers can rely on the reply without re-validating it.
func (r *AssistantReply) Normalize() {
	if r.SuggestedTasks == nil {
		r.SuggestedTasks = []string{}
	}
	if r.CalendarSuggestions == nil {
		r.CalendarSuggestions = []CalendarSuggestion{}
	}
	if r.DopamineBoosters == nil {
		r.DopamineBoosters = []string{}
	}
	if r.FocusTips == nil {
		r.FocusTips = []string{}
	}
	if r.ExecutiveFunctionSupports == nil {
		r.ExecutiveFunctionSupports = []ExecutiveFunctionSupport{}
	}
	if r.EnvironmentAdjustments == nil {
		r.EnvironmentAdjustments = []string{}
	}

	if r.TaskBreakdown == nil {
		return
	}

	breakdown := r.TaskBreakdown
	if breakdown.Subtasks == nil {
		breakdown.Subtasks = []string{}
	}
	if breakdown.InitiationTips == nil {
		breakdown.InitiationTips = []string{}
	}
	if breakdown.DopamineHooks == nil {
		breakdown.DopamineHooks = []string{}
	}

	valid := make([]int, 0, len(breakdown.BreakPoints))
	for _, point := range breakdown.BreakPoints {
		if point >= 0 && point < len(breakdown.Subtasks) {
			valid = append(valid, point)
		}
	}
	breakdown.BreakPoints = valid
}

// Category classifies the reply for transcript storage, mirroring the
// server-side tagging of assistant messages.
func (r AssistantReply) Category() string {
	switch {
	case r.TaskBreakdown != nil:
		return "task_breakdown"
	case len(r.FocusTips) > 0:
		return "focus_tips"
	case len(r.DopamineBoosters) > 0:
		return "motivation"
	default:
		return ""
	}
}
