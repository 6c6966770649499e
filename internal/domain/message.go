package domain

import "time"

type MessageID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one committed conversational turn. Messages are immutable once
// appended to a transcript; the transcript only ever appends.
type Message struct {
	ID        MessageID
	Author    Role
	Content   string
	Timestamp time.Time

	// Category is an optional assistant-assigned classification, e.g.
	// "task_breakdown" or "motivation".
	Category string
}
