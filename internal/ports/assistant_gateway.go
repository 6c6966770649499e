package ports

import (
	"context"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

// AssistantGateway performs one network call per invocation against the
// assistant endpoint. Implementations must honor context cancellation with
// a socket-level abort and never touch local conversation state.
type AssistantGateway interface {
	SendMessage(ctx context.Context, text string) (domain.AssistantReply, error)
	SendVoice(ctx context.Context, audioData string) (domain.AssistantReply, error)
	History(ctx context.Context, limit int) ([]domain.Message, error)
}
