package application

import (
	"sync"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

// Transcript is the append-only conversation log for one session. Committed
// messages are never reordered, mutated, or removed; Replace is reserved for
// loading persisted history at session start.
type Transcript struct {
	mu       sync.RWMutex
	messages []domain.Message
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds msg at the tail. A timestamp behind the current tail is
// clamped forward so append order and timestamp order always agree.
func (t *Transcript) Append(msg domain.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.messages); n > 0 {
		if tail := t.messages[n-1].Timestamp; msg.Timestamp.Before(tail) {
			msg.Timestamp = tail
		}
	}

	t.messages = append(t.messages, msg)
}

// Snapshot returns a copy of the current ordered view.
func (t *Transcript) Snapshot() []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Replace swaps in the server-provided history wholesale, discarding any
// local-only messages.
func (t *Transcript) Replace(messages []domain.Message) {
	copied := make([]domain.Message, len(messages))
	copy(copied, messages)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = copied
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
