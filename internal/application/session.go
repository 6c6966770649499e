package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
	"github.com/kpaz/focus-assistant-cli/internal/ports"
)

// VoiceNotePlaceholder stands in for transcribed text in the transcript;
// transcription happens server-side.
const VoiceNotePlaceholder = "🎤 Voice message"

const DefaultHistoryLimit = 10

var (
	ErrEmptyMessage = errors.New("message text is empty")
	ErrEmptyAudio   = errors.New("audio data is empty")
)

// Session mediates between a chat front end and the assistant endpoint for
// one authenticated user. It exclusively owns the transcript and the single
// pending-request slot; front ends observe state through Messages, Sending
// and LastError.
type Session struct {
	gateway ports.AssistantGateway
	tokens  ports.TokenSource
	clock   ports.Clock

	transcript *Transcript
	coord      *Coordinator

	mu      sync.Mutex
	sending bool
	lastErr error
}

func NewSession(gateway ports.AssistantGateway, tokens ports.TokenSource, clock ports.Clock, debounce time.Duration) *Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Session{
		gateway:    gateway,
		tokens:     tokens,
		clock:      clock,
		transcript: NewTranscript(),
		coord:      NewCoordinator(debounce),
	}
}

// SendMessage appends the user's turn optimistically, dispatches it through
// the coordinator and appends the assistant's turn on success. The
// optimistic user message is never rolled back on failure; it already
// happened from the user's point of view.
func (s *Session) SendMessage(ctx context.Context, text string) (domain.AssistantReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.AssistantReply{}, ErrEmptyMessage
	}

	if err := s.requireSession(ctx); err != nil {
		return domain.AssistantReply{}, err
	}

	s.transcript.Append(domain.Message{
		ID:        newMessageID(),
		Author:    domain.RoleUser,
		Content:   text,
		Timestamp: s.clock.Now(),
	})

	return s.dispatch(ctx, func(callCtx context.Context) (domain.AssistantReply, error) {
		return s.gateway.SendMessage(callCtx, text)
	})
}

// SendVoiceMessage behaves like SendMessage with a fixed placeholder as the
// user's turn.
func (s *Session) SendVoiceMessage(ctx context.Context, audioData string) (domain.AssistantReply, error) {
	if strings.TrimSpace(audioData) == "" {
		return domain.AssistantReply{}, ErrEmptyAudio
	}

	if err := s.requireSession(ctx); err != nil {
		return domain.AssistantReply{}, err
	}

	s.transcript.Append(domain.Message{
		ID:        newMessageID(),
		Author:    domain.RoleUser,
		Content:   VoiceNotePlaceholder,
		Timestamp: s.clock.Now(),
	})

	return s.dispatch(ctx, func(callCtx context.Context) (domain.AssistantReply, error) {
		return s.gateway.SendVoice(callCtx, audioData)
	})
}

// LoadHistory replaces the transcript wholesale with the server-side
// history. Local-only messages not yet persisted are discarded.
func (s *Session) LoadHistory(ctx context.Context, limit int) error {
	if err := s.requireSession(ctx); err != nil {
		return err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	messages, err := s.gateway.History(ctx, limit)
	if err != nil {
		s.record(err)
		return err
	}

	s.transcript.Replace(messages)
	return nil
}

// CancelPending aborts the in-flight send, if any, and clears the loading
// state. Idempotent.
func (s *Session) CancelPending() {
	s.coord.Cancel()

	s.mu.Lock()
	s.sending = false
	s.mu.Unlock()
}

// Close tears the session down, cancelling any pending request.
func (s *Session) Close() {
	s.CancelPending()
}

func (s *Session) Messages() []domain.Message {
	return s.transcript.Snapshot()
}

func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) dispatch(ctx context.Context, call dispatchFunc) (domain.AssistantReply, error) {
	s.mu.Lock()
	s.sending = true
	s.lastErr = nil
	s.mu.Unlock()

	reply, err := s.coord.Submit(ctx, call)
	if err != nil {
		if errors.Is(err, domain.ErrCancelled) {
			// A superseded or cancelled send resolves silently; the newer
			// request owns the loading state from here on.
			return domain.AssistantReply{}, err
		}

		s.record(err)
		return domain.AssistantReply{}, err
	}

	s.transcript.Append(domain.Message{
		ID:        newMessageID(),
		Author:    domain.RoleAssistant,
		Content:   reply.Content,
		Timestamp: s.clock.Now(),
		Category:  reply.Category(),
	})

	s.mu.Lock()
	s.sending = false
	s.mu.Unlock()

	return reply, nil
}

func (s *Session) requireSession(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return err
		}
		return fmt.Errorf("load session token: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return domain.ErrNotAuthenticated
	}

	return nil
}

func (s *Session) record(err error) {
	s.mu.Lock()
	s.sending = false
	s.lastErr = err
	s.mu.Unlock()
}

func newMessageID() domain.MessageID {
	return domain.MessageID(uuid.NewString())
}
