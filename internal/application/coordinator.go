package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

// DefaultDebounce is the window within which a newer send supersedes the
// previous one before it ever reaches the network.
const DefaultDebounce = 300 * time.Millisecond

type dispatchFunc func(ctx context.Context) (domain.AssistantReply, error)

// Coordinator guarantees at most one outstanding assistant call per session.
// Submitting while a request is pending cancels the pending one
// (cancel-and-replace); the superseded call resolves to domain.ErrCancelled
// and its eventual result is discarded.
type Coordinator struct {
	debounce time.Duration

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func NewCoordinator(debounce time.Duration) *Coordinator {
	if debounce < 0 {
		debounce = 0
	}
	return &Coordinator{debounce: debounce}
}

// Submit waits out the debounce window, then runs dispatch with a fresh
// cancellable context recorded as the pending request. Cancellation at any
// point, including after the network call completed, gates the continuation:
// a cancelled submit never returns a reply.
func (c *Coordinator) Submit(ctx context.Context, dispatch dispatchFunc) (reply domain.AssistantReply, err error) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	c.generation++
	generation := c.generation
	c.cancel = cancel
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.generation == generation {
			c.cancel = nil
		}
		c.mu.Unlock()
		cancel()
	}()

	if c.debounce > 0 {
		timer := time.NewTimer(c.debounce)
		select {
		case <-callCtx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return domain.AssistantReply{}, cancellationError(ctx)
		case <-timer.C:
		}
	}

	// The transport layer must never crash the session; anything it throws
	// is normalized into a server error here.
	defer func() {
		if r := recover(); r != nil {
			reply = domain.AssistantReply{}
			err = fmt.Errorf("%w: %v", domain.ErrServer, r)
		}
	}()

	reply, err = dispatch(callCtx)
	if callCtx.Err() != nil {
		return domain.AssistantReply{}, cancellationError(ctx)
	}
	if err != nil {
		return domain.AssistantReply{}, err
	}

	return reply, nil
}

// Cancel aborts the pending request if any. It is a no-op otherwise.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// cancellationError distinguishes the caller's own deadline from
// supersession or an explicit Cancel.
func cancellationError(parent context.Context) error {
	if parent.Err() == context.DeadlineExceeded {
		return domain.ErrTimeout
	}
	return domain.ErrCancelled
}
