package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
	"github.com/kpaz/focus-assistant-cli/internal/ports"
)

const (
	messagePath = "/api/assistant/message"
	voicePath   = "/api/assistant/voice"
	historyPath = "/api/assistant/history"

	maxResponseBytes = 1 << 20
)

// DefaultRequestTimeout is generous because assistant generation is slow.
const DefaultRequestTimeout = 40 * time.Second

const (
	defaultConnectRetries = 2
	defaultRetryBackoff   = 500 * time.Millisecond
)

// Client talks to the assistant API. Each method performs one network call
// carrying the session bearer token and never touches local conversation
// state. Connection-level failures (no HTTP response received) are retried
// with exponential backoff; HTTP-level failures never are.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	Tokens         ports.TokenSource
	RequestTimeout time.Duration

	// ConnectRetries bounds retries of connection-level failures. Zero
	// means the default; negative disables retries.
	ConnectRetries int
	RetryBackoff   time.Duration
}

var _ ports.AssistantGateway = (*Client)(nil)

func (c *Client) SendMessage(ctx context.Context, text string) (domain.AssistantReply, error) {
	return c.postReply(ctx, messagePath, messageRequest{Message: text})
}

func (c *Client) SendVoice(ctx context.Context, audioData string) (domain.AssistantReply, error) {
	return c.postReply(ctx, voicePath, voiceRequest{AudioData: audioData})
}

func (c *Client) History(ctx context.Context, limit int) ([]domain.Message, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.do(ctx, http.MethodGet, historyPath, query, nil)
	if err != nil {
		return nil, err
	}

	var entries []messageSchema
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode history: %v", domain.ErrMalformedResponse, err)
	}

	messages := make([]domain.Message, 0, len(entries))
	for _, entry := range entries {
		messages = append(messages, fromMessageSchema(entry))
	}

	return messages, nil
}

func (c *Client) postReply(ctx context.Context, path string, payload any) (domain.AssistantReply, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return domain.AssistantReply{}, fmt.Errorf("encode request body: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, path, nil, encoded)
	if err != nil {
		return domain.AssistantReply{}, err
	}

	var schema replySchema
	if err := json.Unmarshal(body, &schema); err != nil {
		return domain.AssistantReply{}, fmt.Errorf("%w: decode reply: %v", domain.ErrMalformedResponse, err)
	}
	if strings.TrimSpace(schema.Content) == "" {
		return domain.AssistantReply{}, fmt.Errorf("%w: missing content", domain.ErrMalformedResponse)
	}

	return fromReplySchema(schema), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path, query)
	if err != nil {
		return nil, err
	}

	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	retries := c.ConnectRetries
	if retries == 0 {
		retries = defaultConnectRetries
	}
	if retries < 0 {
		retries = 0
	}
	backoff := c.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(backoff << (attempt - 1))
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return nil, contextError(ctx)
			case <-timer.C:
			}
		}

		responseBody, retryable, err := c.doOnce(ctx, method, endpoint, token, body)
		if err == nil {
			return responseBody, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrServer, lastErr)
}

func (c *Client) doOnce(ctx context.Context, method, endpoint, token string, body []byte) ([]byte, bool, error) {
	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return nil, false, fmt.Errorf("create assistant request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient().Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, contextError(ctx)
		}
		if requestCtx.Err() == context.DeadlineExceeded {
			return nil, false, fmt.Errorf("%w after %s", domain.ErrTimeout, c.timeout())
		}
		// No HTTP response received; worth retrying.
		return nil, true, err
	}
	defer func() { _ = response.Body.Close() }()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, contextError(ctx)
		}
		return nil, false, fmt.Errorf("read assistant response: %w", err)
	}

	if response.StatusCode == http.StatusUnauthorized {
		return nil, false, domain.ErrUnauthorized
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, false, fmt.Errorf("%w: status %d: %s", domain.ErrServer, response.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	return responseBody, false, nil
}

func (c *Client) bearerToken(ctx context.Context) (string, error) {
	if c.Tokens == nil {
		return "", domain.ErrNotAuthenticated
	}

	token, err := c.Tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return "", err
		}
		return "", fmt.Errorf("load session token: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return "", domain.ErrNotAuthenticated
	}

	return token, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) timeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return DefaultRequestTimeout
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= c.timeout() {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.timeout())
}

func contextError(ctx context.Context) error {
	if ctx.Err() == context.DeadlineExceeded {
		return domain.ErrTimeout
	}
	return domain.ErrCancelled
}

func buildAPIURL(baseURL, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}
