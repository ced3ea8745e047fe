// Package openai is the completion provider transport using the
// OpenAI-compatible chat API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mindverse/mindverse/internal/interpreter"
	"github.com/mindverse/mindverse/internal/metrics"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4"

// DefaultTimeout bounds a single completion call.
const DefaultTimeout = 60 * time.Second

// ErrProviderUnavailable wraps every transport-level failure so callers can
// normalize without inspecting provider internals.
var ErrProviderUnavailable = errors.New("completion provider unavailable")

// ErrEmptyCompletion is returned when the API answers without any choice.
var ErrEmptyCompletion = errors.New("empty completion response")

// Config holds the completion provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Client is a chat-completion provider for dream interpretations.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

var _ interpreter.Provider = (*Client)(nil)

// New creates an OpenAI-compatible completion provider.
func New(cfg Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Complete implements interpreter.Provider. The call is bounded by the
// configured timeout; a timeout surfaces as a wrapped ErrProviderUnavailable.
func (c *Client) Complete(ctx context.Context, req interpreter.CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})

	duration := time.Since(start)

	if err != nil {
		status := "api_error"
		if errors.Is(err, context.DeadlineExceeded) {
			status = "timeout"
		}
		metrics.InterpretationRequestsTotal.WithLabelValues("openai", c.model, status).Inc()
		return "", parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.InterpretationRequestsTotal.WithLabelValues("openai", c.model, "empty_response").Inc()
		return "", fmt.Errorf("%w: %w", ErrEmptyCompletion, ErrProviderUnavailable)
	}

	metrics.InterpretationRequestsTotal.WithLabelValues("openai", c.model, "success").Inc()
	metrics.InterpretationRequestDuration.WithLabelValues("openai", c.model).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		metrics.InterpretationTokensTotal.WithLabelValues("openai", c.model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.InterpretationTokensTotal.WithLabelValues("openai", c.model, "completion").Add(float64(resp.Usage.CompletionTokens))
	}

	return resp.Choices[0].Message.Content, nil
}

// parseAPIError extracts a loggable error from the API response. Everything
// is wrapped with ErrProviderUnavailable; the detail never reaches clients.
func parseAPIError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), ErrProviderUnavailable)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, ErrProviderUnavailable)
	}
	return fmt.Errorf("completion request failed: %v: %w", err, ErrProviderUnavailable)
}
