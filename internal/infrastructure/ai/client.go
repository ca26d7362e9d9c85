package ai

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"bidworks/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

// Client wraps the OpenAI SDK for the estimate generator and chat agent.
// A nil inner client means no API key was configured; calls then fail with
// ErrAINotConfigured instead of panicking, so the rest of the service stays
// usable without AI.

type Client struct {
	api   *openai.Client
	model string
}

// NewClientFromEnv builds the client from environment variables:
//   - OPENAI_API_KEY  (required for AI features)
//   - OPENAI_MODEL    (default: gpt-4o-mini)
//   - OPENAI_BASE_URL (optional; for proxies and local runtimes)
func NewClientFromEnv() *Client {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	if apiKey == "" {
		log.Printf("[ai] OPENAI_API_KEY not set; AI features disabled")
		return &Client{model: model}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	log.Printf("[ai] client initialized model=%s", model)
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

func (c *Client) configured() bool {
	return c != nil && c.api != nil
}

// mapProviderError translates SDK failures into the gateway sentinels the
// use cases and handlers dispatch on.
func mapProviderError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return interfaces.ErrAITimeout
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return interfaces.ErrAIRateLimited
		case http.StatusUnauthorized, http.StatusForbidden:
			return interfaces.ErrAINotConfigured
		}
	}
	return interfaces.ErrAIUnavailable
}
