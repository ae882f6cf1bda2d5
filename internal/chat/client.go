// Package chat implements the OpenAI-compatible completion client behind the
// chatbot proxy endpoint.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zsyio/api/internal/platform/config"
)

const (
	openAIBaseURL     = "https://api.openai.com/v1"
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterPrefix  = "sk-or-"

	openAIModel     = "gpt-4o"
	openRouterModel = "google/gemini-flash-1.5-8b"

	systemPrompt = "You are a helpful assistant for Zsyio, a digital agency."
)

// ErrMissingAPIKey is returned when no upstream API key is configured.
var ErrMissingAPIKey = errors.New("chat: api key is required")

// Completer produces a single assistant reply for a visitor prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (reply string, model string, err error)
}

// Client talks to an OpenAI-compatible chat completions endpoint. Keys with
// the OpenRouter prefix are routed to OpenRouter with a Gemini model;
// everything else goes to OpenAI with gpt-4o.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Option customises the Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for completions.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// NewClient constructs a completion client from configuration.
func NewClient(cfg config.ChatConfig, opts ...Option) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	model := strings.TrimSpace(cfg.Model)
	if baseURL == "" {
		if strings.HasPrefix(apiKey, openRouterPrefix) {
			baseURL = openRouterBaseURL
			model = openRouterModel
		} else {
			baseURL = openAIBaseURL
			if model == "" {
				model = openAIModel
			}
		}
	}
	if model == "" {
		model = openAIModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	client := &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// Model reports the upstream model the client was resolved to.
func (c *Client) Model() string { return c.model }

// BaseURL reports the upstream endpoint the client was resolved to.
func (c *Client) BaseURL() string { return c.baseURL }

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt with the fixed system message and returns the
// assistant reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, string, error) {
	payload := completionRequest{
		Model: c.model,
		Messages: []completionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", c.model, fmt.Errorf("chat: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", c.model, fmt.Errorf("chat: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", c.model, fmt.Errorf("chat: completion request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	var decoded completionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&decoded); err != nil {
		return "", c.model, fmt.Errorf("chat: decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := http.StatusText(resp.StatusCode)
		if decoded.Error != nil && decoded.Error.Message != "" {
			message = decoded.Error.Message
		}
		return "", c.model, fmt.Errorf("chat: upstream returned %d: %s", resp.StatusCode, message)
	}
	if len(decoded.Choices) == 0 {
		return "", c.model, errors.New("chat: upstream returned no choices")
	}
	return decoded.Choices[0].Message.Content, c.model, nil
}
