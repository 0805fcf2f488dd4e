// Package llm implements the chat-completion client used by the assistant
// and report services, plus the retry behavior that wraps it.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yongxin12/Macrohard/internal/config"
	"github.com/yongxin12/Macrohard/internal/port"
)

// Client implements port.ChatCompleter against a hosted OpenAI deployment.
type Client struct {
	endpoint   string
	key        string
	deployment string
	apiVersion string
	maxTokens  int
	httpClient *http.Client
}

// NewClient creates a completion client from config.
func NewClient(cfg *config.OpenAIConfig) *Client {
	return newClient(cfg, cfg.Endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom endpoint (for testing).
func NewClientWithEndpoint(cfg *config.OpenAIConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.OpenAIConfig, endpoint string) *Client {
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 800
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		key:        cfg.Key,
		deployment: cfg.Deployment,
		apiVersion: cfg.APIVersion,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Complete sends one chat completion request and returns the reply text.
func (c *Client) Complete(ctx context.Context, messages []port.ChatMessage) (string, error) {
	reqBody := map[string]interface{}{
		"messages":          messages,
		"temperature":       0.7,
		"max_tokens":        c.maxTokens,
		"top_p":             0.95,
		"frequency_penalty": 0,
		"presence_penalty":  0,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling completion API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("completion API error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return "", NewRateLimitError("openai", baseErr, retryAfter)
		}
		return "", baseErr
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
