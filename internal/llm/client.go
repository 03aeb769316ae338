// Package llm provides the chat-completion client used to draft and revise
// digest content.
package llm

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

	"github.com/alx/weekly-news/internal/logger"
	"github.com/alx/weekly-news/internal/prompts"
)

// Client is an abstraction over chat-completion providers.
type Client interface {
	// Complete sends one prompt and returns the generated text.
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Request parameters fixed by the digest workflow.
const (
	maxTokens = 2048
	topP      = 0.95

	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 200
)

// Structural failures of an otherwise successful HTTP exchange.
var (
	ErrNoChoices    = errors.New("llm: no choices in completion response")
	ErrEmptyContent = errors.New("llm: empty content in completion response")
)

// APIError is returned when the completion endpoint answers non-2xx.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm: HTTP %d: %s", e.StatusCode, e.Body)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenRouterClient implements Client against any OpenAI-compatible
// /chat/completions endpoint.
type OpenRouterClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	log     logger.Logger
}

// NewOpenRouterClient builds a client for the given endpoint and model.
func NewOpenRouterClient(baseURL, apiKey, model string, timeout time.Duration, log logger.Logger) *OpenRouterClient {
	return &OpenRouterClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Complete performs a single chat completion round trip. The system prompt is
// fixed; only the user message and sampling temperature vary per call.
func (c *OpenRouterClient) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompts.MustGet("digest.json", "system")},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        topP,
	}

	blob, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("llm: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(blob))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("completion request failed", logger.Error(err))
		return "", fmt.Errorf("llm: completion request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		c.log.Error("completion request rejected",
			logger.Int("status", resp.StatusCode), logger.String("body", apiErr.Body))
		return "", apiErr
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.log.Error("malformed completion response", logger.Error(err))
		return "", fmt.Errorf("llm: decode response: %w", err)
	}

	if len(decoded.Choices) == 0 {
		c.log.Error("completion response has no choices")
		return "", ErrNoChoices
	}

	content := decoded.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		c.log.Error("completion response content is empty")
		return "", ErrEmptyContent
	}

	return content, nil
}
