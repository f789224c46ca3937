package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/artem13815/ats/pkg/llm"
)

// Client is a minimal Groq (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey  string
	BaseURL string
	httpDo  *http.Client
}

func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionsRequest struct {
	Model          string          `json:"model"`
	Messages       []llm.Message   `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// Complete sends one chat completion request and returns the model reply.
func (c *Client) Complete(ctx context.Context, model string, msgs []llm.Message, opts llm.Options) (string, error) {
	if c.APIKey == "" {
		return "", llm.ErrNoAPIKey
	}
	reqBody := chatCompletionsRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if opts.JSONMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", &llm.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", llm.ErrEmptyResponse
	}
	return out.Choices[0].Message.Content, nil
}

// CompleteWithFallback tries each model in priority order and returns the
// first success. Hosted models have independent availability, so a priority
// list maximizes quality while bounding worst-case latency by list length.
// A missing credential is permanent and never worth iterating over.
func (c *Client) CompleteWithFallback(ctx context.Context, models []string, msgs []llm.Message, opts llm.Options) (string, error) {
	if c.APIKey == "" {
		return "", llm.ErrNoAPIKey
	}
	var lastErr error
	for _, model := range models {
		answer, err := c.Complete(ctx, model, msgs, opts)
		if err == nil {
			return answer, nil
		}
		lastErr = err
		log.Printf("groq: model %s failed, trying next: %v", model, err)
	}
	if lastErr == nil {
		lastErr = llm.ErrEmptyResponse
	}
	return "", lastErr
}
