package llm

import (
	"context"
	"errors"
	"fmt"
)

// Message is one chat turn sent to a completion provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options tune a single completion call.
type Options struct {
	Temperature float32
	MaxTokens   int
	// JSONMode asks the provider for strict structured output
	// (response_format json_object) when it supports it. Preferred over
	// post-hoc repair whenever available.
	JSONMode bool
}

// Completer is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type Completer interface {
	Complete(ctx context.Context, model string, msgs []Message, opts Options) (string, error)
}

// MultiModelCompleter walks an ordered priority list of models until one
// succeeds. Implementations log and swallow per-model failures and return
// the last error once the list is exhausted.
type MultiModelCompleter interface {
	CompleteWithFallback(ctx context.Context, models []string, msgs []Message, opts Options) (string, error)
}

var (
	// ErrNoAPIKey means no provider credential was configured. It is a
	// permanent configuration fault, reported on every call rather than retried.
	ErrNoAPIKey = errors.New("completion api key is not configured")

	// ErrEmptyResponse means the provider accepted the request but returned
	// no usable content.
	ErrEmptyResponse = errors.New("no content returned by model")
)

// UpstreamError is a non-success response from the completion provider.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion provider http %d: %s", e.Status, e.Body)
}

func System(content string) Message { return Message{Role: "system", Content: content} }
func User(content string) Message   { return Message{Role: "user", Content: content} }
