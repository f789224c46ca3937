package checkers

import (
	"context"

	"github.com/artem13815/ats/pkg/llm"
)

// CredentialChecker reports not-ready while the completion credential is
// missing. The process still serves (static pages and parsing work without
// it), but orchestration calls will fail until it is configured.
type CredentialChecker struct {
	apiKey string
}

func NewCredentialChecker(apiKey string) *CredentialChecker {
	return &CredentialChecker{apiKey: apiKey}
}

func (c *CredentialChecker) Name() string { return "groq_credential" }

func (c *CredentialChecker) Check(_ context.Context) error {
	if c.apiKey == "" {
		return llm.ErrNoAPIKey
	}
	return nil
}
