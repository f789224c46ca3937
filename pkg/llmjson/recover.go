// Package llmjson turns unreliable model output into structured records.
// Model replies are expected to contain JSON but are not contractually
// well-formed: they arrive wrapped in prose, fenced in markdown, or with
// raw control characters inside string values. The package degrades in
// tiers, from trusting the model completely to extracting fragments
// independently, and never invents values it cannot locate.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoObject means no {...} span could be located in the reply.
	ErrNoObject = errors.New("no object boundaries")
	// ErrUnparseable means no tier produced a single field.
	ErrUnparseable = errors.New("unparseable")
)

// RecoveryError reports which tier the cascade died in.
type RecoveryError struct {
	Stage string // "direct", "repair" or "salvage"
	Err   error
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("recover llm json (%s): %v", e.Stage, e.Err)
}

func (e *RecoveryError) Unwrap() error { return e.Err }

var (
	reFenceOpen = regexp.MustCompile("(?i)```json\\s*")
	reFence     = regexp.MustCompile("```\\s*")
	reStringVal = regexp.MustCompile(`:\s*"([^"]*)"`)
)

// Parse attempts strict parsing first, then fence-and-boundary extraction
// with escaping repair. Returns a RecoveryError if both tiers fail.
func Parse(raw string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)

	var rec map[string]any
	if err := json.Unmarshal([]byte(trimmed), &rec); err == nil {
		return rec, nil
	}

	cleaned, err := extractAndRepair(trimmed)
	if err != nil {
		return nil, &RecoveryError{Stage: "repair", Err: err}
	}
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return nil, &RecoveryError{Stage: "repair", Err: err}
	}
	return rec, nil
}

// extractAndRepair strips markdown fences, slices the outermost object and
// re-escapes control characters inside quoted string values.
func extractAndRepair(s string) (string, error) {
	s = reFenceOpen.ReplaceAllString(s, "")
	s = reFence.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoObject
	}
	s = s[start : end+1]

	// Re-escape the inside of every `: "value"` span. Literal newlines are
	// preserved as \n escapes, not collapsed: downstream layout depends on
	// line breaks to detect section headers and bullets. Known limitation:
	// a value containing an unescaped quote still truncates at that quote.
	s = reStringVal.ReplaceAllStringFunc(s, func(m string) string {
		open := strings.Index(m, `"`)
		content := m[open+1 : len(m)-1]
		content = strings.ReplaceAll(content, `\`, `\\`)
		content = strings.ReplaceAll(content, "\r", "")
		content = strings.ReplaceAll(content, "\t", " ")
		content = strings.ReplaceAll(content, "\n", `\n`)
		return m[:open+1] + content + `"`
	})
	return s, nil
}
