package ats

import (
	"fmt"

	"github.com/artem13815/ats/pkg/contact"
)

// ScoreReport is the parsed compatibility-scoring record. The schema varies
// by prompt version, so it stays an open mapping; `score` and `match_level`
// are the stable core fields.
type ScoreReport map[string]any

// RewriteResult is the outcome of a successful (or degraded) rewrite.
type RewriteResult struct {
	Resume    string          `json:"rewritten_resume"`
	WordCount int             `json:"word_count"`
	Contact   contact.Contact `json:"contact_info"`
	Warning   string          `json:"warning,omitempty"`
}

// WordCountPolicy is the acceptance band for generated resume length.
// [Min,Max] is the target band; [SalvageMin,SalvageMax] is the wider band
// accepted with a warning after the attempt budget is spent; WarnBelow marks
// a soft recommended floor inside an accepted band.
type WordCountPolicy struct {
	Min         int
	Max         int
	SalvageMin  int
	SalvageMax  int
	WarnBelow   int
	MaxAttempts int
}

// DefaultPolicy returns the canonical band: target 500-700 words,
// salvage 350-750, 450 recommended floor, three attempts.
func DefaultPolicy() WordCountPolicy {
	return WordCountPolicy{
		Min:         500,
		Max:         700,
		SalvageMin:  350,
		SalvageMax:  750,
		WarnBelow:   450,
		MaxAttempts: 3,
	}
}

// LengthViolationError is a domain outcome, not a transport fault: the model
// never produced content inside the salvage band. It carries the last
// attempt's text so the caller can show it for diagnostics instead of
// discarding the work.
type LengthViolationError struct {
	Attempts      int
	LastText      string
	LastWordCount int
}

func (e *LengthViolationError) Error() string {
	return fmt.Sprintf("LENGTH_CONSTRAINT_VIOLATION_AFTER_%d_ATTEMPTS", e.Attempts)
}

func belowRecommendedWarning(p WordCountPolicy) string {
	return fmt.Sprintf("WORD_COUNT_BELOW_RECOMMENDED_RANGE_%d_%d", p.WarnBelow, p.Max)
}

func outsideTargetWarning(p WordCountPolicy) string {
	return fmt.Sprintf("WORD_COUNT_OUTSIDE_TARGET_RANGE_%d_%d", p.Min, p.Max)
}
