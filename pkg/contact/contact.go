// Package contact infers missing contact fields from resume text.
package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Contact holds the fields rendered into the resume header. Empty string
// means "unknown"; fields are never nil/absent.
type Contact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
}

var (
	reEmail        = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	rePhone        = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}\d`)
	reLinkedInFull = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/[A-Za-z0-9\-_/.]+`)
	reDigit        = regexp.MustCompile(`\d`)
)

// Enrich fills blank fields of c by pattern inference from text. Fields
// already known are never overwritten. It always returns a value; anything
// it cannot infer stays blank rather than guessed.
func Enrich(text string, c Contact) Contact {
	if c.Email == "" {
		c.Email = reEmail.FindString(text)
	}
	if c.Phone == "" {
		c.Phone = strings.TrimSpace(rePhone.FindString(text))
	}
	if c.LinkedIn == "" {
		c.LinkedIn = reLinkedInFull.FindString(text)
	}
	if c.FullName == "" {
		c.FullName = inferName(text)
	}
	return c
}

// inferName picks the first line that plausibly is a person's name. A line
// that merely looks name-ish by weaker criteria is left alone: absence is
// preferable to fabrication.
func inferName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if utf8.RuneCountInString(line) > 60 ||
			strings.Contains(line, "@") ||
			reDigit.MatchString(line) ||
			strings.Contains(lower, "resume") ||
			strings.Contains(lower, "curriculum vitae") ||
			strings.Contains(lower, "cv") {
			return ""
		}
		return line
	}
	return ""
}
