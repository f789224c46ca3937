package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"only whitespace", "   \n\t  ", 0},
		{"plain english", "Senior software engineer", 3},
		{"bullets and dashes ignored", "• Led team — delivered results", 4},
		{"punctuation is not a word", "Go, Python; C++ (5 years)", 5},
		{"arabic counts", "مهندس كهرباء أول", 3},
		{"mixed arabic english", "Senior مهندس Engineer", 3},
		{"digits count", "2020 2021 2022", 3},
		{"other scripts invisible", "日本語 試験", 0},
		{"hyphenated splits", "state-of-the-art", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.in))
		})
	}
}

func TestCountWordsWhitespaceInvariant(t *testing.T) {
	base := "PROFESSIONAL SUMMARY\nLed design of distribution networks across 12 projects"
	spaced := strings.ReplaceAll(base, " ", "   \n ")
	assert.Equal(t, CountWords(base), CountWords(spaced))
}

func TestCountWordsTokenStream(t *testing.T) {
	tokens := make([]string, 137)
	for i := range tokens {
		tokens[i] = "word7"
	}
	assert.Equal(t, 137, CountWords(strings.Join(tokens, " ")))
}

func TestCountWordsIdempotent(t *testing.T) {
	in := "• Designed 13.8kV feeders — 40+ substations, SAR 2M budget"
	cleaned := reBullets.ReplaceAllString(in, " ")
	cleaned = reNonWord.ReplaceAllString(cleaned, " ")
	rejoined := strings.Join(strings.Fields(cleaned), " ")
	assert.Equal(t, CountWords(in), CountWords(rejoined))
}
