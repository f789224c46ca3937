package nlp

import (
	"regexp"
	"strings"
)

var (
	reBullets = regexp.MustCompile("[•■▪●◆◇◦–\\-—]")
	// A word is a run of ASCII letters/digits or Arabic-block characters.
	// Other scripts are invisible to the counter; the service targets these
	// two alphabets and the limitation is intentional.
	reNonWord = regexp.MustCompile("[^A-Za-z0-9؀-ۿ]+")
)

// CountWords counts words in free text the same way for every input we
// gate on (original resume, generated resume, job description). It is the
// sole source of truth for length decisions; model-reported counts are
// never trusted.
func CountWords(text string) int {
	if text == "" {
		return 0
	}
	cleaned := reBullets.ReplaceAllString(text, " ")
	cleaned = reNonWord.ReplaceAllString(cleaned, " ")
	return len(strings.Fields(cleaned))
}
