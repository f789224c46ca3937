package ats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/ats/pkg/llm"
)

type scriptedCall struct {
	models []string
	msgs   []llm.Message
	opts   llm.Options
}

// scriptedLLM replays canned replies in order; an entry with err set fails
// that call.
type scriptedLLM struct {
	script []struct {
		reply string
		err   error
	}
	calls []scriptedCall
}

func (s *scriptedLLM) add(reply string, err error) {
	s.script = append(s.script, struct {
		reply string
		err   error
	}{reply, err})
}

func (s *scriptedLLM) CompleteWithFallback(_ context.Context, models []string, msgs []llm.Message, opts llm.Options) (string, error) {
	s.calls = append(s.calls, scriptedCall{models: models, msgs: msgs, opts: opts})
	if len(s.script) == 0 {
		return "", errors.New("scripted llm: unexpected extra call")
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next.reply, next.err
}

func newTestService(stub *scriptedLLM) UseCase {
	return NewService(stub, []string{"llama-3.3-70b-versatile"}, 2200, DefaultPolicy())
}

// wordText produces text the word counter sees as exactly n words.
func wordText(n int) string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(tokens, " ")
}

func rewriteReply(t *testing.T, text string) string {
	t.Helper()
	b, err := json.Marshal(map[string]any{"rewritten_resume": text, "word_count": 9999})
	require.NoError(t, err)
	return string(b)
}

const emptyContactReply = `{"fullName": "", "email": "", "phone": "", "linkedin": "", "location": ""}`

func TestAnalyzeATS(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(`{"score": 82, "match_level": "Strong", "missing_keywords": ["SCADA"]}`, nil)

	rep, err := newTestService(stub).AnalyzeATS(context.Background(), "resume text", "jd text")
	require.NoError(t, err)
	assert.Equal(t, float64(82), rep["score"])
	assert.Equal(t, "Strong", rep["match_level"])

	require.Len(t, stub.calls, 1)
	call := stub.calls[0]
	assert.True(t, call.opts.JSONMode)
	assert.InDelta(t, 0.2, call.opts.Temperature, 0.001)
	require.Len(t, call.msgs, 2)
	assert.Contains(t, call.msgs[1].Content, "resume text")
	assert.Contains(t, call.msgs[1].Content, "jd text")
}

func TestAnalyzeATSSalvagesFragments(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(`total garbage but "score": 77 and "match_level": "Strong" survive`, nil)

	rep, err := newTestService(stub).AnalyzeATS(context.Background(), "r", "jd")
	require.NoError(t, err)
	assert.Equal(t, 77, rep["score"])
	assert.Equal(t, "Strong", rep["match_level"])
	assert.NotContains(t, rep, "missing_keywords")
}

func TestAnalyzeATSDropsMalformedFields(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(`{"score": "very high", "match_level": "Strong", "missing_keywords": ["PMP"]}`, nil)

	rep, err := newTestService(stub).AnalyzeATS(context.Background(), "r", "jd")
	require.NoError(t, err)
	assert.NotContains(t, rep, "score")
	assert.Equal(t, "Strong", rep["match_level"])
	assert.Equal(t, []any{"PMP"}, rep["missing_keywords"])
}

func TestAnalyzeATSUpstreamError(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add("", &llm.UpstreamError{Status: 503, Body: "overloaded"})

	_, err := newTestService(stub).AnalyzeATS(context.Background(), "r", "jd")
	var uerr *llm.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, 503, uerr.Status)
}

func TestRewriteAcceptsSecondAttempt(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(emptyContactReply, nil)
	stub.add(rewriteReply(t, wordText(300)), nil)
	stub.add(rewriteReply(t, wordText(520)), nil)
	// No third rewrite reply: a third call would fail the test.

	res, err := newTestService(stub).RewriteForJob(context.Background(), "John Doe\nEngineer", "jd")
	require.NoError(t, err)
	assert.Equal(t, 520, res.WordCount)
	assert.Empty(t, res.Warning)

	require.Len(t, stub.calls, 3)
	// Second rewrite attempt must escalate to the expand prompt carrying
	// the previous attempt's text.
	expand := stub.calls[2].msgs[1].Content
	assert.Contains(t, expand, wordText(300))
	assert.Contains(t, expand, "300 words")
}

func TestRewriteDegradedAcceptance(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(emptyContactReply, nil)
	stub.add(rewriteReply(t, wordText(300)), nil)
	stub.add(rewriteReply(t, wordText(310)), nil)
	stub.add(rewriteReply(t, wordText(400)), nil)

	res, err := newTestService(stub).RewriteForJob(context.Background(), "John Doe\nEngineer", "jd")
	require.NoError(t, err)
	assert.Equal(t, 400, res.WordCount)
	assert.Equal(t, "WORD_COUNT_OUTSIDE_TARGET_RANGE_500_700", res.Warning)
}

func TestRewriteExhaustionFails(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(emptyContactReply, nil)
	stub.add(rewriteReply(t, wordText(100)), nil)
	stub.add(rewriteReply(t, wordText(120)), nil)
	stub.add(rewriteReply(t, wordText(140)), nil)

	_, err := newTestService(stub).RewriteForJob(context.Background(), "John Doe\nEngineer", "jd")
	var lerr *LengthViolationError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 3, lerr.Attempts)
	assert.Equal(t, 140, lerr.LastWordCount)
	assert.Equal(t, wordText(140), lerr.LastText)
	assert.Equal(t, "LENGTH_CONSTRAINT_VIOLATION_AFTER_3_ATTEMPTS", lerr.Error())
}

func TestRewriteRecoversNameFromFirstLine(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(emptyContactReply, nil)
	stub.add(rewriteReply(t, wordText(600)), nil)

	res, err := newTestService(stub).RewriteForJob(context.Background(),
		"John Doe\nSoftware Engineer\njohn@doe.com", "jd")
	require.NoError(t, err)
	assert.Equal(t, 600, res.WordCount)
	assert.Empty(t, res.Warning)
	assert.Equal(t, "John Doe", res.Contact.FullName)
	assert.Equal(t, "john@doe.com", res.Contact.Email)
}

func TestRewriteModelContactWins(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(`{"fullName": "Jonathan Doe", "email": "jon@corp.com", "phone": "", "linkedin": "", "location": "Riyadh"}`, nil)
	stub.add(rewriteReply(t, wordText(600)), nil)

	res, err := newTestService(stub).RewriteForJob(context.Background(),
		"John Doe\nEngineer\njohn@doe.com", "jd")
	require.NoError(t, err)
	// Extracted fields are already known and must never be overwritten.
	assert.Equal(t, "Jonathan Doe", res.Contact.FullName)
	assert.Equal(t, "jon@corp.com", res.Contact.Email)
	assert.Equal(t, "Riyadh", res.Contact.Location)
}

func TestRewriteContactExtractionFailureDegrades(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add("", &llm.UpstreamError{Status: 500, Body: "boom"})
	stub.add(rewriteReply(t, wordText(600)), nil)

	res, err := newTestService(stub).RewriteForJob(context.Background(),
		"John Doe\nEngineer\njohn@doe.com", "jd")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", res.Contact.FullName)
	assert.Equal(t, "john@doe.com", res.Contact.Email)
}

func TestRewriteAcceptsFinalResumeKey(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(emptyContactReply, nil)
	body, err := json.Marshal(map[string]any{"final_resume": wordText(650)})
	require.NoError(t, err)
	stub.add(string(body), nil)

	res, uerr := newTestService(stub).RewriteForJob(context.Background(), "John Doe\nEngineer", "jd")
	require.NoError(t, uerr)
	assert.Equal(t, 650, res.WordCount)
}

func TestRewriteUnparseableResponseFails(t *testing.T) {
	stub := &scriptedLLM{}
	stub.add(emptyContactReply, nil)
	stub.add("no json anywhere in this reply", nil)

	_, err := newTestService(stub).RewriteForJob(context.Background(), "John Doe\nEngineer", "jd")
	require.Error(t, err)
	assert.ErrorContains(t, err, "recover llm json")
}
