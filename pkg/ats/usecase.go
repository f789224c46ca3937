package ats

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/artem13815/ats/pkg/contact"
	"github.com/artem13815/ats/pkg/llm"
	"github.com/artem13815/ats/pkg/llmjson"
	"github.com/artem13815/ats/pkg/nlp"
)

// UseCase exposes the user-facing ATS operations: compatibility scoring
// and rewrite-with-length-acceptance.
type UseCase interface {
	AnalyzeATS(ctx context.Context, resume, jobDescription string) (ScoreReport, error)
	RewriteForJob(ctx context.Context, resume, jobDescription string) (RewriteResult, error)
}

type service struct {
	llm       llm.MultiModelCompleter
	models    []string
	maxTokens int
	policy    WordCountPolicy
}

func NewService(completer llm.MultiModelCompleter, models []string, maxTokens int, policy WordCountPolicy) UseCase {
	if maxTokens <= 0 {
		maxTokens = 2200
	}
	return &service{
		llm:       completer,
		models:    models,
		maxTokens: maxTokens,
		policy:    policy,
	}
}

var scoreSalvageSchema = llmjson.Schema{
	"score":            llmjson.KindInt,
	"match_level":      llmjson.KindString,
	"missing_keywords": llmjson.KindStringArray,
	"issues":           llmjson.KindStringArray,
	"suggestions":      llmjson.KindStringArray,
}

var contactSalvageSchema = llmjson.Schema{
	"fullName": llmjson.KindString,
	"email":    llmjson.KindString,
	"phone":    llmjson.KindString,
	"linkedin": llmjson.KindString,
	"location": llmjson.KindString,
}

// AnalyzeATS builds one scoring prompt, asks the model once and returns the
// recovered record. Schema-breaking fields are dropped rather than passed on.
func (s *service) AnalyzeATS(ctx context.Context, resume, jobDescription string) (ScoreReport, error) {
	raw, err := s.llm.CompleteWithFallback(ctx, s.models, []llm.Message{
		llm.System(analyzeSystemPrompt),
		llm.User(buildAnalyzePrompt(resume, jobDescription)),
	}, llm.Options{Temperature: 0.2, MaxTokens: s.maxTokens, JSONMode: true})
	if err != nil {
		return nil, err
	}
	rec, err := llmjson.ParseSalvage(raw, scoreSalvageSchema)
	if err != nil {
		return nil, err
	}
	return sanitizeScoreReport(rec), nil
}

// RewriteForJob runs contact extraction, then a bounded loop of rewrite
// attempts until the generated text lands inside the target word band.
// The loop is a fold over attempts: each iteration carries the previous
// text forward so the expand prompt can lengthen that specific output.
func (s *service) RewriteForJob(ctx context.Context, resume, jobDescription string) (RewriteResult, error) {
	reqID := uuid.NewString()

	seed := s.extractContact(ctx, reqID, resume)
	// Fill blanks from the submitted text first so nothing present in the
	// input can be displaced by whatever the generation step produces.
	seed = contact.Enrich(resume, seed)

	var lastText string
	var lastCount int

	p := s.policy
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		var userPrompt string
		if attempt == 1 || lastText == "" {
			userPrompt = buildRewritePrompt(resume, jobDescription)
		} else {
			// A generic retry rarely fixes a too-short output; telling the
			// model to expand its own previous text usually does.
			userPrompt = buildExpandPrompt(lastText, lastCount, resume, jobDescription)
		}

		raw, err := s.llm.CompleteWithFallback(ctx, s.models, []llm.Message{
			llm.System(rewriteSystemPrompt),
			llm.User(userPrompt),
		}, llm.Options{Temperature: 0.35, MaxTokens: s.maxTokens, JSONMode: true})
		if err != nil {
			return RewriteResult{}, err
		}

		// Never salvage the rewrite shape: losing structure here would
		// silently corrupt the resume body.
		rec, err := llmjson.Parse(raw)
		if err != nil {
			return RewriteResult{}, err
		}

		text := resumeField(rec)
		count := nlp.CountWords(text)
		log.Printf("ats: rewrite %s attempt %d/%d word_count=%d", reqID, attempt, p.MaxAttempts, count)

		seed = mergeContactRecord(seed, rec)

		if count >= p.Min && count <= p.Max {
			result := RewriteResult{
				Resume:    text,
				WordCount: count,
				Contact:   finalizeContact(text, seed),
			}
			if count < p.WarnBelow {
				result.Warning = belowRecommendedWarning(p)
			}
			return result, nil
		}
		lastText, lastCount = text, count
	}

	if lastCount >= p.SalvageMin && lastCount <= p.SalvageMax {
		// A usable-but-imperfect resume beats a hard error after the whole
		// retry budget is gone.
		result := RewriteResult{
			Resume:    lastText,
			WordCount: lastCount,
			Contact:   finalizeContact(lastText, seed),
			Warning:   outsideTargetWarning(p),
		}
		return result, nil
	}

	return RewriteResult{}, &LengthViolationError{
		Attempts:      p.MaxAttempts,
		LastText:      lastText,
		LastWordCount: lastCount,
	}
}

// extractContact asks the model for the contact block at temperature zero.
// Any failure degrades to an empty record: local pattern enrichment is the
// remedy, and a missing name is better than a fabricated one.
func (s *service) extractContact(ctx context.Context, reqID, resume string) contact.Contact {
	raw, err := s.llm.CompleteWithFallback(ctx, s.models, []llm.Message{
		llm.System(contactSystemPrompt),
		llm.User(buildContactPrompt(resume)),
	}, llm.Options{Temperature: 0, MaxTokens: 512, JSONMode: true})
	if err != nil {
		log.Printf("ats: rewrite %s contact extraction failed: %v", reqID, err)
		return contact.Contact{}
	}
	rec, err := llmjson.ParseSalvage(raw, contactSalvageSchema)
	if err != nil {
		log.Printf("ats: rewrite %s contact response unreadable: %v", reqID, err)
		return contact.Contact{}
	}
	return contactFromRecord(rec)
}

// finalizeContact runs the second enrichment pass against the generated
// text. The generated body starts with a section header and by the prompt
// rules carries no contact block, so a name is never inferred from it; the
// pass exists to pick up emails or links the model echoed into the body.
func finalizeContact(generated string, seed contact.Contact) contact.Contact {
	enriched := contact.Enrich(generated, seed)
	if seed.FullName == "" {
		enriched.FullName = ""
	}
	return enriched
}

// resumeField reads the free-text resume out of a rewrite record, checking
// the key names used across prompt-template versions.
func resumeField(rec map[string]any) string {
	for _, key := range []string{"final_resume", "rewritten_resume"} {
		if v, ok := rec[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func contactFromRecord(rec map[string]any) contact.Contact {
	str := func(key string) string {
		v, _ := rec[key].(string)
		return v
	}
	return contact.Contact{
		FullName: str("fullName"),
		Email:    str("email"),
		Phone:    str("phone"),
		LinkedIn: str("linkedin"),
		Location: str("location"),
	}
}

// mergeContactRecord fills blanks of c from a rewrite record's contact
// sub-object, if the template version included one.
func mergeContactRecord(c contact.Contact, rec map[string]any) contact.Contact {
	sub, ok := rec["contact"].(map[string]any)
	if !ok {
		return c
	}
	from := contactFromRecord(sub)
	if c.FullName == "" {
		c.FullName = from.FullName
	}
	if c.Email == "" {
		c.Email = from.Email
	}
	if c.Phone == "" {
		c.Phone = from.Phone
	}
	if c.Location == "" {
		c.Location = from.Location
	}
	if c.LinkedIn == "" {
		c.LinkedIn = from.LinkedIn
	}
	return c
}
