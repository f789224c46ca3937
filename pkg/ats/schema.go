package ats

import (
	_ "embed"
	"log"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed score.schema.json
var scoreSchemaJSON string

var scoreSchema = gojsonschema.NewStringLoader(scoreSchemaJSON)

// sanitizeScoreReport validates a recovered record against the score schema
// and drops every field that fails. A present key must have the right shape
// or be absent entirely; an absent field is a signal the caller can act on,
// a mis-typed one is not.
func sanitizeScoreReport(rec map[string]any) map[string]any {
	res, err := gojsonschema.Validate(scoreSchema, gojsonschema.NewGoLoader(rec))
	if err != nil {
		log.Printf("ats: score schema validation error: %v", err)
		return rec
	}
	if res.Valid() {
		return rec
	}
	for _, e := range res.Errors() {
		// Field() is a dotted path; the offending top-level key is its head.
		field := e.Field()
		if field == "(root)" {
			continue
		}
		if i := strings.Index(field, "."); i >= 0 {
			field = field[:i]
		}
		if _, ok := rec[field]; ok {
			log.Printf("ats: dropping malformed field %q: %s", field, e.Description())
			delete(rec, field)
		}
	}
	return rec
}
