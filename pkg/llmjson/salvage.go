package llmjson

import (
	"regexp"
	"strconv"
)

// Kind describes the shape a salvaged field must have.
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindStringArray
)

// Schema lists the fields worth salvaging for one response shape.
// Salvage is schema-specific on purpose: fishing fields out of noise is
// safe for flat score/contact records but would silently corrupt a
// free-text resume body, so the rewrite shape never gets a schema.
type Schema map[string]Kind

var reArrayItem = regexp.MustCompile(`"([^"]+)"`)

// ParseSalvage runs the full cascade: strict parse, repair, then
// field-by-field regex extraction for the given schema. A field appears in
// the result only if its own pattern matched; nothing is invented, because
// callers use field presence itself as a signal.
func ParseSalvage(raw string, schema Schema) (map[string]any, error) {
	rec, err := Parse(raw)
	if err == nil {
		return rec, nil
	}

	out := make(map[string]any)
	for key, kind := range schema {
		quoted := regexp.QuoteMeta(key)
		switch kind {
		case KindInt:
			re := regexp.MustCompile(`(?i)"` + quoted + `"\s*:\s*(\d+)`)
			if m := re.FindStringSubmatch(raw); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					out[key] = n
				}
			}
		case KindString:
			re := regexp.MustCompile(`(?i)"` + quoted + `"\s*:\s*"([^"]*)"`)
			if m := re.FindStringSubmatch(raw); m != nil {
				out[key] = m[1]
			}
		case KindStringArray:
			re := regexp.MustCompile(`(?is)"` + quoted + `"\s*:\s*\[(.*?)\]`)
			if m := re.FindStringSubmatch(raw); m != nil {
				items := []string{}
				for _, it := range reArrayItem.FindAllStringSubmatch(m[1], -1) {
					items = append(items, it[1])
				}
				out[key] = items
			}
		}
	}
	if len(out) == 0 {
		return nil, &RecoveryError{Stage: "salvage", Err: ErrUnparseable}
	}
	return out, nil
}
