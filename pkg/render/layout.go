// Package render turns plain optimized-resume text into a paginated
// document. The input contract is line-oriented: section headers on their
// own lines, bullets prefixed with a bullet glyph, contact info supplied
// separately rather than embedded in the body.
package render

import (
	"regexp"
	"strings"

	"github.com/artem13815/ats/pkg/contact"
)

// Line is one classified body line.
type Line struct {
	Text   string
	Bullet bool
}

// Section is a titled run of lines.
type Section struct {
	Title string
	Lines []Line
}

// Document is the renderer input: a header block plus classified sections.
type Document struct {
	Name     string
	Contact  []string
	Sections []Section
}

var (
	reAllCaps    = regexp.MustCompile(`^[A-Z\s]+:?$`)
	reKnownTitle = regexp.MustCompile(`(?i)^(PROFESSIONAL SUMMARY|SUMMARY|EXPERIENCE|PROFESSIONAL EXPERIENCE|WORK HISTORY|EDUCATION|SKILLS|TECHNICAL SKILLS|KEY SKILLS|CORE COMPETENCIES|CERTIFICATIONS|PROJECTS|LANGUAGES|LANGUAGE|CONTACT|PROFILE|OBJECTIVE|ACHIEVEMENTS|AWARDS|REFERENCES)`)
)

func isSectionHeader(line string) bool {
	return reAllCaps.MatchString(line) || reKnownTitle.MatchString(line)
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}

// BuildDocument classifies resume text into sections and attaches the
// contact header. Lines before the first recognized header land in an
// untitled leading section so no text is ever dropped.
func BuildDocument(resumeText string, c contact.Contact) Document {
	doc := Document{Name: c.FullName}
	for _, part := range []string{c.Email, c.Phone, c.Location, c.LinkedIn} {
		if part != "" {
			doc.Contact = append(doc.Contact, part)
		}
	}

	current := Section{}
	flush := func() {
		if current.Title != "" || len(current.Lines) > 0 {
			doc.Sections = append(doc.Sections, current)
		}
	}
	for _, raw := range strings.Split(resumeText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			flush()
			current = Section{Title: strings.ToUpper(strings.TrimSuffix(line, ":"))}
			continue
		}
		current.Lines = append(current.Lines, Line{Text: line, Bullet: isBullet(line)})
	}
	flush()
	return doc
}
