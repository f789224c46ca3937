// Package resume extracts plain text from uploaded resume files so the
// optimization endpoints can work from pasted or uploaded input alike.
package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for anything but .pdf / .docx.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")

// ExtractText returns the plain text of a supported resume file.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return NormalizeWhitespace(buf.String()), nil
}

var reXMLTags = regexp.MustCompile(`<[^>]+>`)

func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("read document.xml: %w", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	// Paragraph boundaries become newlines; then all tags are stripped.
	// Naive, but resumes are flat documents and it holds up well.
	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return NormalizeWhitespace(reXMLTags.ReplaceAllString(xml, " ")), nil
}

var (
	reHorizWS = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNLRuns  = regexp.MustCompile(` *\n[ \n]*`)
)

// NormalizeWhitespace collapses whitespace runs but keeps line structure:
// downstream heuristics (name inference, section detection) depend on
// newlines surviving extraction.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = reHorizWS.ReplaceAllString(s, " ")
	s = reNLRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
