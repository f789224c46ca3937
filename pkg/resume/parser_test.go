package resume

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextUnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte("plain text"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ExtractText("resume", []byte("no extension"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractTextDocx(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body>` +
		`<w:p><w:r><w:t>John Smith</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Senior Engineer</w:t></w:r></w:p>` +
		`</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, err := ExtractText("resume.docx", buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, text, "John Smith")
	assert.Contains(t, text, "Senior Engineer")
	// Paragraphs must stay on separate lines for name inference.
	assert.NotContains(t, text, "John Smith Senior Engineer")
}

func TestExtractTextDocxWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText("resume.docx", buf.Bytes())
	assert.ErrorContains(t, err, "no document.xml")
}

func TestExtractTextBrokenPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not a pdf at all"))
	assert.Error(t, err)
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "John  Smith \n\n\nSenior\tEngineer  \n"
	assert.Equal(t, "John Smith\nSenior Engineer", NormalizeWhitespace(in))
}
