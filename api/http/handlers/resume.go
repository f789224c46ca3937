package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/ats/api/http/presenter"
	"github.com/artem13815/ats/pkg/nlp"
	"github.com/artem13815/ats/pkg/resume"
)

type ResumeHandler struct {
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler() *ResumeHandler {
	return &ResumeHandler{maxBytes: 15 << 20} // 15MB
}

// Parse extracts plain text from an uploaded resume file so the client can
// feed it into the ATS operations the same way as pasted text.
// @Summary Extract plain text from a PDF/DOCX resume
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume file (PDF or DOCX)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/parse [post]
func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := resume.ExtractText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
	}
	if text == "" {
		return presenter.Error(c, http.StatusBadRequest, "empty resume content")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"filename":   fh.Filename,
		"text":       text,
		"sizeB":      len(data),
		"word_count": nlp.CountWords(text),
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
