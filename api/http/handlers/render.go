package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/ats/api/http/presenter"
	"github.com/artem13815/ats/pkg/contact"
	"github.com/artem13815/ats/pkg/render"
)

type RenderHandler struct {
	pdf render.PDFRenderer
}

func NewRenderHandler(pdf render.PDFRenderer) *RenderHandler {
	return &RenderHandler{pdf: pdf}
}

type renderRequest struct {
	ResumeText string          `json:"resume_text"`
	Contact    contact.Contact `json:"contact"`
}

// PDF lays out optimized resume text and prints it to an A4 PDF.
// @Summary Render optimized resume text as a downloadable PDF
// @Tags    resume
// @Accept  json
// @Produce application/pdf
// @Param   input body renderRequest true "Resume text and contact header"
// @Success 200 {file} binary
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/render [post]
func (h *RenderHandler) PDF(c *fiber.Ctx) error {
	var req renderRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	if req.ResumeText == "" {
		return presenter.Error(c, http.StatusBadRequest, "resume_text is required")
	}

	doc := render.BuildDocument(req.ResumeText, req.Contact)
	html, err := render.RenderHTML(doc)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("layout failed: %v", err))
	}
	pdf, err := h.pdf.RenderHTMLToPDF(c.Context(), html)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("pdf rendering failed: %v", err))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Status(http.StatusOK).Send(pdf)
}
