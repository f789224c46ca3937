package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/ats/api/http/presenter"
	"github.com/artem13815/ats/pkg/ats"
)

type ATSHandler struct {
	uc ats.UseCase
}

func NewATSHandler(uc ats.UseCase) *ATSHandler { return &ATSHandler{uc: uc} }

type atsPayload struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

type atsRequest struct {
	Action  string     `json:"action"`
	Payload atsPayload `json:"payload"`
}

// Handle dispatches the single ATS endpoint by action name.
// @Summary ATS operations: compatibility scoring and job-tailored rewriting
// @Description Accepts {action, payload{resume, jobDescription}}. action is "analyzeATS" or "rewriteForJob".
// @Tags    ats
// @Accept  json
// @Produce json
// @Param   input body atsRequest true "Action and payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} map[string]any
// @Router  /ats [post]
func (h *ATSHandler) Handle(c *fiber.Ctx) error {
	var req atsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}

	switch req.Action {
	case "analyzeATS":
		return h.analyze(c, req.Payload)
	case "rewriteForJob":
		return h.rewrite(c, req.Payload)
	default:
		return presenter.Error(c, http.StatusBadRequest, "Unknown action")
	}
}

func (h *ATSHandler) analyze(c *fiber.Ctx, p atsPayload) error {
	if p.Resume == "" || p.JobDescription == "" {
		return presenter.Error(c, http.StatusBadRequest, "resume and jobDescription are required")
	}
	report, err := h.uc.AnalyzeATS(c.Context(), p.Resume, p.JobDescription)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	// The parsed record is the response body, merged at top level.
	return presenter.JSON(c, http.StatusOK, report)
}

func (h *ATSHandler) rewrite(c *fiber.Ctx, p atsPayload) error {
	if p.Resume == "" || p.JobDescription == "" {
		return presenter.Error(c, http.StatusBadRequest, "resume and jobDescription are required")
	}
	result, err := h.uc.RewriteForJob(c.Context(), p.Resume, p.JobDescription)
	if err != nil {
		var lerr *ats.LengthViolationError
		if errors.As(err, &lerr) {
			// Domain outcome, not a transport fault: ship the best-effort
			// text so the user can inspect what the model produced.
			return presenter.JSON(c, http.StatusInternalServerError, fiber.Map{
				"error":            lerr.Error(),
				"rewritten_resume": lerr.LastText,
				"word_count":       lerr.LastWordCount,
			})
		}
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, result)
}
