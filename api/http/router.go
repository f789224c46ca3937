package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/ats/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, atsH *handlers.ATSHandler, resume *handlers.ResumeHandler, render *handlers.RenderHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Analysis and rewrite share one action-dispatched endpoint
	v1.Post("/ats", atsH.Handle)

	rg := v1.Group("/resume")
	rg.Post("/parse", resume.Parse)
	rg.Post("/render", render.PDF)
}
