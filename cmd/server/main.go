// @title         ats-service API
// @version       1.0
// @description   Service that scores resumes against job descriptions and rewrites them for ATS compatibility using an OpenAI-compatible LLM backend, with tolerant recovery of malformed model output.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	// internal imports
	"github.com/artem13815/ats/api/http"
	"github.com/artem13815/ats/api/http/handlers"
	"github.com/artem13815/ats/pkg/ats"
	"github.com/artem13815/ats/pkg/config"
	"github.com/artem13815/ats/pkg/health"
	"github.com/artem13815/ats/pkg/health/checkers"
	"github.com/artem13815/ats/pkg/llm/groq"
	"github.com/artem13815/ats/pkg/render"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024,
	})

	// Load configuration from env/.env
	cfg := config.Load()

	// A missing key is surfaced per-request and via /ready, not at startup.
	if cfg.GroqAPIKey == "" {
		log.Println("warning: GROQ_API_KEY is not set, LLM-backed endpoints will fail")
	}

	llmClient := groq.New(cfg.GroqAPIKey, cfg.GroqBaseURL)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewCredentialChecker(cfg.GroqAPIKey))
	healthHandler := handlers.NewHealthHandler(readiness)

	policy := ats.DefaultPolicy()
	policy.MaxAttempts = cfg.RewriteAttempts
	atsUC := ats.NewService(llmClient, cfg.GroqModels, cfg.GroqMaxTokens, policy)
	atsHandler := handlers.NewATSHandler(atsUC)

	resumeHandler := handlers.NewResumeHandler()
	renderHandler := handlers.NewRenderHandler(render.NewChromedpRenderer())

	// Register routes
	http.Register(app, healthHandler, atsHandler, resumeHandler, renderHandler)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
