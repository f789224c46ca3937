package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform failure body: callers always get JSON with
// an explanatory message, never an opaque status.
type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}
