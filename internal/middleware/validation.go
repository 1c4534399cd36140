package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// MaxURLLen bounds submitted URLs; anything longer is garbage or abuse.
const MaxURLLen = 2048

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateAnalyzeURL checks that a submitted URL is present and sane
// before it reaches the analysis pipeline. Host and path semantics are
// checked further down; this is only transport-level hygiene.
func ValidateAnalyzeURL(rawURL string) (string, string) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", "url is required"
	}
	if len(rawURL) > MaxURLLen {
		return "", "url must be at most 2048 characters"
	}
	if strings.ContainsAny(rawURL, " \t\n\r") {
		return "", "url must not contain whitespace"
	}
	return rawURL, ""
}
