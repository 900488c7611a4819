package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIP returns the submitting client's address, honoring the first
// entry of X-Forwarded-For when a proxy set it.
func ClientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return c.IP()
}

// ValidationErrorResponse reports caller-fixable field errors.
func ValidationErrorResponse(c *fiber.Ctx, errs map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Please correct the errors below.",
		"errors":  errs,
	})
}

// RejectionResponse reports a well-formed request that violates a
// business rule. No errors map: the caller can't fix it field by field.
func RejectionResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// FailureResponse reports an unexpected server-side failure with a
// generic apology; the detail stays in the logs.
func FailureResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// MethodNotAllowed is mounted after the POST intake routes so any other
// verb on those paths gets a JSON 405.
func MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
		"error": "Method not allowed",
	})
}
