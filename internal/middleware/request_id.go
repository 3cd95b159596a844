package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID ensures every request carries an identifier for log correlation.
// An incoming X-Request-ID is honoured so upstream proxies can trace calls.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals("request_id", id)
		c.Set("X-Request-ID", id)

		return c.Next()
	}
}

// GetRequestID returns the identifier bound to the active request.
func GetRequestID(c *fiber.Ctx) string {
	if c == nil {
		return ""
	}
	if value := c.Locals("request_id"); value != nil {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
